/*
Package errors implements custom error interfaces for the token-ledger
extensions.

The package is a fork of the usual blockchain error conventions: every error
is built from a registered root error that carries a unique numeric code. The
code is what a client observes, so error equality tests are done via the root
error's Is method rather than direct comparison. Errors are enriched while
traveling up the call stack using Wrap, which also attaches a stack trace at
the lowest possible frame.

Errors returned by any operation of this module are always one of the roots
declared here, or a root registered by an extension.
*/
package errors
