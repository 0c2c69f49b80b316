/*
Package tokenext defines the common interfaces that tie the token-ledger
extensions together: stores, addresses, time values, messages, handlers and
queries.

The extensions themselves live under x/ and are driven by an external ledger.
They keep all state in a KVStore provided with every call and rely on the
execution environment for atomicity: a call either completes entirely or,
through the cache-wrap mechanism in the store package, has no effect.
*/
package tokenext
