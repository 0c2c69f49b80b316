/*
Package tokentest provides mocks and helpers for testing code that builds on
this module. It contains no extension logic on its own and must never be
imported outside of test files.
*/
package tokentest
