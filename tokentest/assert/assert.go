// Package assert provides a minimal set of test assertions. It integrates
// with the error package of this module to provide domain aware checks.
package assert

import (
	"reflect"
	"testing"

	"github.com/iov-one/tokenext/errors"
)

// Tester is the minimal subset of testing.TB needed to run most assert
// functions.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

var _ Tester = (testing.TB)(nil)

// Nil fails the test if given value is not nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// use %+v so that we can see stack traces of errors
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// Equal fails the test if two values are not equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal\nwant %T %+v\n got %T %+v", want, want, got, got)
	}
}

// Panics runs given function and fails the test if it did not panic.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	fn()
}

// IsErr fails the test if error is not of the wanted kind. This function
// knows how to unwrap errors of this module.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if !want.(interface{ Is(error) bool }).Is(got) {
		t.Fatalf("want %q error, got %+v", want, got)
	}
}

// FieldError ensures that given error contains the exact match of a single
// field error, tested by kind.
func FieldError(t Tester, err error, fieldName string, want error) {
	t.Helper()
	errs := errors.FieldErrors(err, fieldName)
	switch {
	case len(errs) == 0 && want == nil:
		// All good.
	case len(errs) == 0 && want != nil:
		t.Fatalf("no %q field error found, want %q", fieldName, want)
	case len(errs) == 1:
		if !want.(interface{ Is(error) bool }).Is(errs[0]) {
			t.Fatalf("want %q error for field %q, got %+v", want, fieldName, errs[0])
		}
	default:
		t.Fatalf("want a single %q field error, found %d", fieldName, len(errs))
	}
}
