package errors

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestErrorsIs(t *testing.T) {
	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"instance of the same root": {
			kind: ErrDuplicate,
			err:  ErrDuplicate,
			want: true,
		},
		"wrapped instance of the same root": {
			kind: ErrDuplicate,
			err:  Wrap(ErrDuplicate, "token 42"),
			want: true,
		},
		"deeply wrapped instance of the same root": {
			kind: ErrNotFound,
			err:  Wrap(Wrap(ErrNotFound, "inner"), "outer"),
			want: true,
		},
		"different root": {
			kind: ErrDuplicate,
			err:  ErrNotFound,
			want: false,
		},
		"wrapped different root": {
			kind: ErrDuplicate,
			err:  Wrap(ErrNotFound, "token 42"),
			want: false,
		},
		"stdlib error": {
			kind: ErrDuplicate,
			err:  errors.New("duplicate"),
			want: false,
		},
		"nil error": {
			kind: ErrDuplicate,
			err:  nil,
			want: false,
		},
		"nil kind matches nil error": {
			kind: nil,
			err:  nil,
			want: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "ignored"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrapPreservesMessage(t *testing.T) {
	err := Wrap(ErrOverflow, "vested amount")
	const want = "vested amount: an operation cannot be completed due to value overflow"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestWrapAttachesStackTraceOnce(t *testing.T) {
	inner := Wrap(ErrNotFound, "inner")
	st := stackTrace(inner)
	if st == nil {
		t.Fatal("wrapping must attach a stack trace")
	}

	outer := Wrap(inner, "outer")
	if got := stackTrace(outer); fmt.Sprintf("%v", got) != fmt.Sprintf("%v", st) {
		t.Fatal("wrapping again must not attach another stack trace")
	}
}

func TestRegisterDuplicateCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	// Code 3 is taken by ErrNotFound.
	Register(3, "conflicting")
}

func TestRecover(t *testing.T) {
	fails := func() (err error) {
		defer Recover(&err)
		panic("much broken")
	}

	err := fails()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}
