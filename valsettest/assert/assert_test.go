package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/valset/errors"
)

func TestIsNil(t *testing.T) {
	var nilErr *errors.Error
	cases := map[string]struct {
		value interface{}
		want  bool
	}{
		"nil":             {nil, true},
		"typed nil":       {nilErr, true},
		"nil slice":       {[]byte(nil), true},
		"empty slice":     {[]byte{}, false},
		"non nil pointer": {errors.ErrNotFound, false},
		"integer":         {1, false},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := isNil(tc.value); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

type recorder struct {
	failed bool
}

func (r *recorder) Helper()                       {}
func (r *recorder) Fatal(...interface{})          { r.failed = true }
func (r *recorder) Fatalf(string, ...interface{}) { r.failed = true }

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		want     error
		got      error
		wantFail bool
	}{
		"both nil":         {nil, nil, false},
		"wrapped match":    {errors.ErrNotFound, errors.Wrap(errors.ErrNotFound, "x"), false},
		"different errors": {errors.ErrNotFound, errors.ErrInput, true},
		"unexpected error": {nil, fmt.Errorf("boom"), true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var r recorder
			IsErr(&r, tc.want, tc.got)
			if r.failed != tc.wantFail {
				t.Fatalf("want failure %v, got %v", tc.wantFail, r.failed)
			}
		})
	}
}
