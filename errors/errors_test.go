package errors

import (
	stdlib "errors"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestWrapKeepsRootCause(t *testing.T) {
	std := stdlib.New("disk full")

	cases := map[string]struct {
		err     error
		root    error
		wantMsg string
	}{
		"root error": {
			err:     ErrNotFound,
			root:    ErrNotFound,
			wantMsg: "not found",
		},
		"two wraps": {
			err:     Wrapf(Wrap(ErrNotFound, "registry"), "validator %d", 3),
			root:    ErrNotFound,
			wantMsg: "validator 3: registry: not found",
		},
		"stdlib root": {
			err:     Wrap(std, "save"),
			root:    std,
			wantMsg: "save: disk full",
		},
		"type annotation": {
			err:     WithType(ErrMsg, struct{}{}),
			root:    ErrMsg,
			wantMsg: "struct {}: invalid message",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatalf("want root %v, got %v", tc.root, got)
			}
			if msg := tc.err.Error(); msg != tc.wantMsg {
				t.Fatalf("want message %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "nothing"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind   *Error
		err    error
		wantIs bool
	}{
		"same root":          {kind: ErrNotFound, err: ErrNotFound, wantIs: true},
		"other root":         {kind: ErrNotFound, err: ErrModel},
		"wrapped root":       {kind: ErrNotFound, err: ErrNotFound.New("gone"), wantIs: true},
		"wrapped other root": {kind: ErrNotFound, err: Wrap(ErrState, "broken")},
		"stdlib error":       {kind: ErrNotFound, err: fmt.Errorf("not found")},
		"nil kind and nil":   {kind: nil, err: nil, wantIs: true},
		"first of a group": {
			kind:   ErrInput,
			err:    Append(nil, ErrInput.New("first"), ErrEmpty.New("second")),
			wantIs: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantIs {
				t.Fatalf("want %v, got %v", tc.wantIs, got)
			}
		})
	}
}

func TestRegisterDuplicatedCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(ErrNotFound.ABCICode(), "duplicated")
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	single := ErrEmpty.New("single")
	if got := Append(nil, single); got != single {
		t.Fatalf("a single error must not be grouped, got %v", got)
	}
	grouped := Append(ErrInput.New("a"), Append(ErrEmpty.New("b"), ErrState.New("c")))
	if m, ok := grouped.(multiErr); !ok || len(m) != 3 {
		t.Fatalf("want a flat group of 3, got %#v", grouped)
	}
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	if err := fn(); !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %v", err)
	}
}
