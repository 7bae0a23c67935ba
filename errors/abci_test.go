package errors

import (
	"fmt"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrNotFound,
			wantCode: ErrNotFound.code,
			wantLog:  "not found",
		},
		"wrapped registered error": {
			err:      Wrap(ErrUnauthorized, "sender"),
			wantCode: ErrUnauthorized.code,
			wantLog:  "sender: unauthorized",
		},
		"nil is success": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"stdlib error is redacted": {
			err:      fmt.Errorf("database password is 1234"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"stdlib error is visible in debug mode": {
			err:      fmt.Errorf("database password is 1234"),
			debug:    true,
			wantCode: internalABCICode,
			wantLog:  "database password is 1234",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(ErrPanic.New("stack"), false); ErrPanic.Is(err) {
		t.Fatal("panic must be redacted")
	}
	if err := Redact(ErrPanic.New("stack"), true); !ErrPanic.Is(err) {
		t.Fatal("debug mode must keep the original error")
	}
	if err := Redact(ErrNotFound.New("x"), false); !ErrNotFound.Is(err) {
		t.Fatal("registered errors are not redacted")
	}
}

func TestCode(t *testing.T) {
	var nilErr *Error
	cases := map[string]struct {
		err  error
		want uint32
	}{
		"nil":            {err: nil, want: SuccessABCICode},
		"typed nil":      {err: nilErr, want: SuccessABCICode},
		"registered":     {err: ErrInput, want: ErrInput.code},
		"deeply wrapped": {err: Wrap(Wrapf(ErrState, "inner %d", 1), "outer"), want: ErrState.code},
		"stdlib":         {err: fmt.Errorf("boom"), want: internalABCICode},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Code(tc.err); got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}
