package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"new", New(ErrCodeInvalidInput, "bad %s", "value"), "INVALID_INPUT: bad value"},
		{"wrap", Wrap(ErrCodeSyntax, errors.New("unexpected ')'"), "line %d", 3), "INVALID_SYNTAX: line 3: unexpected ')'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(ErrCodeSyntax, cause, "line 1")
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() does not return the cause")
	}
}

func TestIsAndGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"coded", New(ErrCodeInvalidLayout, "x"), ErrCodeInvalidLayout},
		{"outermost wins", Wrap(ErrCodeSyntax, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeSyntax},
		{"fmt wrapped", fmt.Errorf("load: %w", New(ErrCodeFileNotFound, "x")), ErrCodeFileNotFound},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeUnsupported) {
				t.Error("Is(UNSUPPORTED) = true")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain", errors.New("plain error"), "plain error"},
		{"cause", Wrap(ErrCodeSyntax, errors.New("unexpected ')'"), "line 3"), "line 3: unexpected ')'"},
		{"coded cause", Wrap(ErrCodeInvalidInput, New(ErrCodeSyntax, "bad token"), "decode request"), "decode request: bad token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	base := New(ErrCodeSyntax, "invalid constraint")
	err := base.WithDetail("line", 3).WithDetail("column", 7)

	if diff := cmp.Diff(map[string]any{"line": 3, "column": 7}, Details(err)); diff != "" {
		t.Errorf("Details() mismatch (-want +got):\n%s", diff)
	}
	if base.Details != nil {
		t.Error("WithDetail modified its receiver")
	}
	if Details(errors.New("plain")) != nil {
		t.Error("plain errors have no details")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"syntax", New(ErrCodeSyntax, "bad"), http.StatusBadRequest},
		{"layout", New(ErrCodeInvalidLayout, "bad"), http.StatusBadRequest},
		{"path", New(ErrCodeInvalidPath, "bad"), http.StatusBadRequest},
		{"not found", New(ErrCodeFileNotFound, "missing"), http.StatusNotFound},
		{"unsupported", New(ErrCodeUnsupported, "no"), http.StatusNotImplemented},
		{"internal", New(ErrCodeInternal, "boom"), http.StatusInternalServerError},
		{"plain", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped", Wrap(ErrCodeInvalidSize, errors.New("negative"), "width"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
