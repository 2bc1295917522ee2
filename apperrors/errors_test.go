package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOfUnwrapsThroughLayers(t *testing.T) {
	cause := NotFound("chantier %s introuvable", "c1")
	wrapped := fmt.Errorf("while syncing: %w", cause)

	if KindOf(wrapped) != KindNotFound {
		t.Errorf("KindOf through fmt.Errorf wrap = %v, want KindNotFound", KindOf(wrapped))
	}
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through wrapping")
	}
}

func TestKindOfPlainError(t *testing.T) {
	if KindOf(errors.New("boom")) != KindUnexpected {
		t.Error("plain errors are unexpected")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Wrap(KindConfiguration, cause, "database unreachable")

	if !errors.Is(err, cause) {
		t.Error("Wrap must keep the cause reachable by errors.Is")
	}
	if !IsConfiguration(err) {
		t.Error("wrapped error should carry the configuration kind")
	}
	if err.Error() != "database unreachable: dial tcp: refused" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
		{Forbidden("no"), http.StatusForbidden},
		{Configuration("broken"), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
