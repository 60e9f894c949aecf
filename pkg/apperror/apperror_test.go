package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", New(KindValidation, "CPF inválido"), http.StatusBadRequest},
		{"uniqueness", New(KindUniqueness, "Email já cadastrado"), http.StatusConflict},
		{"conflict", New(KindConflict, "already reviewed"), http.StatusConflict},
		{"state", New(KindState, "bad transition"), http.StatusConflict},
		{"authorization", New(KindAuthorization, "Acesso negado"), http.StatusForbidden},
		{"unauthenticated", New(KindUnauthenticated, "login"), http.StatusUnauthorized},
		{"not found", New(KindNotFound, "missing"), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	sentinel := New(KindNotFound, "professional not found")
	wrapped := fmt.Errorf("loading profile: %w", sentinel)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, sentinel))
	assert.Equal(t, "NOT_FOUND", KindOf(wrapped).String())
}
