package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/service"
	"github.com/tdw-edu/questions-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "outcome",
			err:     service.NewOutcomeError(catalog.OpDeleteUser, http.StatusNotFound, store.ErrUserNotFound),
			status:  http.StatusNotFound,
			message: "Resource not found",
		},
		{
			name:    "wrapped outcome",
			err:     fmt.Errorf("ctx: %w", service.NewOutcomeError(catalog.OpCreateUser, http.StatusBadRequest, nil)),
			status:  http.StatusBadRequest,
			message: "`Bad Request` User name or e-mail already exists",
		},
		{
			name:    "store error without outcome",
			err:     store.ErrUserNotFound,
			status:  http.StatusInternalServerError,
			message: catalog.MsgInternalError,
		},
		{
			name:    "arbitrary error",
			err:     errors.New("secret"),
			status:  http.StatusInternalServerError,
			message: catalog.MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.message, GetSafeErrorMessage(tt.err))
		})
	}
}
