package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hillcrest/college-backend/internal/pkg/apperrors"
)

func TestHandleAPIError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "resource not found", err: apperrors.NewResourceNotFoundError("course not found"), wantStatus: http.StatusNotFound},
		{name: "user not found", err: apperrors.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "validation", err: apperrors.NewValidationError("title is required"), wantStatus: http.StatusBadRequest},
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "corrupted credential", err: apperrors.ErrCorruptedCredential, wantStatus: http.StatusUnauthorized},
		{name: "token expired", err: apperrors.ErrTokenExpired, wantStatus: http.StatusUnauthorized},
		{name: "token invalid", err: apperrors.ErrTokenInvalid, wantStatus: http.StatusUnauthorized},
		{name: "permission denied", err: apperrors.NewForbiddenError("admins only"), wantStatus: http.StatusForbidden},
		{name: "email conflict", err: apperrors.ErrEmailAlreadyExists, wantStatus: http.StatusConflict},
		{name: "upstream failure", err: apperrors.NewUpstreamError("bucket unreachable"), wantStatus: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleAPIError_CorruptedCredentialLooksLikeBadLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	render := func(err error) map[string]any {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		HandleAPIError(c, err)

		var resp struct {
			Error map[string]any `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Error
	}

	// The error payload must not reveal that the stored hash was bad.
	assert.Equal(t, render(apperrors.ErrInvalidCredentials), render(apperrors.ErrCorruptedCredential))
}
