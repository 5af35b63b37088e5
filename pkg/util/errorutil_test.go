package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{name: "validation", err: NewValidationError("bad input", nil), wantCode: "VALIDATION_FAILED", wantStatus: http.StatusBadRequest},
		{name: "conflict", err: NewConflict("duplicate", nil), wantCode: "CONFLICT", wantStatus: http.StatusConflict},
		{name: "not found", err: NewNotFound("ticket", nil), wantCode: "NOT_FOUND", wantStatus: http.StatusNotFound},
		{name: "unauthorized", err: NewUnauthorized("no token"), wantCode: "UNAUTHORIZED", wantStatus: http.StatusUnauthorized},
		{name: "forbidden", err: NewForbidden("nope"), wantCode: "FORBIDDEN", wantStatus: http.StatusForbidden},
		{name: "pgx no rows", err: pgx.ErrNoRows, wantCode: "NOT_FOUND", wantStatus: http.StatusNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantCode: "CONFLICT", wantStatus: http.StatusConflict},
		{name: "unknown", err: errors.New("boom"), wantCode: "INTERNAL_ERROR", wantStatus: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			domainErr := ToDomainError(tc.err)
			require.NotNil(t, domainErr)
			assert.Equal(t, tc.wantCode, domainErr.Code)
			assert.Equal(t, tc.wantStatus, domainErr.HTTPStatus)
		})
	}
}

func TestToDomainErrorPassesThroughWrapped(t *testing.T) {
	inner := NewValidationError("too long", map[string]any{"max_length": 500})
	wrapped := errors.Join(errors.New("context"), inner)

	domainErr := ToDomainError(wrapped)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, 500, domainErr.Details["max_length"])
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestNotFoundMessageNamesResource(t *testing.T) {
	err := NewNotFound("preset", nil)
	assert.Equal(t, "preset not found", err.Error())
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := errors.New("password=hunter2 leaked in dsn")
	domainErr := ToDomainError(NewInternalError(cause))
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, "internal server error", domainErr.Message)
	assert.ErrorIs(t, domainErr, cause)
}
