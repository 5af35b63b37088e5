package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Consort-Group-Corp/support-service/internal/observability"
	apperrors "github.com/Consort-Group-Corp/support-service/pkg/util"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics("test"), time.Second)
	return app
}

func performRequest(t *testing.T, app *fiber.App, method, target string) *nethttp.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *nethttp.Response) map[string]any {
	t.Helper()
	var body struct {
		Error map[string]any `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func TestBoundaryTranslatesValidationError(t *testing.T) {
	app := newTestApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("comment length must be <= 500", map[string]any{"max_length": 500})
	})

	resp := performRequest(t, app, nethttp.MethodGet, "/boom")
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	errBody := decodeError(t, resp)
	assert.Equal(t, "VALIDATION_FAILED", errBody["code"])
	assert.Equal(t, "comment length must be <= 500", errBody["message"])
	assert.Equal(t, float64(500), errBody["details"].(map[string]any)["max_length"])
}

func TestBoundaryTranslatesConflictAndNotFound(t *testing.T) {
	app := newTestApp(t)
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return apperrors.NewConflict("preset with same text already exists for this role", nil)
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("ticket", nil)
	})

	resp := performRequest(t, app, nethttp.MethodGet, "/conflict")
	assert.Equal(t, nethttp.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decodeError(t, resp)["code"])

	resp = performRequest(t, app, nethttp.MethodGet, "/missing")
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp)["code"])
}

func TestBoundaryHidesInternalDetail(t *testing.T) {
	app := newTestApp(t)
	app.Get("/internal", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	resp := performRequest(t, app, nethttp.MethodGet, "/internal")
	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)

	errBody := decodeError(t, resp)
	assert.Equal(t, "INTERNAL_ERROR", errBody["code"])
	assert.Equal(t, "internal server error", errBody["message"])
	assert.NotContains(t, errBody["message"], assert.AnError.Error())
}

func TestBoundaryRecoversPanics(t *testing.T) {
	app := newTestApp(t)
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	resp := performRequest(t, app, nethttp.MethodGet, "/panic")
	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp)["code"])
}

func TestRequestLoggerObservesTranslatedStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	metrics := observability.NewMetrics("test")
	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), metrics, time.Second)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("bad input", nil)
	})

	resp := performRequest(t, app, nethttp.MethodGet, "/boom")
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(nethttp.StatusBadRequest), entries[0].ContextMap()["status"])

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))
	exposition := rec.Body.String()
	assert.Contains(t, exposition, `status="400"`)
	assert.NotContains(t, exposition, `status="200"`)
}

func TestSuccessPassesThrough(t *testing.T) {
	app := newTestApp(t)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": "ok"})
	})

	resp := performRequest(t, app, nethttp.MethodGet, "/ok")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}
