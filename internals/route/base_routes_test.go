package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func health(t *testing.T, ping Pinger) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	BaseRoutes(app, ping)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHealth_Up(t *testing.T) {
	status, body := health(t, func(context.Context) error { return nil })
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body["status"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	status, body := health(t, func(context.Context) error { return errors.New("refused") })
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "DOWN", body["status"])

	status, _ = health(t, nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}
