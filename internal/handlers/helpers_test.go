// Package handlers_test exercises the HTTP surface end to end against a
// mocked database pool: real routing, real JSON decoding, mocked rows.
package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/STS-Engineer/customer-backend/internal/database"
	"github.com/STS-Engineer/customer-backend/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// newTestApp builds a Fiber app with all routes registered and installs a
// pgxmock pool as the global database handle for the duration of one test.
func newTestApp(t *testing.T) (*fiber.App, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = mock
	t.Cleanup(func() {
		database.DB = oldDB
		mock.Close()
	})

	app := fiber.New()
	handlers.RegisterRoutes(app, zap.NewNop())

	return app, mock
}

// doJSON performs one request with a JSON body (empty body when body is "")
// and returns the response plus its decoded payload.
func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}

	return resp, payload
}

// readBody returns the raw response body for byte-level comparisons.
func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return raw
}
