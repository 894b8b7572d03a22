package handlers_test

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

// TestCreateUnit_MissingFields verifies both required fields are enforced
// before any store access.
func TestCreateUnit_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"name without group", `{"unit_name": "Lyon Plant"}`},
		{"group without name", `{"groupe_id": 3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, mock := newTestApp(t)

			resp, payload := doJSON(t, app, "POST", "/api/units", tt.body)

			assert.Equal(t, 400, resp.StatusCode)
			assert.Equal(t, "Group ID and unit name are required", payload["error"])
			assert.NoError(t, mock.ExpectationsWereMet(), "no store call may be made on validation failure")
		})
	}
}

// TestGetUnit_NotFound verifies a missing unit yields 404.
func TestGetUnit_NotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("SELECT(.+)FROM unit u(.+)WHERE u.unit_id").
		WithArgs(999).
		WillReturnError(pgx.ErrNoRows)

	resp, payload := doJSON(t, app, "GET", "/api/units/999", "")

	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Unit not found", payload["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGetUnit_InvalidID verifies a non-numeric id is rejected with 400.
func TestGetUnit_InvalidID(t *testing.T) {
	app, mock := newTestApp(t)

	resp, payload := doJSON(t, app, "GET", "/api/units/abc", "")

	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Invalid unit ID", payload["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestUpdateUnit_MissingName verifies the unit name presence check on update.
func TestUpdateUnit_MissingName(t *testing.T) {
	app, mock := newTestApp(t)

	resp, payload := doJSON(t, app, "PUT", "/api/units/10", `{"city": "Lyon"}`)

	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Unit name is required", payload["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestUpdateUnit_NotFound verifies a PUT against a missing unit yields 404.
func TestUpdateUnit_NotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("UPDATE unit").
		WillReturnError(pgx.ErrNoRows)

	resp, payload := doJSON(t, app, "PUT", "/api/units/999", `{"unit_name": "Ghost"}`)

	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Unit not found", payload["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
