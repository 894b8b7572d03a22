package repository_test

import (
	"context"
	"testing"

	"github.com/STS-Engineer/customer-backend/internal/database"
	"github.com/STS-Engineer/customer-backend/internal/models"
	"github.com/STS-Engineer/customer-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// groupJoinColumns matches the SELECT list of ListWithUnits.
var groupJoinColumns = []string{
	"groupe_id", "groupe_name", "Description",
	"unit_id", "unit_name", "city", "country", "zone_name", "phone", "website",
	"Person_id", "first_name", "last_name", "job_title",
	"email", "phone_number", "role", "person_zone_name",
}

// setupMock installs a pgxmock pool as the global database handle for the
// duration of one test.
func setupMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = mock
	t.Cleanup(func() {
		database.DB = oldDB
		mock.Close()
	})

	return mock
}

// TestGroupRepository_ListWithUnits verifies the nested list view: the flat
// left-join result folds into groups in first-appearance order, units nested,
// responsible persons resolved.
func TestGroupRepository_ListWithUnits(t *testing.T) {
	mock := setupMock(t)

	// Arrange - two rows for Acme (one with a responsible person), one
	// row for a group the join matched no units for
	rows := pgxmock.NewRows(groupJoinColumns).
		AddRow(1, "Acme", strPtr("carbon brushes"),
			intPtr(10), strPtr("Lyon Plant"), strPtr("Lyon"), strPtr("France"), strPtr("EMEA"), strPtr("+33 1 23 45"), strPtr("acme.example"),
			intPtr(7), strPtr("Marie"), strPtr("Curie"), strPtr("KAM"),
			strPtr("marie@acme.example"), strPtr("+33 6 00 00"), strPtr("sales"), strPtr("EMEA")).
		AddRow(1, "Acme", strPtr("carbon brushes"),
			intPtr(11), strPtr("Tours Plant"), strPtr("Tours"), strPtr("France"), strPtr("EMEA"), nil, nil,
			nil, nil, nil, nil,
			nil, nil, nil, nil).
		AddRow(2, "Borealis", nil,
			nil, nil, nil, nil, nil, nil, nil,
			nil, nil, nil, nil,
			nil, nil, nil, nil)

	mock.ExpectQuery("SELECT(.+)FROM groupe g(.+)LEFT JOIN unit u").
		WillReturnRows(rows)

	repo := repository.NewGroupRepository()

	// Act
	groups, err := repo.ListWithUnits(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, groups, 2)

	acme := groups[0]
	assert.Equal(t, 1, acme.GroupeID)
	require.Len(t, acme.Units, 2)
	require.NotNil(t, acme.Units[0].Responsible)
	assert.Equal(t, 7, acme.Units[0].Responsible.PersonID)
	assert.Nil(t, acme.Units[1].Responsible)

	borealis := groups[1]
	assert.Equal(t, "Borealis", borealis.GroupeName)
	require.NotNil(t, borealis.Units)
	assert.Empty(t, borealis.Units)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGroupRepository_Create verifies group creation returns the row with its
// generated identifier.
func TestGroupRepository_Create(t *testing.T) {
	mock := setupMock(t)

	rows := pgxmock.NewRows([]string{"groupe_id", "groupe_name", "Description"}).
		AddRow(42, "Acme", (*string)(nil))

	mock.ExpectQuery("INSERT INTO groupe").
		WithArgs("Acme", (*string)(nil)).
		WillReturnRows(rows)

	repo := repository.NewGroupRepository()

	group, err := repo.Create(context.Background(), &models.GroupInput{GroupeName: "Acme"})

	require.NoError(t, err)
	assert.Equal(t, 42, group.GroupeID)
	assert.Equal(t, "Acme", group.GroupeName)
	assert.Nil(t, group.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGroupRepository_Update verifies the updated row is returned, and that a
// missing group maps to ErrNotFound.
func TestGroupRepository_Update(t *testing.T) {
	t.Run("updates existing group", func(t *testing.T) {
		mock := setupMock(t)

		rows := pgxmock.NewRows([]string{"groupe_id", "groupe_name", "Description"}).
			AddRow(5, "Acme Industrial", strPtr("renamed"))

		mock.ExpectQuery("UPDATE groupe").
			WithArgs("Acme Industrial", strPtr("renamed"), 5).
			WillReturnRows(rows)

		repo := repository.NewGroupRepository()

		group, err := repo.Update(context.Background(), 5, &models.GroupInput{
			GroupeName:  "Acme Industrial",
			Description: strPtr("renamed"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Industrial", group.GroupeName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing group yields ErrNotFound", func(t *testing.T) {
		mock := setupMock(t)

		mock.ExpectQuery("UPDATE groupe").
			WithArgs("Acme", (*string)(nil), 999).
			WillReturnError(pgx.ErrNoRows)

		repo := repository.NewGroupRepository()

		_, err := repo.Update(context.Background(), 999, &models.GroupInput{GroupeName: "Acme"})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestGroupRepository_Delete verifies the transactional cascade: units are
// deleted first, the group row second, and the pre-delete group row is
// returned after commit.
func TestGroupRepository_Delete(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM unit").
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectQuery("DELETE FROM groupe").
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"groupe_id", "groupe_name", "Description"}).
			AddRow(5, "Acme", strPtr("two units")))
	mock.ExpectCommit()

	repo := repository.NewGroupRepository()

	group, err := repo.Delete(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, 5, group.GroupeID)
	assert.Equal(t, "Acme", group.GroupeName)
	assert.NoError(t, mock.ExpectationsWereMet(), "units delete, group delete, commit — in that order")
}

// TestGroupRepository_Delete_NotFound verifies the transaction rolls back
// when the group row does not exist, so the unit deletions never take effect.
func TestGroupRepository_Delete_NotFound(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM unit").
		WithArgs(999).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectQuery("DELETE FROM groupe").
		WithArgs(999).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	repo := repository.NewGroupRepository()

	_, err := repo.Delete(context.Background(), 999)

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet(), "rollback must follow the failed group delete")
}

// TestGroupRepository_GetComplete verifies the two-query detail view: group
// row first, then its units in full projection with responsible persons.
func TestGroupRepository_GetComplete(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectQuery("SELECT groupe_id, groupe_name(.+)FROM groupe WHERE").
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"groupe_id", "groupe_name", "Description"}).
			AddRow(3, "Acme", (*string)(nil)))

	unitCols := append(append([]string{}, unitColumnNames...),
		"Person_id", "first_name", "last_name", "job_title",
		"email", "phone_number", "role", "person_zone_name")

	unitValues := fullUnitRowValues(20, 3, "Lyon Plant")
	unitValues = append(unitValues,
		intPtr(7), strPtr("Marie"), strPtr("Curie"), strPtr("KAM"),
		strPtr("marie@acme.example"), strPtr("+33 6"), strPtr("sales"), strPtr("EMEA"))

	mock.ExpectQuery("SELECT(.+)FROM unit u(.+)WHERE u.groupe_id").
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows(unitCols).AddRow(unitValues...))

	repo := repository.NewGroupRepository()

	complete, err := repo.GetComplete(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 3, complete.GroupeID)
	require.Len(t, complete.Units, 1)
	assert.Equal(t, "Lyon Plant", complete.Units[0].UnitName)
	require.NotNil(t, complete.Units[0].Responsible)
	assert.Equal(t, 7, complete.Units[0].Responsible.PersonID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGroupRepository_GetComplete_NotFound verifies the units query never
// runs when the group row is absent.
func TestGroupRepository_GetComplete_NotFound(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectQuery("SELECT groupe_id, groupe_name(.+)FROM groupe WHERE").
		WithArgs(999).
		WillReturnError(pgx.ErrNoRows)

	repo := repository.NewGroupRepository()

	_, err := repo.GetComplete(context.Background(), 999)

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
