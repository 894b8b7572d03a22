package repository

import (
	"context"
	"errors"

	"github.com/STS-Engineer/customer-backend/internal/database"
	"github.com/STS-Engineer/customer-backend/internal/models"
	"github.com/jackc/pgx/v5"
)

// PersonRepository handles contact-person database operations.
//
// Related: FR-003 (Contact Directory)
type PersonRepository struct{}

// NewPersonRepository creates a new instance of PersonRepository.
func NewPersonRepository() *PersonRepository {
	return &PersonRepository{}
}

// personColumns is the canonical "Person" projection shared by both queries.
const personColumns = `"Person_id", first_name, last_name, job_title, email, phone_number, role, zone_name`

// GetByID retrieves one person by primary key.
//
// Returns ErrNotFound when the person does not exist.
func (r *PersonRepository) GetByID(ctx context.Context, personID int) (*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM "Person" WHERE "Person_id" = $1`

	var p models.Person
	err := database.DB.QueryRow(ctx, query, personID).Scan(
		&p.PersonID, &p.FirstName, &p.LastName, &p.JobTitle,
		&p.Email, &p.PhoneNumber, &p.Role, &p.ZoneName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

// ListByEmailDomain retrieves every person whose email address ends in
// "@<domain>", ordered by first then last name.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - domain: Bare domain (e.g. "example.com"), without the "@"
//
// Returns:
//   - []models.Person: Matching persons, possibly empty
//   - error: Database error if query fails, nil on success
//
// Database: the pattern is bound as a parameter ("%@" || domain), never
// concatenated into the statement.
func (r *PersonRepository) ListByEmailDomain(ctx context.Context, domain string) ([]models.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM "Person"
		WHERE email LIKE $1
		ORDER BY first_name, last_name
	`

	rows, err := database.DB.Query(ctx, query, "%@"+domain)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := make([]models.Person, 0)
	for rows.Next() {
		var p models.Person
		err := rows.Scan(
			&p.PersonID, &p.FirstName, &p.LastName, &p.JobTitle,
			&p.Email, &p.PhoneNumber, &p.Role, &p.ZoneName,
		)
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return persons, nil
}
