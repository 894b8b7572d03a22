package repository

import (
	"context"
	"errors"

	"github.com/STS-Engineer/customer-backend/internal/database"
	"github.com/STS-Engineer/customer-backend/internal/models"
	"github.com/jackc/pgx/v5"
)

// GroupRepository handles group-related database operations.
// Manages customer groups and the nested group → unit → person views.
//
// Related: FR-001 (Group Management), FR-004 (Nested Customer View)
type GroupRepository struct{}

// NewGroupRepository creates a new instance of GroupRepository.
func NewGroupRepository() *GroupRepository {
	return &GroupRepository{}
}

// ListWithUnits retrieves every group with its units in summary projection
// and each unit's responsible person. Used by the customer list page.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//
// Returns:
//   - []models.GroupWithUnits: Groups in name order, units nested per group
//   - error: Database error if query fails, nil on success
//
// Database: LEFT JOIN unit and "Person"; ordering by group then unit name.
// The flat result is folded by AggregateGroups, so group order follows the
// first appearance of each groupe_id in the row stream.
func (r *GroupRepository) ListWithUnits(ctx context.Context) ([]models.GroupWithUnits, error) {
	query := `
		SELECT
			g.groupe_id, g.groupe_name, g."Description",
			u.unit_id, u.unit_name, u.city, u.country, u.zone_name, u.phone, u.website,
			p."Person_id", p.first_name, p.last_name, p.job_title,
			p.email, p.phone_number, p.role, p.zone_name AS person_zone_name
		FROM groupe g
		LEFT JOIN unit u ON g.groupe_id = u.groupe_id
		LEFT JOIN "Person" p ON u.com_person_id = p."Person_id"
		ORDER BY g.groupe_name, u.unit_name
	`

	rows, err := database.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flat []GroupUnitRow
	for rows.Next() {
		var row GroupUnitRow
		err := rows.Scan(
			&row.GroupeID, &row.GroupeName, &row.Description,
			&row.UnitID, &row.UnitName, &row.City, &row.Country, &row.ZoneName, &row.Phone, &row.Website,
			&row.PersonID, &row.FirstName, &row.LastName, &row.JobTitle,
			&row.Email, &row.PhoneNumber, &row.Role, &row.PersonZoneName,
		)
		if err != nil {
			return nil, err
		}
		flat = append(flat, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return AggregateGroups(flat), nil
}

// Create inserts a new group and returns the created row.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - in: Validated input carrying the group name and optional description
//
// Returns:
//   - *models.Group: The created row including its generated id
//   - error: Database error if insertion fails, nil on success
func (r *GroupRepository) Create(ctx context.Context, in *models.GroupInput) (*models.Group, error) {
	query := `
		INSERT INTO groupe (groupe_name, "Description")
		VALUES ($1, $2)
		RETURNING groupe_id, groupe_name, "Description"
	`

	var g models.Group
	err := database.DB.QueryRow(ctx, query, in.GroupeName, in.Description).
		Scan(&g.GroupeID, &g.GroupeName, &g.Description)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

// Update replaces a group's name and description and returns the updated row.
//
// Returns ErrNotFound when no group has the given id.
func (r *GroupRepository) Update(ctx context.Context, groupID int, in *models.GroupInput) (*models.Group, error) {
	query := `
		UPDATE groupe
		SET groupe_name = $1, "Description" = $2
		WHERE groupe_id = $3
		RETURNING groupe_id, groupe_name, "Description"
	`

	var g models.Group
	err := database.DB.QueryRow(ctx, query, in.GroupeName, in.Description, groupID).
		Scan(&g.GroupeID, &g.GroupeName, &g.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &g, nil
}

// Delete removes a group and all of its units in one transaction and returns
// the group row as it existed before deletion.
//
// Units are deleted first because unit.groupe_id references the group row.
// If the group itself matches no row, the transaction is rolled back so the
// unit deletions never take effect, and ErrNotFound is returned.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - groupID: ID of the group to delete
//
// Returns:
//   - *models.Group: The deleted group row
//   - error: ErrNotFound when the group does not exist, database error otherwise
//
// Related: FR-001 (Group Management)
func (r *GroupRepository) Delete(ctx context.Context, groupID int) (*models.Group, error) {
	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM unit WHERE groupe_id = $1`, groupID); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	var g models.Group
	err = tx.QueryRow(ctx,
		`DELETE FROM groupe WHERE groupe_id = $1 RETURNING groupe_id, groupe_name, "Description"`,
		groupID,
	).Scan(&g.GroupeID, &g.GroupeName, &g.Description)
	if err != nil {
		_ = tx.Rollback(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &g, nil
}

// GetComplete retrieves one group with its units in full projection, each
// unit carrying its responsible person. Two queries: the group row first
// (404 check before touching units), then the unit join.
//
// Returns ErrNotFound when no group has the given id.
//
// Related: FR-004 (Nested Customer View)
func (r *GroupRepository) GetComplete(ctx context.Context, groupID int) (*models.GroupComplete, error) {
	var complete models.GroupComplete
	err := database.DB.QueryRow(ctx,
		`SELECT groupe_id, groupe_name, "Description" FROM groupe WHERE groupe_id = $1`,
		groupID,
	).Scan(&complete.GroupeID, &complete.GroupeName, &complete.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	query := `
		SELECT
			u.unit_id, u.groupe_id, u.unit_name, u.city, u.country, u.com_person_id, u.zone_name,
			u.account_name, u.parent_account, u.key_account, u.ke_account_manager,
			u.avo_carbon_main_contact, u.avo_carbon_tech_lead, u.type, u.industry,
			u.account_owner, u.phone, u.website, u.employees, u.useful_information,
			u.billing_account_number, u.product_family, u.account_currency,
			u.start_year, u.solvent_customer, u.solvency_info, u.budget_avo_carbon,
			u.avo_carbon_potential_buisness,
			u.billing_address_search, u.billing_street, u.billing_city, u.billing_state,
			u.billing_zip, u.billing_country,
			u.shippping_address_search, u.shipping_street, u.shipping_city, u.shipping_state,
			u.shipping_zip, u.shipping_country, u.copy_billing,
			u.confidentiality_agreement, u.quality_agreement, u.terms_purshase,
			u.logistics_agreement, u.payment_conditions, u.tech_key_account,
			p."Person_id", p.first_name, p.last_name, p.job_title,
			p.email, p.phone_number, p.role, p.zone_name AS person_zone_name
		FROM unit u
		LEFT JOIN "Person" p ON u.com_person_id = p."Person_id"
		WHERE u.groupe_id = $1
		ORDER BY u.unit_name
	`

	rows, err := database.DB.Query(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complete.Units = make([]models.Unit, 0)
	for rows.Next() {
		var u models.Unit
		var (
			personID                                                       *int
			firstName, lastName, jobTitle, email, phoneNumber, role, pZone *string
		)

		targets := unitScanTargets(&u)
		targets = append(targets, &personID, &firstName, &lastName, &jobTitle, &email, &phoneNumber, &role, &pZone)
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}

		u.Responsible = joinedPerson(personID, firstName, lastName, jobTitle, email, phoneNumber, role, pZone)
		complete.Units = append(complete.Units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &complete, nil
}
