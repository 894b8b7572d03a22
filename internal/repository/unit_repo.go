package repository

import (
	"context"
	"errors"

	"github.com/STS-Engineer/customer-backend/internal/database"
	"github.com/STS-Engineer/customer-backend/internal/models"
	"github.com/jackc/pgx/v5"
)

// UnitRepository handles unit-related database operations.
// Units carry the bulk of the business attributes (account, company,
// addresses, agreements) plus an optional responsible person reference.
//
// Related: FR-002 (Unit Management)
type UnitRepository struct{}

// NewUnitRepository creates a new instance of UnitRepository.
func NewUnitRepository() *UnitRepository {
	return &UnitRepository{}
}

// unitScanTargets returns scan destinations for the 47 unit columns in their
// canonical order (unit_id first, then the insert order of the unit table).
// Every SELECT and RETURNING clause in this package lists columns in exactly
// this order; the two must be changed together.
func unitScanTargets(u *models.Unit) []interface{} {
	return []interface{}{
		&u.UnitID, &u.GroupeID, &u.UnitName, &u.City, &u.Country, &u.ComPersonID, &u.ZoneName,
		&u.AccountName, &u.ParentAccount, &u.KeyAccount, &u.KeAccountManager,
		&u.AvoCarbonMainContact, &u.AvoCarbonTechLead, &u.Type, &u.Industry,
		&u.AccountOwner, &u.Phone, &u.Website, &u.Employees, &u.UsefulInformation,
		&u.BillingAccountNumber, &u.ProductFamily, &u.AccountCurrency,
		&u.StartYear, &u.SolventCustomer, &u.SolvencyInfo, &u.BudgetAvoCarbon,
		&u.AvoCarbonPotentialBuisness,
		&u.BillingAddressSearch, &u.BillingStreet, &u.BillingCity, &u.BillingState,
		&u.BillingZip, &u.BillingCountry,
		&u.ShipppingAddressSearch, &u.ShippingStreet, &u.ShippingCity, &u.ShippingState,
		&u.ShippingZip, &u.ShippingCountry, &u.CopyBilling,
		&u.ConfidentialityAgreement, &u.QualityAgreement, &u.TermsPurshase,
		&u.LogisticsAgreement, &u.PaymentConditions, &u.TechKeyAccount,
	}
}

// GetByID retrieves one unit in full projection, joined with its group name
// and its responsible person.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - unitID: ID of the unit to fetch
//
// Returns:
//   - *models.Unit: The unit with GroupeName and Responsible populated
//   - error: ErrNotFound when the unit does not exist, database error otherwise
//
// Database: LEFT JOIN groupe and "Person". The person's own zone_name is
// aliased to avoid colliding with the unit column of the same name.
func (r *UnitRepository) GetByID(ctx context.Context, unitID int) (*models.Unit, error) {
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
			g.groupe_name,
			p."Person_id", p.first_name, p.last_name, p.job_title,
			p.email, p.phone_number, p.role, p.zone_name AS person_zone_name
		FROM unit u
		LEFT JOIN groupe g ON u.groupe_id = g.groupe_id
		LEFT JOIN "Person" p ON u.com_person_id = p."Person_id"
		WHERE u.unit_id = $1
	`

	var u models.Unit
	var (
		personID                                                       *int
		firstName, lastName, jobTitle, email, phoneNumber, role, pZone *string
	)

	targets := unitScanTargets(&u)
	targets = append(targets, &u.GroupeName)
	targets = append(targets, &personID, &firstName, &lastName, &jobTitle, &email, &phoneNumber, &role, &pZone)

	err := database.DB.QueryRow(ctx, query, unitID).Scan(targets...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	u.Responsible = joinedPerson(personID, firstName, lastName, jobTitle, email, phoneNumber, role, pZone)
	return &u, nil
}

// Create inserts a new unit with the full attribute set and returns the
// created row. Boolean flags arrive already normalized (models.Flag), so the
// bound parameters are strict booleans.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - in: Validated input; GroupeID and UnitName are guaranteed present
//
// Returns:
//   - *models.Unit: The created row including its generated id
//   - error: Database error if insertion fails (e.g. unknown groupe_id), nil on success
//
// Database: unit.groupe_id is a NOT NULL foreign key, so the store rejects
// creation against a missing group.
func (r *UnitRepository) Create(ctx context.Context, in *models.UnitInput) (*models.Unit, error) {
	query := `
		INSERT INTO unit (
			groupe_id, unit_name, city, country, com_person_id, zone_name,
			account_name, parent_account, key_account, ke_account_manager,
			avo_carbon_main_contact, avo_carbon_tech_lead, type, industry,
			account_owner, phone, website, employees, useful_information,
			billing_account_number, product_family, account_currency,
			start_year, solvent_customer, solvency_info, budget_avo_carbon,
			avo_carbon_potential_buisness,
			billing_address_search, billing_street, billing_city, billing_state,
			billing_zip, billing_country,
			shippping_address_search, shipping_street, shipping_city, shipping_state,
			shipping_zip, shipping_country, copy_billing,
			confidentiality_agreement, quality_agreement, terms_purshase,
			logistics_agreement, payment_conditions, tech_key_account
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42, $43, $44, $45, $46
		)
		RETURNING
			unit_id, groupe_id, unit_name, city, country, com_person_id, zone_name,
			account_name, parent_account, key_account, ke_account_manager,
			avo_carbon_main_contact, avo_carbon_tech_lead, type, industry,
			account_owner, phone, website, employees, useful_information,
			billing_account_number, product_family, account_currency,
			start_year, solvent_customer, solvency_info, budget_avo_carbon,
			avo_carbon_potential_buisness,
			billing_address_search, billing_street, billing_city, billing_state,
			billing_zip, billing_country,
			shippping_address_search, shipping_street, shipping_city, shipping_state,
			shipping_zip, shipping_country, copy_billing,
			confidentiality_agreement, quality_agreement, terms_purshase,
			logistics_agreement, payment_conditions, tech_key_account
	`

	args := []interface{}{
		in.GroupeID, in.UnitName, in.City, in.Country, in.ComPersonID, in.ZoneName,
		in.AccountName, in.ParentAccount, in.KeyAccount.Bool(), in.KeAccountManager,
		in.AvoCarbonMainContact, in.AvoCarbonTechLead, in.Type, in.Industry,
		in.AccountOwner, in.Phone, in.Website, in.Employees, in.UsefulInformation,
		in.BillingAccountNumber, in.ProductFamily, in.AccountCurrency,
		in.StartYear, in.SolventCustomer, in.SolvencyInfo, in.BudgetAvoCarbon,
		in.AvoCarbonPotentialBuisness,
		in.BillingAddressSearch, in.BillingStreet, in.BillingCity, in.BillingState,
		in.BillingZip, in.BillingCountry,
		in.ShipppingAddressSearch, in.ShippingStreet, in.ShippingCity, in.ShippingState,
		in.ShippingZip, in.ShippingCountry, in.CopyBilling.Bool(),
		in.ConfidentialityAgreement.Bool(), in.QualityAgreement.Bool(), in.TermsPurshase.Bool(),
		in.LogisticsAgreement.Bool(), in.PaymentConditions, in.TechKeyAccount,
	}

	var u models.Unit
	if err := database.DB.QueryRow(ctx, query, args...).Scan(unitScanTargets(&u)...); err != nil {
		return nil, err
	}

	return &u, nil
}

// Update modifies a unit's identity and location fields and returns the
// updated row in full projection.
//
// com_person_id is set from the input as-is: an absent value clears the
// responsible reference. groupe_id is COALESCEd so an absent value keeps the
// current owning group instead of violating the NOT NULL constraint.
//
// Returns ErrNotFound when no unit has the given id.
func (r *UnitRepository) Update(ctx context.Context, unitID int, in *models.UnitUpdateInput) (*models.Unit, error) {
	query := `
		UPDATE unit
		SET unit_name = $1,
		    city = $2,
		    country = $3,
		    zone_name = $4,
		    com_person_id = $5,
		    groupe_id = COALESCE($6, groupe_id)
		WHERE unit_id = $7
		RETURNING
			unit_id, groupe_id, unit_name, city, country, com_person_id, zone_name,
			account_name, parent_account, key_account, ke_account_manager,
			avo_carbon_main_contact, avo_carbon_tech_lead, type, industry,
			account_owner, phone, website, employees, useful_information,
			billing_account_number, product_family, account_currency,
			start_year, solvent_customer, solvency_info, budget_avo_carbon,
			avo_carbon_potential_buisness,
			billing_address_search, billing_street, billing_city, billing_state,
			billing_zip, billing_country,
			shippping_address_search, shipping_street, shipping_city, shipping_state,
			shipping_zip, shipping_country, copy_billing,
			confidentiality_agreement, quality_agreement, terms_purshase,
			logistics_agreement, payment_conditions, tech_key_account
	`

	var u models.Unit
	err := database.DB.QueryRow(ctx, query,
		in.UnitName, in.City, in.Country, in.ZoneName, in.ComPersonID, in.GroupeID, unitID,
	).Scan(unitScanTargets(&u)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}
