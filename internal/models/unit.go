package models

// Unit is the full projection of a site/branch belonging to a group. It
// carries the complete set of business attributes and is returned by the
// by-id, create, update and complete-group endpoints.
//
// Optional attributes are pointer-typed so a missing value is rendered as an
// explicit JSON null, never as an empty string and never omitted. Boolean
// flags are strict booleans here; tri-state input coercion happens in UnitInput.
//
// Database Table: unit
// Related: FR-002 (Unit Management)
type Unit struct {
	UnitID      int     `json:"unit_id" db:"unit_id"`           // Primary key, auto-increment
	GroupeID    int     `json:"groupe_id" db:"groupe_id"`       // Owning group, required
	UnitName    string  `json:"unit_name" db:"unit_name"`       // Required, non-empty
	GroupeName  *string `json:"groupe_name,omitempty"`          // Joined from groupe; only set on the by-id view
	City        *string `json:"city" db:"city"`
	Country     *string `json:"country" db:"country"`
	ComPersonID *int    `json:"com_person_id" db:"com_person_id"` // Responsible person FK, nullable
	ZoneName    *string `json:"zone_name" db:"zone_name"`

	// Account information
	AccountName          *string `json:"account_name" db:"account_name"`
	ParentAccount        *string `json:"parent_account" db:"parent_account"`
	KeyAccount           bool    `json:"key_account" db:"key_account"`
	KeAccountManager     *string `json:"ke_account_manager" db:"ke_account_manager"`
	AvoCarbonMainContact *string `json:"avo_carbon_main_contact" db:"avo_carbon_main_contact"`
	AvoCarbonTechLead    *string `json:"avo_carbon_tech_lead" db:"avo_carbon_tech_lead"`
	Type                 *string `json:"type" db:"type"`
	Industry             *string `json:"industry" db:"industry"`
	AccountOwner         *string `json:"account_owner" db:"account_owner"`
	Phone                *string `json:"phone" db:"phone"`
	Website              *string `json:"website" db:"website"`
	Employees            *string `json:"employees" db:"employees"`
	UsefulInformation    *string `json:"useful_information" db:"useful_information"`
	BillingAccountNumber *string `json:"billing_account_number" db:"billing_account_number"`
	ProductFamily        *string `json:"product_family" db:"product_family"`
	AccountCurrency      *string `json:"account_currency" db:"account_currency"`

	// Company information
	StartYear                  *string `json:"start_year" db:"start_year"`
	SolventCustomer            *string `json:"solvent_customer" db:"solvent_customer"`
	SolvencyInfo               *string `json:"solvency_info" db:"solvency_info"`
	BudgetAvoCarbon            *string `json:"budget_avo_carbon" db:"budget_avo_carbon"`
	AvoCarbonPotentialBuisness *string `json:"avo_carbon_potential_buisness" db:"avo_carbon_potential_buisness"`

	// Address information
	BillingAddressSearch   *string `json:"billing_address_search" db:"billing_address_search"`
	BillingStreet          *string `json:"billing_street" db:"billing_street"`
	BillingCity            *string `json:"billing_city" db:"billing_city"`
	BillingState           *string `json:"billing_state" db:"billing_state"`
	BillingZip             *string `json:"billing_zip" db:"billing_zip"`
	BillingCountry         *string `json:"billing_country" db:"billing_country"`
	ShipppingAddressSearch *string `json:"shippping_address_search" db:"shippping_address_search"`
	ShippingStreet         *string `json:"shipping_street" db:"shipping_street"`
	ShippingCity           *string `json:"shipping_city" db:"shipping_city"`
	ShippingState          *string `json:"shipping_state" db:"shipping_state"`
	ShippingZip            *string `json:"shipping_zip" db:"shipping_zip"`
	ShippingCountry        *string `json:"shipping_country" db:"shipping_country"`
	CopyBilling            bool    `json:"copy_billing" db:"copy_billing"`

	// Agreements
	ConfidentialityAgreement bool    `json:"confidentiality_agreement" db:"confidentiality_agreement"`
	QualityAgreement         bool    `json:"quality_agreement" db:"quality_agreement"`
	TermsPurshase            bool    `json:"terms_purshase" db:"terms_purshase"`
	LogisticsAgreement       bool    `json:"logistics_agreement" db:"logistics_agreement"`
	PaymentConditions        *string `json:"payment_conditions" db:"payment_conditions"`
	TechKeyAccount           *string `json:"tech_key_account" db:"tech_key_account"`

	// Responsible person, resolved from com_person_id.
	// Explicit null when the unit has no responsible contact.
	Responsible *Person `json:"responsible"`
}

// UnitSummary is the list projection of a unit: identity, location and
// contact fields only. Used inside GET /api/groups where the full attribute
// set would bloat the payload.
//
// Related: FR-004 (Nested Customer View)
type UnitSummary struct {
	UnitID      int     `json:"unit_id" db:"unit_id"`
	UnitName    string  `json:"unit_name" db:"unit_name"`
	City        *string `json:"city" db:"city"`
	Country     *string `json:"country" db:"country"`
	ZoneName    *string `json:"zone_name" db:"zone_name"`
	Phone       *string `json:"phone" db:"phone"`
	Website     *string `json:"website" db:"website"`
	Responsible *Person `json:"responsible"` // Explicit null when unset
}

// UnitInput is the request body for POST /api/units. GroupeID and UnitName
// are required; everything else is optional and persisted as null when absent.
// Flag fields accept true, "true", or nothing at all (see Flag).
type UnitInput struct {
	GroupeID    int     `json:"groupe_id"`
	UnitName    string  `json:"unit_name"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	ComPersonID *int    `json:"com_person_id"`
	ZoneName    *string `json:"zone_name"`

	AccountName          *string `json:"account_name"`
	ParentAccount        *string `json:"parent_account"`
	KeyAccount           Flag    `json:"key_account"`
	KeAccountManager     *string `json:"ke_account_manager"`
	AvoCarbonMainContact *string `json:"avo_carbon_main_contact"`
	AvoCarbonTechLead    *string `json:"avo_carbon_tech_lead"`
	Type                 *string `json:"type"`
	Industry             *string `json:"industry"`
	AccountOwner         *string `json:"account_owner"`
	Phone                *string `json:"phone"`
	Website              *string `json:"website"`
	Employees            *string `json:"employees"`
	UsefulInformation    *string `json:"useful_information"`
	BillingAccountNumber *string `json:"billing_account_number"`
	ProductFamily        *string `json:"product_family"`
	AccountCurrency      *string `json:"account_currency"`

	StartYear                  *string `json:"start_year"`
	SolventCustomer            *string `json:"solvent_customer"`
	SolvencyInfo               *string `json:"solvency_info"`
	BudgetAvoCarbon            *string `json:"budget_avo_carbon"`
	AvoCarbonPotentialBuisness *string `json:"avo_carbon_potential_buisness"`

	BillingAddressSearch   *string `json:"billing_address_search"`
	BillingStreet          *string `json:"billing_street"`
	BillingCity            *string `json:"billing_city"`
	BillingState           *string `json:"billing_state"`
	BillingZip             *string `json:"billing_zip"`
	BillingCountry         *string `json:"billing_country"`
	ShipppingAddressSearch *string `json:"shippping_address_search"`
	ShippingStreet         *string `json:"shipping_street"`
	ShippingCity           *string `json:"shipping_city"`
	ShippingState          *string `json:"shipping_state"`
	ShippingZip            *string `json:"shipping_zip"`
	ShippingCountry        *string `json:"shipping_country"`
	CopyBilling            Flag    `json:"copy_billing"`

	ConfidentialityAgreement Flag    `json:"confidentiality_agreement"`
	QualityAgreement         Flag    `json:"quality_agreement"`
	TermsPurshase            Flag    `json:"terms_purshase"`
	LogisticsAgreement       Flag    `json:"logistics_agreement"`
	PaymentConditions        *string `json:"payment_conditions"`
	TechKeyAccount           *string `json:"tech_key_account"`
}

// UnitUpdateInput is the request body for PUT /api/units/:id. Only the
// mutable identity/location fields are updatable. UnitName is required.
//
// An absent ComPersonID clears the responsible reference (that is how clients
// detach a contact); an absent GroupeID leaves the owning group unchanged.
type UnitUpdateInput struct {
	UnitName    string  `json:"unit_name"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	ZoneName    *string `json:"zone_name"`
	ComPersonID *int    `json:"com_person_id"`
	GroupeID    *int    `json:"groupe_id"`
}
