package models

// Person represents a contact individual. A person can be designated as the
// responsible contact of any number of units via unit.com_person_id.
//
// Deleting persons is out of scope; units reference them without cascade.
//
// Database Table: "Person"
// Related: FR-003 (Contact Directory)
type Person struct {
	PersonID    int     `json:"Person_id" db:"Person_id"` // Primary key, auto-increment
	FirstName   *string `json:"first_name" db:"first_name"`
	LastName    *string `json:"last_name" db:"last_name"`
	JobTitle    *string `json:"job_title" db:"job_title"`
	Email       *string `json:"email" db:"email"`
	PhoneNumber *string `json:"phone_number" db:"phone_number"`
	Role        *string `json:"role" db:"role"`
	ZoneName    *string `json:"zone_name" db:"zone_name"`
}
