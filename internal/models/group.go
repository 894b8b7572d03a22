// Package models defines the domain entities and data transfer objects for the
// customer backend. It includes database models mapped to PostgreSQL tables,
// input DTOs for request bodies, and the nested view models returned by the API.
//
// JSON field names follow the historical wire contract consumed by the
// existing frontend, including the legacy spellings ("Description",
// "Person_id", "shippping_address_search", "terms_purshase"). Renaming them
// breaks clients, so they are preserved verbatim.
package models

// Group represents a top-level customer organization record.
// A group owns zero or more units; deleting a group removes its units.
//
// Database Table: groupe
// Related: FR-001 (Group Management)
type Group struct {
	GroupeID    int     `json:"groupe_id" db:"groupe_id"`     // Primary key, auto-increment
	GroupeName  string  `json:"groupe_name" db:"groupe_name"` // Required, non-empty
	Description *string `json:"Description" db:"Description"` // Optional free text, null when absent
}

// GroupWithUnits is the list view returned by GET /api/groups: a group with
// its units in summary projection, ordered as produced by the query.
//
// Related: FR-004 (Nested Customer View)
type GroupWithUnits struct {
	Group
	Units []UnitSummary `json:"units"` // Always present, [] when the group has no units
}

// GroupComplete is the detail view returned by GET /api/groups/:id/complete:
// a group with its units in full projection, each carrying its responsible person.
//
// Related: FR-004 (Nested Customer View)
type GroupComplete struct {
	Group
	Units []Unit `json:"units"` // Always present, [] when the group has no units
}

// GroupInput is the request body for creating or updating a group.
// GroupeName is the only required field.
type GroupInput struct {
	GroupeName  string  `json:"groupe_name"`
	Description *string `json:"Description"`
}

// DeletedGroup is the response body for DELETE /api/groups/:id.
// It confirms the cascade and echoes the group row as it existed before deletion.
type DeletedGroup struct {
	Message      string `json:"message"`
	DeletedGroup Group  `json:"deletedGroup"`
}
