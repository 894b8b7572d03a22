package repository

import "github.com/STS-Engineer/customer-backend/internal/models"

// GroupUnitRow is one row of the groupe × unit × "Person" left-join feeding
// GET /api/groups. Unit and person columns are pointer-typed because both
// joins are outer: a group without units produces one row with a nil UnitID,
// and a unit without a responsible contact carries a nil PersonID.
type GroupUnitRow struct {
	GroupeID    int
	GroupeName  string
	Description *string

	UnitID   *int
	UnitName *string
	City     *string
	Country  *string
	ZoneName *string
	Phone    *string
	Website  *string

	PersonID       *int
	FirstName      *string
	LastName       *string
	JobTitle       *string
	Email          *string
	PhoneNumber    *string
	Role           *string
	PersonZoneName *string
}

// AggregateGroups folds the flat join result into the nested list view:
// one entry per group, each holding its units in the order the rows arrived.
//
// Grouping key is the group identifier. The first row carrying a given id
// establishes that group's position in the output; later rows with the same
// id only append to its unit list. Since the query orders by group name, the
// output follows name order without any re-sorting here.
//
// A row with a nil UnitID marks a group that matched no units: it creates
// the group entry with an empty (never null) unit list. Rows are never
// deduplicated — every row with a distinct unit id becomes one unit entry.
//
// The index map is local to this call; no state survives the aggregation.
func AggregateGroups(rows []GroupUnitRow) []models.GroupWithUnits {
	index := make(map[int]int, len(rows))
	groups := make([]models.GroupWithUnits, 0, len(rows))

	for _, row := range rows {
		i, seen := index[row.GroupeID]
		if !seen {
			i = len(groups)
			index[row.GroupeID] = i
			groups = append(groups, models.GroupWithUnits{
				Group: models.Group{
					GroupeID:    row.GroupeID,
					GroupeName:  row.GroupeName,
					Description: row.Description,
				},
				Units: make([]models.UnitSummary, 0),
			})
		}

		if row.UnitID == nil {
			// Group with no units: entry already exists, nothing to append
			continue
		}

		var name string
		if row.UnitName != nil {
			name = *row.UnitName
		}

		groups[i].Units = append(groups[i].Units, models.UnitSummary{
			UnitID:      *row.UnitID,
			UnitName:    name,
			City:        row.City,
			Country:     row.Country,
			ZoneName:    row.ZoneName,
			Phone:       row.Phone,
			Website:     row.Website,
			Responsible: joinedPerson(row.PersonID, row.FirstName, row.LastName, row.JobTitle, row.Email, row.PhoneNumber, row.Role, row.PersonZoneName),
		})
	}

	return groups
}

// joinedPerson maps the nullable person columns of an outer join into a
// Person, or nil when the join did not match. The id column decides:
// responsible is null if and only if the person id is null in the source row.
func joinedPerson(id *int, firstName, lastName, jobTitle, email, phoneNumber, role, zoneName *string) *models.Person {
	if id == nil {
		return nil
	}

	return &models.Person{
		PersonID:    *id,
		FirstName:   firstName,
		LastName:    lastName,
		JobTitle:    jobTitle,
		Email:       email,
		PhoneNumber: phoneNumber,
		Role:        role,
		ZoneName:    zoneName,
	}
}
