package domain

import (
	"fmt"
	"time"
)

type Item struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	IsActive    *bool     `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// IsNew reports whether the row has not been persisted yet.
func (i Item) IsNew() bool {
	return i.ID == 0
}

// WithDetails returns a copy carrying the given name and description.
// Identity, timestamps and the active flag are kept.
func (i Item) WithDetails(name string, description *string) Item {
	i.Name = name
	i.Description = description
	return i
}

func (i Item) Activity() Activity {
	switch {
	case i.IsActive == nil:
		return ActivityUnset
	case *i.IsActive:
		return ActivityActive
	default:
		return ActivityInactive
	}
}

// Activity is the three-valued reading of the nullable is_active column.
type Activity string

const (
	ActivityActive   Activity = "active"
	ActivityInactive Activity = "inactive"
	ActivityUnset    Activity = "unset"
)

// ActivePolicy selects how rows with an unset active flag are treated by a query.
type ActivePolicy string

const (
	// ActiveStrict matches is_active = true only.
	ActiveStrict ActivePolicy = "strict"
	// ActiveOrLegacy also matches rows whose is_active is NULL.
	ActiveOrLegacy ActivePolicy = "legacy"
)

func ParseActivePolicy(s string) (ActivePolicy, error) {
	switch ActivePolicy(s) {
	case ActiveStrict, ActiveOrLegacy:
		return ActivePolicy(s), nil
	}
	return "", fmt.Errorf("unknown active policy %q", s)
}

// Includes reports whether an item with the given activity matches the policy.
func (p ActivePolicy) Includes(a Activity) bool {
	switch p {
	case ActiveStrict:
		return a == ActivityActive
	case ActiveOrLegacy:
		return a == ActivityActive || a == ActivityUnset
	}
	return false
}
