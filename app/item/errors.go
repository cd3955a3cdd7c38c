package item

import (
	"catalog/pkg/httperror"
	"database/sql"
	"errors"
	"fmt"
)

const serviceName = "catalog"

func notFound(code string, id int64) error {
	return httperror.NotFound(code, fmt.Sprintf("Item not found with id: %d", id), nil)
}

// findError classifies a failed by-id lookup.
func findError(code string, id int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(code, id)
	}
	return fmt.Errorf("find item %d: %w", id, err)
}
