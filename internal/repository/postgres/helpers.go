package postgres

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lib/pq"
)

var sortColumnPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// orderClause builds a safe ORDER BY clause from filter sort fields. Sort
// columns must be plain lowercase identifiers; anything else falls back to
// created_at. The direction is normalized to ASC or DESC.
func orderClause(sort, order string) string {
	if !sortColumnPattern.MatchString(sort) {
		sort = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(order, "asc") {
		direction = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", sort, direction)
}

// pqStringArray adapts a string slice for use with ANY(:param) in named queries
func pqStringArray(values []string) pq.StringArray {
	return pq.StringArray(values)
}
