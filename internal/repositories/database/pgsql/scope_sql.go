package pgsql

import (
	"fmt"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// appendScopeConditions translates the tenant scope predicate into SQL. An
// unset dimension adds no clause; the free-tier sentinel becomes IS NULL, not
// an absent parameter, so it never widens to all tenants. This is the SQL
// rendering of domain.Scope.Matches and must stay equivalent to it.
func appendScopeConditions(scope domain.Scope, userCol, orgCol string, conds []string, args []any) ([]string, []any) {
	if scope.User.Set {
		if scope.User.ID == nil {
			conds = append(conds, userCol+" IS NULL")
		} else {
			args = append(args, *scope.User.ID)
			conds = append(conds, fmt.Sprintf("%s = $%d", userCol, len(args)))
		}
	}
	if scope.Org.Set {
		if scope.Org.ID == nil {
			conds = append(conds, orgCol+" IS NULL")
		} else {
			args = append(args, *scope.Org.ID)
			conds = append(conds, fmt.Sprintf("%s = $%d", orgCol, len(args)))
		}
	}
	return conds, args
}

// whereClause joins conditions into a WHERE clause, or returns the empty
// string when there are none.
func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	clause := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		clause += " AND " + c
	}
	return clause
}
