package domain

// ScopeDim is one dimension of a tenant scope filter. It distinguishes three
// states: unset (no filtering on this dimension), an exact id match, and the
// free-tier sentinel (match only records with no owner on this dimension).
type ScopeDim struct {
	Set bool    // false means "ignore this dimension"
	ID  *string // nil with Set=true means free tier (owner must be nil)
}

// DimAny returns an unset dimension that matches every owner.
func DimAny() ScopeDim {
	return ScopeDim{}
}

// DimID returns a dimension restricting to the exact owner id.
func DimID(id string) ScopeDim {
	return ScopeDim{Set: true, ID: &id}
}

// DimFreeTier returns the free-tier sentinel: only records whose owner field
// is nil match.
func DimFreeTier() ScopeDim {
	return ScopeDim{Set: true}
}

// Matches applies the dimension to an entity's owner field.
func (d ScopeDim) Matches(owner *string) bool {
	if !d.Set {
		return true
	}
	if d.ID == nil {
		return owner == nil
	}
	return owner != nil && *owner == *d.ID
}

// Scope is the (userID, orgID) filter pair used for tenant isolation. Both
// record store backends apply the same predicate: the memory backend calls
// Matches directly, the relational backend translates each dimension to an
// equivalent WHERE clause.
type Scope struct {
	User ScopeDim
	Org  ScopeDim
}

// Matches reports whether an entity owned by (userID, orgID) falls inside the
// scope.
func (s Scope) Matches(userID, orgID *string) bool {
	return s.User.Matches(userID) && s.Org.Matches(orgID)
}

// ScopeForUser restricts to a single user, leaving the org dimension open.
func ScopeForUser(userID string) Scope {
	return Scope{User: DimID(userID)}
}

// ScopeForOrg restricts to a single organization, leaving the user dimension open.
func ScopeForOrg(orgID string) Scope {
	return Scope{Org: DimID(orgID)}
}

// ScopeForOwner builds the scope matching exactly the given owner pair, where
// a nil pointer means the free-tier sentinel on that dimension.
func ScopeForOwner(userID, orgID *string) Scope {
	s := Scope{User: DimFreeTier(), Org: DimFreeTier()}
	if userID != nil {
		s.User = DimID(*userID)
	}
	if orgID != nil {
		s.Org = DimID(*orgID)
	}
	return s
}
