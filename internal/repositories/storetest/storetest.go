// Package storetest holds a conformance suite asserting the behavior every
// record store backend must share: tenant isolation, the single active
// session rule, soft-delete visibility, work type ordering and ledger
// immutability surface. The memory backend runs it unconditionally; the
// PostgreSQL backend runs it against a live database when one is configured.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ProviderFactory returns a fresh, empty repository provider for one subtest.
type ProviderFactory func(t *testing.T) portsrepo.RepositoryProvider

// RunRepositorySuite runs the full conformance suite against the backend
// produced by newProvider.
func RunRepositorySuite(t *testing.T, newProvider ProviderFactory) {
	t.Run("OrganizationRoundTrip", func(t *testing.T) { testOrganizationRoundTrip(t, newProvider(t)) })
	t.Run("CaseworkerLookup", func(t *testing.T) { testCaseworkerLookup(t, newProvider(t)) })
	t.Run("UserScopeIsolation", func(t *testing.T) { testUserScopeIsolation(t, newProvider(t)) })
	t.Run("WorkTypeOrdering", func(t *testing.T) { testWorkTypeOrdering(t, newProvider(t)) })
	t.Run("WorkTypeSoftDelete", func(t *testing.T) { testWorkTypeSoftDelete(t, newProvider(t)) })
	t.Run("SessionExclusivity", func(t *testing.T) { testSessionExclusivity(t, newProvider(t)) })
	t.Run("SessionRestartAfterStop", func(t *testing.T) { testSessionRestartAfterStop(t, newProvider(t)) })
	t.Run("TransactionScopeFiltering", func(t *testing.T) { testTransactionScopeFiltering(t, newProvider(t)) })
}

func strPtr(s string) *string { return &s }

func newOrganization(name string) domain.Organization {
	return domain.Organization{
		OrgID:     uuid.NewString(),
		Name:      name,
		Tier:      domain.TierBasic,
		Features:  map[string]bool{"reports": true},
		Branding:  map[string]string{},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		IsActive:  true,
	}
}

func newUser(orgID *string, name string) domain.User {
	return domain.User{
		UserID:    uuid.NewString(),
		OrgID:     orgID,
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func testOrganizationRoundTrip(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()

	org := newOrganization("Hope Shelter")
	org.Subdomain = strPtr("hope")
	require.NoError(t, repos.OrganizationRepo.SaveOrganization(ctx, org))

	found, err := repos.OrganizationRepo.FindOrganizationByID(ctx, org.OrgID)
	require.NoError(t, err)
	require.Equal(t, org.Name, found.Name)
	require.Equal(t, org.Tier, found.Tier)
	require.True(t, found.IsActive)

	bySub, err := repos.OrganizationRepo.FindOrganizationBySubdomain(ctx, "hope")
	require.NoError(t, err)
	require.Equal(t, org.OrgID, bySub.OrgID)

	_, err = repos.OrganizationRepo.FindOrganizationByID(ctx, uuid.NewString())
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deactivation is an update, not a delete.
	org.IsActive = false
	require.NoError(t, repos.OrganizationRepo.SaveOrganization(ctx, org))
	found, err = repos.OrganizationRepo.FindOrganizationByID(ctx, org.OrgID)
	require.NoError(t, err)
	require.False(t, found.IsActive)
}

func testCaseworkerLookup(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()

	org := newOrganization("Hope Shelter")
	require.NoError(t, repos.OrganizationRepo.SaveOrganization(ctx, org))

	hash := "$2a$10$notarealhashnotarealhashnotarealhash"
	cw := domain.Caseworker{
		CaseworkerID: uuid.NewString(),
		OrgID:        org.OrgID,
		Email:        "ana@hope.org",
		Name:         "Ana",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repos.CaseworkerRepo.SaveCaseworker(ctx, cw))

	byEmail, err := repos.CaseworkerRepo.FindCaseworkerByEmail(ctx, org.OrgID, "ana@hope.org")
	require.NoError(t, err)
	require.Equal(t, cw.CaseworkerID, byEmail.CaseworkerID)
	require.Equal(t, hash, byEmail.PasswordHash)

	// Same email under a different org does not resolve.
	_, err = repos.CaseworkerRepo.FindCaseworkerByEmail(ctx, uuid.NewString(), "ana@hope.org")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deactivated caseworkers drop out of the org listing.
	cw.IsActive = false
	require.NoError(t, repos.CaseworkerRepo.SaveCaseworker(ctx, cw))
	listed, err := repos.CaseworkerRepo.ListCaseworkersByOrg(ctx, org.OrgID)
	require.NoError(t, err)
	require.Empty(t, listed)
}

func testUserScopeIsolation(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()

	org1 := newOrganization("Org One")
	org2 := newOrganization("Org Two")
	require.NoError(t, repos.OrganizationRepo.SaveOrganization(ctx, org1))
	require.NoError(t, repos.OrganizationRepo.SaveOrganization(ctx, org2))

	u1 := newUser(&org1.OrgID, "org1 user")
	u2 := newUser(&org2.OrgID, "org2 user")
	free := newUser(nil, "free-tier user")
	for _, u := range []domain.User{u1, u2, free} {
		require.NoError(t, repos.UserRepo.SaveUser(ctx, u))
	}

	org1Users, err := repos.UserRepo.ListUsersByScope(ctx, domain.ScopeForOrg(org1.OrgID))
	require.NoError(t, err)
	require.Len(t, org1Users, 1)
	require.Equal(t, u1.UserID, org1Users[0].UserID)

	// Free-tier scope matches only records with no org owner.
	freeUsers, err := repos.UserRepo.ListUsersByScope(ctx, domain.Scope{Org: domain.DimFreeTier()})
	require.NoError(t, err)
	require.Len(t, freeUsers, 1)
	require.Equal(t, free.UserID, freeUsers[0].UserID)

	// Unset dimensions match everything.
	all, err := repos.UserRepo.ListUsersByScope(ctx, domain.Scope{})
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func testWorkTypeOrdering(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()

	user := newUser(nil, "collector")
	require.NoError(t, repos.UserRepo.SaveUser(ctx, user))

	base := time.Now().UTC().Truncate(time.Microsecond)
	// Inserted out of display order on purpose.
	for i, order := range []int{2, 0, 1} {
		wt := domain.WorkType{
			WorkTypeID: uuid.NewString(),
			UserID:     &user.UserID,
			Name:       []string{"Other", "Donations", "Sales"}[i],
			SortOrder:  order,
			IsActive:   true,
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repos.WorkTypeRepo.SaveWorkType(ctx, wt))
	}

	listed, err := repos.WorkTypeRepo.ListWorkTypesByScope(ctx, domain.ScopeForUser(user.UserID))
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, []int{0, 1, 2}, []int{listed[0].SortOrder, listed[1].SortOrder, listed[2].SortOrder})
	require.Equal(t, "Donations", listed[0].Name)

	// Equal sort orders fall back to creation order.
	first := domain.WorkType{
		WorkTypeID: uuid.NewString(),
		UserID:     &user.UserID,
		Name:       "Tips (older)",
		SortOrder:  5,
		IsActive:   true,
		CreatedAt:  base.Add(10 * time.Second),
	}
	second := first
	second.WorkTypeID = uuid.NewString()
	second.Name = "Tips (newer)"
	second.CreatedAt = base.Add(20 * time.Second)
	require.NoError(t, repos.WorkTypeRepo.SaveWorkType(ctx, second))
	require.NoError(t, repos.WorkTypeRepo.SaveWorkType(ctx, first))

	listed, err = repos.WorkTypeRepo.ListWorkTypesByScope(ctx, domain.ScopeForUser(user.UserID))
	require.NoError(t, err)
	require.Len(t, listed, 5)
	require.Equal(t, "Tips (older)", listed[3].Name)
	require.Equal(t, "Tips (newer)", listed[4].Name)
}

func testWorkTypeSoftDelete(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()

	user := newUser(nil, "collector")
	require.NoError(t, repos.UserRepo.SaveUser(ctx, user))

	wt := domain.WorkType{
		WorkTypeID: uuid.NewString(),
		UserID:     &user.UserID,
		Name:       "Donations",
		SortOrder:  0,
		IsActive:   true,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repos.WorkTypeRepo.SaveWorkType(ctx, wt))
	require.NoError(t, repos.WorkTypeRepo.MarkWorkTypeInactive(ctx, wt.WorkTypeID))

	// Gone from listings, still resolvable by id for historical records.
	listed, err := repos.WorkTypeRepo.ListWorkTypesByScope(ctx, domain.ScopeForUser(user.UserID))
	require.NoError(t, err)
	require.Empty(t, listed)

	found, err := repos.WorkTypeRepo.FindWorkTypeByID(ctx, wt.WorkTypeID)
	require.NoError(t, err)
	require.False(t, found.IsActive)

	require.ErrorIs(t, repos.WorkTypeRepo.MarkWorkTypeInactive(ctx, uuid.NewString()), apperrors.ErrNotFound)
}

func testSessionExclusivity(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()

	user := newUser(nil, "collector")
	other := newUser(nil, "other collector")
	require.NoError(t, repos.UserRepo.SaveUser(ctx, user))
	require.NoError(t, repos.UserRepo.SaveUser(ctx, other))

	start := func(userID string) error {
		return repos.SessionRepo.StartSessionExclusive(ctx, domain.Session{
			SessionID: uuid.NewString(),
			UserID:    &userID,
			Location:  "main street",
			StartTime: time.Now().UTC().Truncate(time.Microsecond),
			IsActive:  true,
		})
	}

	require.NoError(t, start(user.UserID))

	// Second active session in the same scope must be refused.
	require.ErrorIs(t, start(user.UserID), apperrors.ErrConflict)

	// A different scope is unaffected.
	require.NoError(t, start(other.UserID))

	active, err := repos.SessionRepo.FindActiveSession(ctx, domain.ScopeForUser(user.UserID))
	require.NoError(t, err)
	require.Equal(t, &user.UserID, active.UserID)
}

func testSessionRestartAfterStop(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()

	user := newUser(nil, "collector")
	require.NoError(t, repos.UserRepo.SaveUser(ctx, user))

	first := domain.Session{
		SessionID: uuid.NewString(),
		UserID:    &user.UserID,
		Location:  "market",
		StartTime: time.Now().UTC().Truncate(time.Microsecond),
		IsActive:  true,
	}
	require.NoError(t, repos.SessionRepo.StartSessionExclusive(ctx, first))

	end := first.StartTime.Add(time.Hour)
	first.EndTime = &end
	first.IsActive = false
	require.NoError(t, repos.SessionRepo.SaveSession(ctx, first))

	_, err := repos.SessionRepo.FindActiveSession(ctx, domain.ScopeForUser(user.UserID))
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	second := domain.Session{
		SessionID: uuid.NewString(),
		UserID:    &user.UserID,
		Location:  "market",
		StartTime: first.StartTime.Add(2 * time.Hour),
		IsActive:  true,
	}
	require.NoError(t, repos.SessionRepo.StartSessionExclusive(ctx, second))

	listed, err := repos.SessionRepo.ListSessionsByScope(ctx, domain.ScopeForUser(user.UserID))
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, second.SessionID, listed[0].SessionID)
}

func testTransactionScopeFiltering(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()

	org := newOrganization("Org One")
	require.NoError(t, repos.OrganizationRepo.SaveOrganization(ctx, org))
	user := newUser(&org.OrgID, "collector")
	free := newUser(nil, "free-tier user")
	require.NoError(t, repos.UserRepo.SaveUser(ctx, user))
	require.NoError(t, repos.UserRepo.SaveUser(ctx, free))

	base := time.Now().UTC().Truncate(time.Microsecond)
	record := func(userID, orgID *string, amount string, offset time.Duration) domain.Transaction {
		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			UserID:        userID,
			OrgID:         orgID,
			Timestamp:     base.Add(offset),
			Amount:        decimal.RequireFromString(amount),
			Type:          domain.TypeDonation,
		}
		require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, txn))
		return txn
	}

	t1 := record(&user.UserID, &org.OrgID, "5.00", 0)
	t2 := record(&user.UserID, &org.OrgID, "10.00", time.Minute)
	record(&free.UserID, nil, "3.50", 2*time.Minute)

	orgTxns, err := repos.TransactionRepo.ListTransactionsByScope(ctx, domain.ScopeForOrg(org.OrgID))
	require.NoError(t, err)
	require.Len(t, orgTxns, 2)
	// Newest first.
	require.Equal(t, t2.TransactionID, orgTxns[0].TransactionID)
	require.Equal(t, t1.TransactionID, orgTxns[1].TransactionID)
	require.True(t, orgTxns[0].Amount.Equal(decimal.RequireFromString("10.00")))

	// Free-tier scope sees only ownerless records.
	freeTxns, err := repos.TransactionRepo.ListTransactionsByScope(ctx, domain.Scope{User: domain.DimFreeTier(), Org: domain.DimFreeTier()})
	require.NoError(t, err)
	require.Len(t, freeTxns, 1)
	require.True(t, freeTxns[0].Amount.Equal(decimal.RequireFromString("3.50")))

	found, err := repos.TransactionRepo.FindTransactionByID(ctx, t1.TransactionID)
	require.NoError(t, err)
	require.True(t, found.Amount.Equal(decimal.RequireFromString("5.00")))
}
