package services_test

import (
	"context"
	"testing"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/fieldcollect/field_collections_app/internal/core/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestCollectionFlow drives the full service stack over the in-memory backend:
// onboard an org and user, seed work types, run a session with transactions,
// and check the aggregated totals from every relevant scope.
func TestCollectionFlow(t *testing.T) {
	ctx := context.Background()
	container := services.NewServiceContainer(memory.NewRepositoryProvider("", 0, nil))

	org, err := container.Organization.CreateOrganization(ctx, dto.CreateOrganizationRequest{
		Name: "Hope Shelter",
		Tier: "professional",
	})
	require.NoError(t, err)

	user, err := container.User.CreateUser(ctx, dto.CreateUserRequest{
		OrgID: &org.OrgID,
		Name:  "Field collector",
	})
	require.NoError(t, err)

	// First login seeds the defaults; the second call must not duplicate them.
	require.NoError(t, container.Seed.EnsureDefaultWorkTypes(ctx, nil, &org.OrgID))
	require.NoError(t, container.Seed.EnsureDefaultWorkTypes(ctx, nil, &org.OrgID))
	workTypes, err := container.WorkType.ListWorkTypesByScope(ctx, domain.ScopeForOrg(org.OrgID))
	require.NoError(t, err)
	require.Len(t, workTypes, 4)
	require.Equal(t, "Donations", workTypes[0].Name)

	session, err := container.Session.StartSession(ctx, dto.StartSessionRequest{
		UserID:     &user.UserID,
		OrgID:      &org.OrgID,
		WorkTypeID: &workTypes[0].WorkTypeID,
		Location:   "main street",
	})
	require.NoError(t, err)

	// The scope already runs a session; another start must be refused.
	_, err = container.Session.StartSession(ctx, dto.StartSessionRequest{
		UserID:   &user.UserID,
		OrgID:    &org.OrgID,
		Location: "elsewhere",
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)

	for _, amount := range []string{"5.00", "10.00"} {
		txn, err := container.Transaction.RecordTransaction(ctx, dto.RecordTransactionRequest{
			SessionID: &session.SessionID,
			Amount:    amount,
			Type:      "donation",
		})
		require.NoError(t, err)
		// Owner scope and work type come from the session.
		require.Equal(t, session.UserID, txn.UserID)
		require.Equal(t, session.WorkTypeID, txn.WorkTypeID)
	}

	// A test session's takings never count.
	stopped, err := container.Session.StopSession(ctx, session.SessionID)
	require.NoError(t, err)
	require.NotNil(t, stopped.EndTime)

	testSession, err := container.Session.StartSession(ctx, dto.StartSessionRequest{
		UserID:   &user.UserID,
		OrgID:    &org.OrgID,
		Location: "training room",
		IsTest:   true,
	})
	require.NoError(t, err)
	_, err = container.Transaction.RecordTransaction(ctx, dto.RecordTransactionRequest{
		SessionID: &testSession.SessionID,
		Amount:    "999.00",
		Type:      "donation",
	})
	require.NoError(t, err)

	orgTotal, err := container.Reporting.TotalCollected(ctx, domain.ScopeForOrg(org.OrgID), domain.TimeframeAllTime)
	require.NoError(t, err)
	require.True(t, orgTotal.Equal(decimal.RequireFromString("15.00")), "got %s", orgTotal)

	userTotal, err := container.Reporting.TotalCollected(ctx, domain.ScopeForUser(user.UserID), domain.TimeframeAllTime)
	require.NoError(t, err)
	require.True(t, userTotal.Equal(decimal.RequireFromString("15.00")), "got %s", userTotal)

	// The free-tier scope sees none of the org's money.
	freeTotal, err := container.Reporting.TotalCollected(ctx,
		domain.Scope{User: domain.DimFreeTier(), Org: domain.DimFreeTier()}, domain.TimeframeAllTime)
	require.NoError(t, err)
	require.True(t, freeTotal.IsZero())

	summary, err := container.Reporting.CollectionSummary(ctx, domain.ScopeForOrg(org.OrgID))
	require.NoError(t, err)
	require.True(t, summary.AllTime.Equal(decimal.RequireFromString("15.00")))
	require.Equal(t, 2, summary.TransactionCount)

	// Stopping the stopped session again is a terminal-state conflict.
	_, err = container.Session.StopSession(ctx, session.SessionID)
	require.ErrorIs(t, err, apperrors.ErrConflict)
}
