package domain_test

import (
	"testing"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestScopeDimMatches(t *testing.T) {
	tests := []struct {
		name  string
		dim   domain.ScopeDim
		owner *string
		want  bool
	}{
		{"unset matches nil owner", domain.DimAny(), nil, true},
		{"unset matches concrete owner", domain.DimAny(), strPtr("u1"), true},
		{"exact id matches same owner", domain.DimID("u1"), strPtr("u1"), true},
		{"exact id rejects other owner", domain.DimID("u1"), strPtr("u2"), false},
		{"exact id rejects nil owner", domain.DimID("u1"), nil, false},
		{"free tier matches nil owner", domain.DimFreeTier(), nil, true},
		{"free tier rejects concrete owner", domain.DimFreeTier(), strPtr("u1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dim.Matches(tt.owner))
		})
	}
}

func TestScopeMatchesBothDimensions(t *testing.T) {
	scope := domain.Scope{User: domain.DimID("u1"), Org: domain.DimFreeTier()}

	assert.True(t, scope.Matches(strPtr("u1"), nil))
	assert.False(t, scope.Matches(strPtr("u1"), strPtr("org1")))
	assert.False(t, scope.Matches(strPtr("u2"), nil))
	assert.False(t, scope.Matches(nil, nil))
}

func TestScopeForOwnerUsesFreeTierForNil(t *testing.T) {
	scope := domain.ScopeForOwner(nil, strPtr("org1"))

	// The nil user dimension must mean "free tier only", not "any user".
	assert.True(t, scope.Matches(nil, strPtr("org1")))
	assert.False(t, scope.Matches(strPtr("u1"), strPtr("org1")))
}

func TestScopeForOrgLeavesUserOpen(t *testing.T) {
	scope := domain.ScopeForOrg("org1")

	assert.True(t, scope.Matches(nil, strPtr("org1")))
	assert.True(t, scope.Matches(strPtr("u1"), strPtr("org1")))
	assert.False(t, scope.Matches(strPtr("u1"), strPtr("org2")))
	assert.False(t, scope.Matches(strPtr("u1"), nil))
}
