package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/club-officials-api/internal/models"
)

type managerCheckerStub struct {
	managed map[string]bool
	err     error
	calls   int
}

func (s *managerCheckerStub) IsManager(ctx context.Context, teamID, userID string) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.managed[teamID+"/"+userID], nil
}

func TestTeamAccessServiceCanManage(t *testing.T) {
	checker := &managerCheckerStub{managed: map[string]bool{"team-1/u1": true}}
	svc := NewTeamAccessService(checker)
	ctx := context.Background()

	allowed, err := svc.CanManage(ctx, &models.JWTClaims{UserID: "admin", Role: models.RoleAdmin}, "team-9")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, checker.calls)

	allowed, err = svc.CanManage(ctx, &models.JWTClaims{UserID: "u1", Role: models.RoleTeamManager}, "team-1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.CanManage(ctx, &models.JWTClaims{UserID: "u1", Role: models.RoleTeamManager}, "team-2")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = svc.CanManage(ctx, &models.JWTClaims{UserID: "u1", Role: models.RoleMember}, "team-1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = svc.CanManage(ctx, nil, "team-1")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestTeamAccessServicePropagatesLookupError(t *testing.T) {
	svc := NewTeamAccessService(&managerCheckerStub{err: errors.New("db down")})

	_, err := svc.CanManage(context.Background(), &models.JWTClaims{UserID: "u1", Role: models.RoleTeamManager}, "team-1")
	require.Error(t, err)
}
