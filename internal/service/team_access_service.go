package service

import (
	"context"

	"github.com/noah-isme/club-officials-api/internal/models"
)

type teamManagerChecker interface {
	IsManager(ctx context.Context, teamID, userID string) (bool, error)
}

// TeamAccessService is the single place that decides who may manage a team's officials.
type TeamAccessService struct {
	managers teamManagerChecker
}

// NewTeamAccessService constructs the service.
func NewTeamAccessService(managers teamManagerChecker) *TeamAccessService {
	return &TeamAccessService{managers: managers}
}

// CanManage reports whether actor may edit duty assignments of teamID.
func (s *TeamAccessService) CanManage(ctx context.Context, actor *models.JWTClaims, teamID string) (bool, error) {
	if actor == nil || teamID == "" {
		return false, nil
	}
	switch actor.Role {
	case models.RoleAdmin:
		return true, nil
	case models.RoleTeamManager:
		return s.managers.IsManager(ctx, teamID, actor.UserID)
	}
	return false, nil
}
