package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/club-officials-api/internal/models"
)

// TeamRepository reads teams, their managers and their rosters.
type TeamRepository struct {
	db *sqlx.DB
}

// NewTeamRepository constructs the repository.
func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// FindByID returns the team or sql.ErrNoRows.
func (r *TeamRepository) FindByID(ctx context.Context, id string) (*models.Team, error) {
	const query = `SELECT id, name, created_at, updated_at FROM teams WHERE id = $1`
	var team models.Team
	if err := r.db.GetContext(ctx, &team, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find team: %w", err)
	}
	return &team, nil
}

// IsManager checks whether the user manages the team.
func (r *TeamRepository) IsManager(ctx context.Context, teamID, userID string) (bool, error) {
	const query = `SELECT 1 FROM team_managers WHERE team_id = $1 AND user_id = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, teamID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check team manager: %w", err)
	}
	return true, nil
}

// ListPlayers returns the team roster ordered by name.
func (r *TeamRepository) ListPlayers(ctx context.Context, teamID string) ([]models.Player, error) {
	const query = `SELECT id, team_id, name, created_at FROM players WHERE team_id = $1 ORDER BY name ASC`
	players := []models.Player{}
	if err := r.db.SelectContext(ctx, &players, query, teamID); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}
