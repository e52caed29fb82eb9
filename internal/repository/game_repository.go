package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/club-officials-api/internal/models"
)

const gameColumns = `id, team_id, game_date, game_time, opponent, location, is_home, officials, created_at, updated_at`

// SlotMutator computes the next value of one slot from its current value. Returning an
// error aborts the update and leaves the stored game untouched.
type SlotMutator func(current *models.Assignment) (*models.Assignment, error)

// SlotUpdate describes an applied slot change.
type SlotUpdate struct {
	Game     *models.Game
	Previous *models.Assignment
}

// GameRepository persists games and their officials record.
type GameRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewGameRepository constructs the repository.
func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db, now: time.Now}
}

// FindByID returns the game or sql.ErrNoRows.
func (r *GameRepository) FindByID(ctx context.Context, id string) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	var game models.Game
	if err := r.db.GetContext(ctx, &game, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find game: %w", err)
	}
	return &game, nil
}

// ListByTeam returns a team's games in schedule order.
func (r *GameRepository) ListByTeam(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + gameColumns + ` FROM games WHERE team_id = $1`)
	args := []interface{}{filter.TeamID}

	if !filter.From.IsZero() {
		args = append(args, filter.From)
		fmt.Fprintf(&query, " AND game_date >= $%d", len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		fmt.Fprintf(&query, " AND game_date <= $%d", len(args))
	}
	if filter.PendingOnly {
		fmt.Fprintf(&query, " AND NOT (%s AND %s)", slotConfirmedSQL("poytakirja"), slotConfirmedSQL("kello"))
	}
	query.WriteString(" ORDER BY game_date ASC, game_time ASC")

	games := []models.Game{}
	if err := r.db.SelectContext(ctx, &games, query.String(), args...); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// slotConfirmedSQL mirrors Assignment.Confirmed for one stored slot key. Every operand is
// coalesced so an empty slot evaluates to false rather than NULL.
func slotConfirmedSQL(key string) string {
	return fmt.Sprintf(
		"(COALESCE(officials->'%[1]s'->>'handledBy', '') = 'pool' OR "+
			"(COALESCE(officials->'%[1]s'->>'handledBy', '') = 'guardian' AND btrim(COALESCE(officials->'%[1]s'->>'confirmedBy', '')) <> ''))",
		key,
	)
}

// UpdateSlot runs a read-modify-write of a single slot under a row lock, so concurrent
// edits to the sibling slot of the same game are never lost.
func (r *GameRepository) UpdateSlot(ctx context.Context, gameID string, slot models.Slot, mutate SlotMutator) (update *SlotUpdate, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin officials transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var game models.Game
	lockQuery := `SELECT ` + gameColumns + ` FROM games WHERE id = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &game, lockQuery, gameID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("lock game: %w", err)
	}

	previous := game.Officials.Get(slot).Clone()
	next, err := mutate(previous.Clone())
	if err != nil {
		return nil, err
	}

	game.Officials = game.Officials.With(slot, next)
	game.UpdatedAt = r.now().UTC()
	const updateQuery = `UPDATE games SET officials = $1, updated_at = $2 WHERE id = $3`
	if _, err = tx.ExecContext(ctx, updateQuery, game.Officials, game.UpdatedAt, gameID); err != nil {
		return nil, fmt.Errorf("update officials: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit officials: %w", err)
	}
	return &SlotUpdate{Game: &game, Previous: previous}, nil
}
