package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/club-officials-api/internal/models"
)

var accountRowColumns = []string{"id", "email", "password_hash", "display_name", "role", "active", "last_login_at"}

func newUserRepoMock(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	repo := NewUserRepository(sqlx.NewDb(db, "postgres"))
	repo.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return repo, mock, func() { _ = db.Close() }
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	repo, mock, cleanup := newUserRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, display_name, role, active, last_login_at FROM users WHERE email = $1 LIMIT 1")).
		WithArgs("manager@club.fi").
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow("user-1", "manager@club.fi", "hash", "Eeva", "TEAM_MANAGER", true, nil))

	user, err := repo.FindByEmail(context.Background(), "manager@club.fi")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeamManager, user.Role)
	assert.Equal(t, "Eeva", user.Name)
	assert.Nil(t, user.LastLoginAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByIDNotFound(t *testing.T) {
	repo, mock, cleanup := newUserRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1 LIMIT 1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(accountRowColumns))

	_, err := repo.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepositoryRecordLogin(t *testing.T) {
	repo, mock, cleanup := newUserRepoMock(t)
	defer cleanup()

	at := time.Date(2026, 3, 1, 14, 0, 0, 0, time.FixedZone("EET", 2*60*60))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET last_login_at = $2, updated_at = $2 WHERE id = $1")).
		WithArgs("user-1", at.UTC()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RecordLogin(context.Background(), "user-1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateAuditLog(t *testing.T) {
	repo, mock, cleanup := newUserRepoMock(t)
	defer cleanup()

	actorID := "user-1"
	gameID := "game-1"
	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(sqlmock.AnyArg(), "user-1", models.AuditActionOfficialsUpdate, models.AuditResourceGame, "game-1", []byte(`null`), []byte(`{}`), "", "", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	log := &models.AuditLog{
		ActorID:    &actorID,
		Action:     models.AuditActionOfficialsUpdate,
		Resource:   models.AuditResourceGame,
		ResourceID: &gameID,
		Before:     []byte(`null`),
		After:      []byte(`{}`),
	}
	require.NoError(t, repo.CreateAuditLog(context.Background(), log))
	assert.NotEmpty(t, log.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
