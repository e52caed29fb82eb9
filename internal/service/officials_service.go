package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/club-officials-api/internal/dto"
	"github.com/noah-isme/club-officials-api/internal/models"
	"github.com/noah-isme/club-officials-api/internal/officials"
	"github.com/noah-isme/club-officials-api/internal/repository"
	appErrors "github.com/noah-isme/club-officials-api/pkg/errors"
)

const actionSet = "set"

type officialsGameStore interface {
	FindByID(ctx context.Context, id string) (*models.Game, error)
	UpdateSlot(ctx context.Context, gameID string, slot models.Slot, mutate repository.SlotMutator) (*repository.SlotUpdate, error)
}

type teamAuthorizer interface {
	CanManage(ctx context.Context, actor *models.JWTClaims, teamID string) (bool, error)
}

type auditLogger interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

type statsInvalidator interface {
	Invalidate(ctx context.Context, teamID string)
}

// OfficialsService is the only writer of a game's officials record.
type OfficialsService struct {
	games     officialsGameStore
	access    teamAuthorizer
	audit     auditLogger
	stats     statsInvalidator
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// OfficialsServiceParams groups constructor dependencies. Audit, Stats and Metrics are optional.
type OfficialsServiceParams struct {
	Games     officialsGameStore
	Access    teamAuthorizer
	Audit     auditLogger
	Stats     statsInvalidator
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
}

// NewOfficialsService constructs the service.
func NewOfficialsService(params OfficialsServiceParams) *OfficialsService {
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OfficialsService{
		games:     params.Games,
		access:    params.Access,
		audit:     params.Audit,
		stats:     params.Stats,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
	}
}

// SetAssignment replaces one slot of a game with assignment (nil clears it).
// Only the targeted slot changes; the sibling is re-read under the row lock.
func (s *OfficialsService) SetAssignment(ctx context.Context, gameID string, slot models.Slot, assignment *models.Assignment, actor *models.JWTClaims) (*models.Game, error) {
	game, err := s.authorize(ctx, gameID, actor)
	if err != nil {
		s.record(slot, actionSet, err)
		return nil, err
	}

	candidate := officials.Normalize(assignment)
	if err := officials.Validate(candidate); err != nil {
		mapped := mapOfficialsError(err)
		s.record(slot, actionSet, mapped)
		return nil, mapped
	}

	update, err := s.games.UpdateSlot(ctx, gameID, slot, func(*models.Assignment) (*models.Assignment, error) {
		return candidate, nil
	})
	if err != nil {
		mapped := mapOfficialsError(err)
		s.record(slot, actionSet, mapped)
		return nil, mapped
	}

	s.afterUpdate(ctx, game.TeamID, slot, actionSet, update, actor)
	return update.Game, nil
}

// Transition applies one workflow step to the stored slot value. The step is computed
// from the value read under the row lock, so it never acts on a stale state.
func (s *OfficialsService) Transition(ctx context.Context, gameID string, slot models.Slot, req dto.TransitionRequest, actor *models.JWTClaims) (*models.Game, error) {
	game, err := s.authorize(ctx, gameID, actor)
	if err != nil {
		s.record(slot, req.Action, err)
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		wrapped := appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid transition payload")
		s.record(slot, req.Action, wrapped)
		return nil, wrapped
	}

	update, err := s.games.UpdateSlot(ctx, gameID, slot, func(current *models.Assignment) (*models.Assignment, error) {
		next, err := step(current, req)
		if err != nil {
			return nil, err
		}
		return next, officials.Validate(next)
	})
	if err != nil {
		mapped := mapOfficialsError(err)
		s.record(slot, req.Action, mapped)
		return nil, mapped
	}

	s.afterUpdate(ctx, game.TeamID, slot, req.Action, update, actor)
	return update.Game, nil
}

// Unassign clears a slot regardless of its state.
func (s *OfficialsService) Unassign(ctx context.Context, gameID string, slot models.Slot, actor *models.JWTClaims) (*models.Game, error) {
	return s.Transition(ctx, gameID, slot, dto.TransitionRequest{Action: string(officials.ActionUnassign)}, actor)
}

// step maps a persisted action onto the state machine. Guardian routing is never stored
// without a confirmer, so confirm_guardian runs choose and confirm as one step.
func step(current *models.Assignment, req dto.TransitionRequest) (*models.Assignment, error) {
	switch officials.Action(req.Action) {
	case officials.ActionPropose:
		return officials.Propose(current, req.PlayerName)
	case officials.ActionConfirmGuardian:
		routed, err := officials.ChooseGuardian(current)
		if err != nil {
			return nil, &officials.TransitionError{Action: officials.ActionConfirmGuardian, From: officials.StateOf(current)}
		}
		confirmer := ""
		if req.ConfirmerName != nil {
			confirmer = *req.ConfirmerName
		}
		return officials.ConfirmGuardian(routed, confirmer)
	case officials.ActionChoosePool:
		return officials.ChoosePool(current, req.ConfirmerName)
	case officials.ActionUnassign:
		return officials.Unassign(current)
	}
	return nil, appErrors.Clone(appErrors.ErrValidation, "unknown action")
}

func (s *OfficialsService) authorize(ctx context.Context, gameID string, actor *models.JWTClaims) (*models.Game, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	game, err := s.games.FindByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "game not found")
		}
		return nil, appErrors.Storage(err, "failed to load game")
	}
	allowed, err := s.access.CanManage(ctx, actor, game.TeamID)
	if err != nil {
		return nil, appErrors.Storage(err, "failed to verify team access")
	}
	if !allowed {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "not allowed to manage this team")
	}
	return game, nil
}

func (s *OfficialsService) afterUpdate(ctx context.Context, teamID string, slot models.Slot, action string, update *repository.SlotUpdate, actor *models.JWTClaims) {
	s.metrics.RecordTransition(string(slot), action, "applied")

	next := update.Game.Officials.Get(slot)
	s.logger.Info("officials updated",
		zap.String("game_id", update.Game.ID),
		zap.String("slot", string(slot)),
		zap.String("action", action),
		zap.String("state", officials.StateOf(next).String()),
		zap.String("actor", actor.UserID),
	)

	if s.stats != nil {
		s.stats.Invalidate(ctx, teamID)
	}

	if s.audit == nil {
		return
	}
	before, _ := json.Marshal(map[string]interface{}{"slot": slot, "assignment": update.Previous})
	after, _ := json.Marshal(map[string]interface{}{"slot": slot, "action": action, "assignment": next})
	gameID := update.Game.ID
	actorID := actor.UserID
	if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
		ActorID:    &actorID,
		Action:     models.AuditActionOfficialsUpdate,
		Resource:   models.AuditResourceGame,
		ResourceID: &gameID,
		Before:     before,
		After:      after,
	}); err != nil {
		s.logger.Warn("failed to record officials audit log", zap.String("game_id", gameID), zap.Error(err))
	}
}

func (s *OfficialsService) record(slot models.Slot, action string, err error) {
	s.metrics.RecordTransition(string(slot), action, appErrors.FromError(err).Code)
}

var violationErrors = map[officials.Violation]*appErrors.Error{
	officials.EmptyPlayerName:             appErrors.ErrEmptyPlayerName,
	officials.MissingConfirmerForGuardian: appErrors.ErrMissingConfirmerForGuardian,
	officials.UnexpectedConfirmer:         appErrors.ErrUnexpectedConfirmer,
}

func mapOfficialsError(err error) error {
	var (
		verr   *officials.ValidationError
		terr   *officials.TransitionError
		appErr *appErrors.Error
	)
	switch {
	case errors.As(err, &verr):
		base, ok := violationErrors[verr.Violation]
		if !ok {
			base = appErrors.Clone(appErrors.ErrValidation, "unknown handledBy value")
		}
		return appErrors.Wrap(verr, base.Code, base.Status, base.Message)
	case errors.As(err, &terr):
		return appErrors.Wrap(terr, appErrors.ErrInvalidTransition.Code, appErrors.ErrInvalidTransition.Status, terr.Error())
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.Clone(appErrors.ErrNotFound, "game not found")
	case errors.As(err, &appErr):
		return appErr
	}
	return appErrors.Storage(err, "failed to update officials")
}
