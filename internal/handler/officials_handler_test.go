package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/club-officials-api/internal/dto"
	"github.com/noah-isme/club-officials-api/internal/middleware"
	"github.com/noah-isme/club-officials-api/internal/models"
	appErrors "github.com/noah-isme/club-officials-api/pkg/errors"
)

type officialsServiceMock struct {
	game           *models.Game
	err            error
	lastSlot       models.Slot
	lastAssignment *models.Assignment
	lastTransition dto.TransitionRequest
	setCalled      bool
	transitions    int
	unassigned     bool
}

func (m *officialsServiceMock) SetAssignment(ctx context.Context, gameID string, slot models.Slot, assignment *models.Assignment, actor *models.JWTClaims) (*models.Game, error) {
	m.setCalled = true
	m.lastSlot = slot
	m.lastAssignment = assignment
	return m.game, m.err
}

func (m *officialsServiceMock) Transition(ctx context.Context, gameID string, slot models.Slot, req dto.TransitionRequest, actor *models.JWTClaims) (*models.Game, error) {
	m.transitions++
	m.lastSlot = slot
	m.lastTransition = req
	return m.game, m.err
}

func (m *officialsServiceMock) Unassign(ctx context.Context, gameID string, slot models.Slot, actor *models.JWTClaims) (*models.Game, error) {
	m.unassigned = true
	m.lastSlot = slot
	return m.game, m.err
}

func officialsContext(method, slot, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, "/games/game-1/officials/"+slot, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "game-1"}, {Key: "slot", Value: slot}}
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "manager", Role: models.RoleTeamManager})
	return c, w
}

func TestOfficialsHandlerSet(t *testing.T) {
	mockSvc := &officialsServiceMock{game: &models.Game{ID: "game-1"}}
	c, w := officialsContext(http.MethodPut, "kello", `{"assignment":{"playerName":"Matti","handledBy":"pool","confirmedBy":null}}`)

	NewOfficialsHandler(mockSvc).Set(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.SlotClock, mockSvc.lastSlot)
	require.NotNil(t, mockSvc.lastAssignment)
	assert.Equal(t, "Matti", mockSvc.lastAssignment.PlayerName)
	assert.Equal(t, models.HandledByPool, *mockSvc.lastAssignment.HandledBy)
}

func TestOfficialsHandlerSetNullClears(t *testing.T) {
	mockSvc := &officialsServiceMock{game: &models.Game{ID: "game-1"}}
	c, w := officialsContext(http.MethodPut, "scorekeeper", `{"assignment":null}`)

	NewOfficialsHandler(mockSvc).Set(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.setCalled)
	assert.Nil(t, mockSvc.lastAssignment)
}

func TestOfficialsHandlerSetRequiresAssignmentKey(t *testing.T) {
	for name, body := range map[string]string{
		"empty object": `{}`,
		"misspelled":   `{"asignment":{"playerName":"Matti"}}`,
		"null body":    `null`,
	} {
		t.Run(name, func(t *testing.T) {
			mockSvc := &officialsServiceMock{game: &models.Game{ID: "game-1"}}
			c, w := officialsContext(http.MethodPut, "clock", body)

			NewOfficialsHandler(mockSvc).Set(c)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, mockSvc.setCalled)

			var resp struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, appErrors.ErrValidation.Code, resp.Error.Code)
		})
	}
}

func TestOfficialsHandlerRejectsUnknownSlot(t *testing.T) {
	mockSvc := &officialsServiceMock{}
	c, w := officialsContext(http.MethodPut, "referee", `{"assignment":null}`)

	NewOfficialsHandler(mockSvc).Set(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.setCalled)
}

func TestOfficialsHandlerSetInvalidBody(t *testing.T) {
	mockSvc := &officialsServiceMock{}
	c, w := officialsContext(http.MethodPut, "clock", `{"assignment":`)

	NewOfficialsHandler(mockSvc).Set(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.setCalled)
}

func TestOfficialsHandlerSetViolationCode(t *testing.T) {
	mockSvc := &officialsServiceMock{err: appErrors.ErrMissingConfirmerForGuardian}
	c, w := officialsContext(http.MethodPut, "clock", `{"assignment":{"playerName":"Matti","handledBy":"guardian"}}`)

	NewOfficialsHandler(mockSvc).Set(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "MISSING_CONFIRMER_FOR_GUARDIAN", body.Error.Code)
}

func TestOfficialsHandlerTransitionConflict(t *testing.T) {
	mockSvc := &officialsServiceMock{err: appErrors.ErrInvalidTransition}
	c, w := officialsContext(http.MethodPost, "scorekeeper", `{"action":"confirm_pool","confirmerName":"Pooli"}`)

	NewOfficialsHandler(mockSvc).Transition(c)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "confirm_pool", mockSvc.lastTransition.Action)
	require.NotNil(t, mockSvc.lastTransition.ConfirmerName)
	assert.Equal(t, "Pooli", *mockSvc.lastTransition.ConfirmerName)
}

func TestOfficialsHandlerUnassign(t *testing.T) {
	mockSvc := &officialsServiceMock{game: &models.Game{ID: "game-1"}}
	c, w := officialsContext(http.MethodDelete, "poytakirja", "")

	NewOfficialsHandler(mockSvc).Unassign(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.unassigned)
	assert.Equal(t, models.SlotScorekeeper, mockSvc.lastSlot)
}
