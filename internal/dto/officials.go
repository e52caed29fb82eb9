package dto

import (
	"encoding/json"

	"github.com/noah-isme/club-officials-api/internal/models"
)

// AssignmentPayload is the wire shape of one slot value.
type AssignmentPayload struct {
	PlayerName  string  `json:"playerName"`
	HandledBy   *string `json:"handledBy"`
	ConfirmedBy *string `json:"confirmedBy"`
}

// Model converts the payload; a nil payload is an empty slot.
func (p *AssignmentPayload) Model() *models.Assignment {
	if p == nil {
		return nil
	}
	out := &models.Assignment{PlayerName: p.PlayerName, ConfirmedBy: p.ConfirmedBy}
	if p.HandledBy != nil {
		h := models.HandledBy(*p.HandledBy)
		out.HandledBy = &h
	}
	return out
}

// SetAssignmentRequest replaces a slot wholesale. An explicit null assignment clears the slot;
// a body without the assignment key is rejected by HasAssignment.
type SetAssignmentRequest struct {
	Assignment *AssignmentPayload `json:"assignment"`

	present bool
}

// UnmarshalJSON records whether the assignment key was sent at all.
func (r *SetAssignmentRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	raw, ok := fields["assignment"]
	if !ok {
		r.Assignment, r.present = nil, false
		return nil
	}
	var payload *AssignmentPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}
	r.Assignment, r.present = payload, true
	return nil
}

// HasAssignment reports whether the body carried the assignment key, null included.
func (r SetAssignmentRequest) HasAssignment() bool {
	return r.present
}

// TransitionRequest drives one step of the confirmation workflow.
type TransitionRequest struct {
	Action        string  `json:"action" validate:"required,oneof=propose confirm_guardian confirm_pool unassign"`
	PlayerName    string  `json:"playerName"`
	ConfirmerName *string `json:"confirmerName"`
}

// GameQuery captures list filters for team games.
type GameQuery struct {
	From    string `form:"from"`
	To      string `form:"to"`
	Pending bool   `form:"pending"`
}

// StatsQuery captures the leaderboard window.
type StatsQuery struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Format string `form:"format"`
}
