package officials

import (
	"fmt"
	"strings"

	"github.com/noah-isme/club-officials-api/internal/models"
)

// State is the lifecycle position of one slot.
type State int

const (
	StateEmpty State = iota
	StateProposed
	StateAwaitingGuardianConfirmation
	StateConfirmedByGuardian
	StateConfirmedByPool
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateProposed:
		return "Proposed"
	case StateAwaitingGuardianConfirmation:
		return "AwaitingGuardianConfirmation"
	case StateConfirmedByGuardian:
		return "ConfirmedByGuardian"
	case StateConfirmedByPool:
		return "ConfirmedByPool"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// StateOf classifies a slot value.
func StateOf(a *models.Assignment) State {
	switch {
	case a == nil:
		return StateEmpty
	case a.HandledBy == nil:
		return StateProposed
	case *a.HandledBy == models.HandledByPool:
		return StateConfirmedByPool
	case a.ConfirmedBy == nil || isBlank(*a.ConfirmedBy):
		return StateAwaitingGuardianConfirmation
	default:
		return StateConfirmedByGuardian
	}
}

// Action names a caller-initiated transition.
type Action string

const (
	ActionPropose         Action = "propose"
	ActionChooseGuardian  Action = "choose_guardian"
	ActionConfirmGuardian Action = "confirm_guardian"
	ActionChoosePool      Action = "confirm_pool"
	ActionUnassign        Action = "unassign"
)

// TransitionError is returned when an action is not defined for the current state.
type TransitionError struct {
	Action Action
	From   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s from %s", e.Action, e.From)
}

// Propose names a player for the slot. Any previous handler and confirmer are discarded,
// whatever state the slot was in.
func Propose(_ *models.Assignment, playerName string) (*models.Assignment, error) {
	name := strings.TrimSpace(playerName)
	if name == "" {
		return nil, violation(EmptyPlayerName)
	}
	return &models.Assignment{PlayerName: name}, nil
}

// ChooseGuardian routes the shift to a guardian; the slot then waits for a named confirmer.
func ChooseGuardian(current *models.Assignment) (*models.Assignment, error) {
	if StateOf(current) == StateEmpty {
		return nil, &TransitionError{Action: ActionChooseGuardian, From: StateEmpty}
	}
	guardian := models.HandledByGuardian
	return &models.Assignment{PlayerName: current.PlayerName, HandledBy: &guardian}, nil
}

// ConfirmGuardian records who confirmed a guardian-handled shift.
func ConfirmGuardian(current *models.Assignment, confirmerName string) (*models.Assignment, error) {
	from := StateOf(current)
	if from != StateAwaitingGuardianConfirmation {
		return nil, &TransitionError{Action: ActionConfirmGuardian, From: from}
	}
	name := strings.TrimSpace(confirmerName)
	if name == "" {
		return nil, violation(MissingConfirmerForGuardian)
	}
	next := current.Clone()
	next.ConfirmedBy = &name
	return next, nil
}

// ChoosePool hands the shift to the volunteer pool, confirming it immediately.
// The confirmer is optional; a previous guardian confirmer is never carried over.
func ChoosePool(current *models.Assignment, confirmerName *string) (*models.Assignment, error) {
	from := StateOf(current)
	if from == StateEmpty {
		return nil, &TransitionError{Action: ActionChoosePool, From: from}
	}
	pool := models.HandledByPool
	next := &models.Assignment{PlayerName: current.PlayerName, HandledBy: &pool}
	if confirmerName != nil {
		if name := strings.TrimSpace(*confirmerName); name != "" {
			next.ConfirmedBy = &name
		}
	}
	return next, nil
}

// Unassign clears the slot from any state.
func Unassign(_ *models.Assignment) (*models.Assignment, error) {
	return nil, nil
}
