package officials

import (
	"fmt"
	"strings"

	"github.com/noah-isme/club-officials-api/internal/models"
)

// Violation identifies which assignment rule was broken.
type Violation string

const (
	EmptyPlayerName             Violation = "EmptyPlayerName"
	MissingConfirmerForGuardian Violation = "MissingConfirmerForGuardian"
	UnexpectedConfirmer         Violation = "UnexpectedConfirmer"
	UnknownHandler              Violation = "UnknownHandler"
)

// ValidationError reports a single violated rule.
type ValidationError struct {
	Violation Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid assignment: %s", e.Violation)
}

func violation(v Violation) error {
	return &ValidationError{Violation: v}
}

// Validate checks a candidate slot value. A nil assignment (empty slot) is always valid.
func Validate(a *models.Assignment) error {
	if a == nil {
		return nil
	}
	if isBlank(a.PlayerName) {
		return violation(EmptyPlayerName)
	}
	if a.HandledBy == nil {
		if a.ConfirmedBy != nil {
			return violation(UnexpectedConfirmer)
		}
		return nil
	}
	switch *a.HandledBy {
	case models.HandledByGuardian:
		if a.ConfirmedBy == nil || isBlank(*a.ConfirmedBy) {
			return violation(MissingConfirmerForGuardian)
		}
	case models.HandledByPool:
	default:
		return violation(UnknownHandler)
	}
	return nil
}

// Normalize trims names and drops a blank pool confirmer, since pool attribution is optional.
// It never changes which rule an assignment satisfies for guardian or unhandled slots.
func Normalize(a *models.Assignment) *models.Assignment {
	if a == nil {
		return nil
	}
	out := a.Clone()
	out.PlayerName = strings.TrimSpace(out.PlayerName)
	if out.ConfirmedBy != nil {
		trimmed := strings.TrimSpace(*out.ConfirmedBy)
		out.ConfirmedBy = &trimmed
		if trimmed == "" && out.HandledBy != nil && *out.HandledBy == models.HandledByPool {
			out.ConfirmedBy = nil
		}
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
