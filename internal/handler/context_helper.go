package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/club-officials-api/internal/middleware"
	"github.com/noah-isme/club-officials-api/internal/models"
	appErrors "github.com/noah-isme/club-officials-api/pkg/errors"
)

const dateLayout = "2006-01-02"

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

func slotFromPath(c *gin.Context) (models.Slot, error) {
	slot, ok := models.ParseSlot(c.Param("slot"))
	if !ok {
		return "", appErrors.Clone(appErrors.ErrValidation, "slot must be scorekeeper or clock")
	}
	return slot, nil
}

// parseDate reads an optional YYYY-MM-DD query value; empty means unbounded.
func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, field+" must be YYYY-MM-DD")
	}
	return t, nil
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	start, err := parseDate("from", from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate("to", to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
