package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Slot names one of the two duty roles on a game.
type Slot string

const (
	SlotScorekeeper Slot = "scorekeeper"
	SlotClock       Slot = "clock"
)

// Slots lists every duty slot in display order.
var Slots = []Slot{SlotScorekeeper, SlotClock}

// ParseSlot accepts the English slot names and the stored Finnish keys.
func ParseSlot(raw string) (Slot, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(SlotScorekeeper), "poytakirja", "pöytäkirja":
		return SlotScorekeeper, true
	case string(SlotClock), "kello":
		return SlotClock, true
	}
	return "", false
}

// HandledBy tells who performs a shift.
type HandledBy string

const (
	HandledByGuardian HandledBy = "guardian"
	HandledByPool     HandledBy = "pool"
)

// Assignment is one filled duty slot. Player names are copied in, not referenced.
type Assignment struct {
	PlayerName  string     `json:"playerName"`
	HandledBy   *HandledBy `json:"handledBy"`
	ConfirmedBy *string    `json:"confirmedBy"`
}

// Clone returns a deep copy; nil stays nil.
func (a *Assignment) Clone() *Assignment {
	if a == nil {
		return nil
	}
	cp := Assignment{PlayerName: a.PlayerName}
	if a.HandledBy != nil {
		h := *a.HandledBy
		cp.HandledBy = &h
	}
	if a.ConfirmedBy != nil {
		c := *a.ConfirmedBy
		cp.ConfirmedBy = &c
	}
	return &cp
}

// Equal compares two possibly nil assignments by value.
func (a *Assignment) Equal(other *Assignment) bool {
	if a == nil || other == nil {
		return a == nil && other == nil
	}
	return a.PlayerName == other.PlayerName &&
		equalPtr(a.HandledBy, other.HandledBy) &&
		equalPtr(a.ConfirmedBy, other.ConfirmedBy)
}

// Confirmed reports whether the shift counts towards statistics. A pool shift counts
// as soon as it is handed to the pool; a guardian shift only once a confirmer is named.
func (a *Assignment) Confirmed() bool {
	if a == nil || a.HandledBy == nil {
		return false
	}
	switch *a.HandledBy {
	case HandledByPool:
		return true
	case HandledByGuardian:
		return a.ConfirmedBy != nil && strings.TrimSpace(*a.ConfirmedBy) != ""
	}
	return false
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Officials is the JSONB record holding both duty slots of a game.
type Officials struct {
	Scorekeeper *Assignment `json:"poytakirja"`
	Clock       *Assignment `json:"kello"`
}

// Get returns the assignment stored in slot.
func (o Officials) Get(slot Slot) *Assignment {
	switch slot {
	case SlotScorekeeper:
		return o.Scorekeeper
	case SlotClock:
		return o.Clock
	}
	return nil
}

// With returns a copy of o where only slot is replaced.
func (o Officials) With(slot Slot, a *Assignment) Officials {
	switch slot {
	case SlotScorekeeper:
		o.Scorekeeper = a.Clone()
	case SlotClock:
		o.Clock = a.Clone()
	}
	return o
}

// Value implements driver.Valuer for JSONB storage.
func (o Officials) Value() (driver.Value, error) {
	raw, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("marshal officials: %w", err)
	}
	return raw, nil
}

// Scan implements sql.Scanner for JSONB columns.
func (o *Officials) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*o = Officials{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan officials: unsupported type %T", src)
	}
	var decoded Officials
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("scan officials: %w", err)
	}
	*o = decoded
	return nil
}

// Game is a home or away fixture owned by a team.
type Game struct {
	ID        string    `db:"id" json:"id"`
	TeamID    string    `db:"team_id" json:"teamId"`
	Date      time.Time `db:"game_date" json:"date"`
	Time      string    `db:"game_time" json:"time"`
	Opponent  string    `db:"opponent" json:"opponent"`
	Location  string    `db:"location" json:"location"`
	IsHome    bool      `db:"is_home" json:"isHome"`
	Officials Officials `db:"officials" json:"officials"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Pending reports whether any slot still lacks a confirmed handler.
func (g Game) Pending() bool {
	for _, slot := range Slots {
		if !g.Officials.Get(slot).Confirmed() {
			return true
		}
	}
	return false
}

// GameFilter narrows team game listings. Zero dates are open bounds.
type GameFilter struct {
	TeamID      string
	From        time.Time
	To          time.Time
	PendingOnly bool
}
