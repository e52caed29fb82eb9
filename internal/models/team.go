package models

import "time"

// Team is the tenant boundary; it exclusively owns its players and games.
type Team struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Player is a roster entry. Assignments copy the name, so renames do not rewrite history.
type Player struct {
	ID        string    `db:"id" json:"id"`
	TeamID    string    `db:"team_id" json:"teamId"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
