package models

import "time"

// PlayerStat is one leaderboard row: confirmed shifts per player name.
type PlayerStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatsFilter scopes a leaderboard to one team and an optional date window.
type StatsFilter struct {
	TeamID string
	From   time.Time
	To     time.Time
}
