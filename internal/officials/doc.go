// Package officials holds the duty-assignment rules for game officials: the shape
// validation of a single slot, the per-slot confirmation state machine, and the
// confirmed-shift leaderboard. Everything here is pure; persistence and
// authorization live in the service layer.
package officials
