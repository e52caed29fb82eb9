package models

import "time"

// UserRole decides what a signed-in club user may do.
type UserRole string

const (
	// RoleAdmin manages officials of every team.
	RoleAdmin UserRole = "ADMIN"
	// RoleTeamManager manages officials of the teams linked in team_managers.
	RoleTeamManager UserRole = "TEAM_MANAGER"
	// RoleMember can read schedules and leaderboards only.
	RoleMember UserRole = "MEMBER"
)

// User is a club account that can sign in.
type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Name         string     `db:"display_name"`
	Role         UserRole   `db:"role"`
	Active       bool       `db:"active"`
	LastLoginAt  *time.Time `db:"last_login_at"`
}

// Info is the public view of the account.
func (u User) Info() UserInfo {
	return UserInfo{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
