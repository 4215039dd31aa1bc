package model

import "time"

// Role names as seeded in the role table.
const (
	RoleAdmin       = "admin"
	RoleOrganizer   = "organizer"
	RoleJudge       = "judge"
	RoleParticipant = "participant"
)

type User struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type UserWithRoles struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	Roles     []string  `json:"roles"`
}

// SessionUser is the resolved request identity: the cookie's cryptographically
// bound user id and username plus the role set re-read from the database on
// every request. It lives only for the duration of a single request.
type SessionUser struct {
	UserID   int64    `json:"userId"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// UserRoles is the result of a role replacement: the target user and the
// role set as it now stands.
type UserRoles struct {
	UserID int64    `json:"userId"`
	Roles  []string `json:"roles"`
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *SessionUser) HasAnyRole(roles ...string) bool {
	if u == nil {
		return false
	}
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
