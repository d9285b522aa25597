package user

import (
	"time"

	"hirewire/internal/common"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleCandidate, RoleEmployer:
		return Role(value), nil
	default:
		return "", common.NewValidationError("invalid role", map[string]string{"role": "role must be candidate or employer"})
	}
}

type User struct {
	ID           common.UUID `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
}
