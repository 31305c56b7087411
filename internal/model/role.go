package model

import (
	"fmt"
	"strings"
)

// Role is who is logged in. Only the chef may change the menu.
type Role string

const (
	RoleChef Role = "christoffel"
	RoleUser Role = "user"
)

// Roles lists the login choices in picker order.
func Roles() []Role { return []Role{RoleChef, RoleUser} }

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleChef:
		return RoleChef, nil
	case RoleUser:
		return RoleUser, nil
	}
	return "", fmt.Errorf("unknown role %q (must be christoffel or user)", s)
}

// CanEdit reports whether the role may add, remove or reset dishes.
func (r Role) CanEdit() bool { return r == RoleChef }

// Label is the human-readable role name.
func (r Role) Label() string {
	if r == RoleChef {
		return "Christoffel (Chef)"
	}
	return "User"
}
