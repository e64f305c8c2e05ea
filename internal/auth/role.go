package auth

import "fmt"

// Role is the closed set of user types carried in the token. Unknown
// values are rejected when the token is verified, so downstream code can
// match on these constants without re-checking strings.
type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOrganizer, RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
