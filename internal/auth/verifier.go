package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Manuhps/SIC-Grupo8/internal/models"
)

// ErrUnauthenticated covers every token failure: missing header, bad
// scheme, bad signature, malformed claims, expiry. The message is
// deliberately the same for all of them.
var ErrUnauthenticated = errors.New("invalid or expired token")

// Identity is the decoded token reduced to what handlers need. It is
// built once by the Verifier; handlers never look at raw claims.
type Identity struct {
	UserID int
	Role   Role
}

func (id Identity) IsOrganizerOrAdmin() bool {
	return id.Role == RoleOrganizer || id.Role == RoleAdmin
}

func (id Identity) IsRegularUser() bool {
	return id.Role == RoleUser
}

// CanManageEvent reports whether the identity may mutate the event or view
// its registrations: the owning organizer, or any admin.
func (id Identity) CanManageEvent(event *models.Event) bool {
	return event.OrganizerID == id.UserID || id.Role == RoleAdmin
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// FromHeader validates a raw Authorization header value and returns the
// identity it carries. Tokens must be "Bearer <token>" signed with HS256.
func (v *Verifier) FromHeader(header string) (Identity, error) {
	if header == "" {
		return Identity{}, ErrUnauthenticated
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Identity{}, ErrUnauthenticated
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Identity{}, ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}

	// JSON numbers decode as float64.
	rawID, ok := claims["id"].(float64)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}

	rawRole, ok := claims["role"].(string)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}
	role, err := ParseRole(rawRole)
	if err != nil {
		return Identity{}, ErrUnauthenticated
	}

	return Identity{UserID: int(rawID), Role: role}, nil
}

// GenerateToken mints an HS256 token with the claim shape the Verifier
// expects. The auth service issues these in production; tests and operator
// tooling use this helper.
func GenerateToken(secret string, userID int, role Role, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   userID,
		"role": string(role),
		"exp":  time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}
