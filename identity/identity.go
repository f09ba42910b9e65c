package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	localsKey  = "currentUser"
	CookieName = "access_token"
)

var ErrInvalidToken = errors.New("invalid token")

// Resolver finds the user behind a request. A nil user with a nil error
// means the request is anonymous.
type Resolver interface {
	Resolve(c *fiber.Ctx) (*model.CurrentUser, error)
}

// Current returns the user stored by the identity middleware, or nil.
func Current(c *fiber.Ctx) *model.CurrentUser {
	u, _ := c.Locals(localsKey).(*model.CurrentUser)
	return u
}

func Store(c *fiber.Ctx, u *model.CurrentUser) {
	c.Locals(localsKey, u)
}

// JWTResolver reads an HS256 token from the access_token cookie or the
// Authorization header.
type JWTResolver struct {
	Secret []byte
}

func (r JWTResolver) Resolve(c *fiber.Ctx) (*model.CurrentUser, error) {
	token := c.Cookies(CookieName)
	if token == "" {
		if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if token == "" {
		return nil, nil
	}
	return ParseToken(r.Secret, token)
}

type claims struct {
	model.TokenClaim
	jwt.RegisteredClaims
}

func IssueToken(secret []byte, u *model.CurrentUser, ttl time.Duration) (string, error) {
	now := time.Now()
	cl := claims{
		TokenClaim: model.TokenClaim{UserId: u.ID, Username: u.Username, Role: u.Role, Name: u.Name},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(secret)
}

func ParseToken(secret []byte, token string) (*model.CurrentUser, error) {
	var cl claims
	parsed, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &model.CurrentUser{
		ID:       cl.UserId,
		Role:     cl.Role,
		Name:     cl.Name,
		Username: cl.Username,
	}, nil
}

type AdminLookup interface {
	FirstAdmin(ctx context.Context) (model.UserRecord, error)
}

// AdminFallbackResolver acts as the first admin account found in the store.
// It keeps back-office pages usable without a login.
type AdminFallbackResolver struct {
	Users AdminLookup
}

func (r AdminFallbackResolver) Resolve(c *fiber.Ctx) (*model.CurrentUser, error) {
	u, err := r.Users.FirstAdmin(c.UserContext())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u.CurrentUser(), nil
}

// ChainResolver returns the first user any resolver finds. Resolver errors
// are logged and the next resolver is tried.
type ChainResolver []Resolver

func (ch ChainResolver) Resolve(c *fiber.Ctx) (*model.CurrentUser, error) {
	for _, r := range ch {
		u, err := r.Resolve(c)
		if err != nil {
			utils.Log.WithError(err).Debug("identity resolver failed")
			continue
		}
		if u != nil {
			return u, nil
		}
	}
	return nil, nil
}

// StaticResolver always returns User. For tests only.
type StaticResolver struct {
	User *model.CurrentUser
}

func (r StaticResolver) Resolve(*fiber.Ctx) (*model.CurrentUser, error) {
	return r.User, nil
}
