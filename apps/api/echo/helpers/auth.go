package helpers

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/trezcool/kitivo/core"
	"github.com/trezcool/kitivo/core/user"
)

var (
	appName         = "Kitivo"
	secretKey       = []byte("secret")
	ExpirationDelta = 7 * 24 * time.Hour

	contextTokenKey = "userToken"
	contextUserKey  = "user"
)

// ConfigureAuth wires the JWT settings from config; call once at startup.
func ConfigureAuth(conf *core.Config) {
	appName = conf.AppName
	secretKey = []byte(conf.SecretKey)
	ExpirationDelta = conf.SessionTTL
}

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.RegisteredClaims
	Role        string `json:"role,omitempty"`
	IsAdmin     bool   `json:"is_admin,omitempty"`
	IsPresident bool   `json:"is_president,omitempty"`
}

func GetUserClaims(usr user.User) *Claims {
	now := time.Now()
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    appName,
			Subject:   strconv.Itoa(usr.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ExpirationDelta)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:        usr.Role,
		IsAdmin:     usr.IsAdmin(),
		IsPresident: usr.IsPresident(),
	}
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(secretKey)
	if err != nil {
		return "", errTokenSigningFailed
	}
	return ss, nil
}

// AuthMiddleware parses and verifies the bearer token and stashes the claims
// in the request context.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return errMissingToken
			}

			claims := new(Claims)
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errInvalidToken
				}
				return secretKey, nil
			})
			if err != nil || !token.Valid {
				return errInvalidToken
			}
			ctx.Set(contextTokenKey, claims)
			return next(ctx)
		}
	}
}

// UserID returns the token subject as a user ID, 0 when unparsable.
func (c Claims) UserID() int {
	id, _ := strconv.Atoi(c.Subject)
	return id
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if claims, ok := ctx.Get(contextTokenKey).(*Claims); ok {
		return *claims, nil
	}
	return Claims{}, errUnauthorized
}

// GetContextClaims returns the claims stashed by AuthMiddleware; routes not
// behind it get zero claims.
func GetContextClaims(ctx echo.Context) Claims {
	claims, _ := getContextClaims(ctx)
	return claims
}

// GetContextUser resolves the authenticated User, caching it on the context.
func GetContextUser(ctx echo.Context, svc *user.Service) (user.User, error) {
	if usr, ok := ctx.Get(contextUserKey).(user.User); ok {
		return usr, nil
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return user.User{}, err
	}
	uid, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return user.User{}, errUnauthorized
	}
	usr, err := svc.GetByID(uid)
	if err != nil {
		return user.User{}, errUnauthorized
	}
	ctx.Set(contextUserKey, usr)
	return usr, nil
}
