package helpers

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/kitivo/core/settings"
)

func AdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			if claims.IsAdmin {
				return next(ctx)
			}
			return ErrHttpForbidden
		}
	}
}

func AdminOrPresidentMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			if claims.IsAdmin || claims.IsPresident {
				return next(ctx)
			}
			return ErrHttpForbidden
		}
	}
}

// MaintenanceMiddleware enforces maintenance mode ahead of all routing:
// when on, only admins and class presidents get through, everyone else
// gets the fixed blocking response.
func MaintenanceMiddleware(svc *settings.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			s, err := svc.Get()
			if err != nil {
				return err
			}
			if !s.Allows(claims.Role) {
				return errMaintenance
			}
			return next(ctx)
		}
	}
}
