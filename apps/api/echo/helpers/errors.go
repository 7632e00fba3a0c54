package helpers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/trezcool/kitivo/core"
	"github.com/trezcool/kitivo/core/academics"
	"github.com/trezcool/kitivo/core/board"
	"github.com/trezcool/kitivo/core/forum"
	"github.com/trezcool/kitivo/core/messaging"
	"github.com/trezcool/kitivo/core/notification"
	"github.com/trezcool/kitivo/core/poll"
	"github.com/trezcool/kitivo/core/quiz"
	"github.com/trezcool/kitivo/core/user"
	"github.com/trezcool/kitivo/storage/kvstore"
)

var (
	errUnauthorized       = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errMissingToken       = echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed token")
	errInvalidToken       = echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	ErrHttpForbidden      = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	ErrHttpNotFound       = echo.NewHTTPError(http.StatusNotFound, "not found")
	errMaintenance        = echo.NewHTTPError(http.StatusServiceUnavailable, "the portal is under maintenance")
	errTokenSigningFailed = errors.New("failed to sign token")
)

// notFoundErrs all render as a page-level "not found", never a fault.
var notFoundErrs = []error{
	user.ErrNotFound,
	academics.ErrNotFound,
	academics.ErrCourseNotFound,
	quiz.ErrNotFound,
	poll.ErrNotFound,
	forum.ErrNotFound,
	messaging.ErrNotFound,
	notification.ErrNotFound,
	board.ErrNotFound,
}

func AppHTTPErrorHandler(err error, c echo.Context) {
	var code int
	var message interface{}

	var vErr *core.ValidationError
	var vErrs validator.ValidationErrors
	var hErr *echo.HTTPError

	switch {
	case errors.As(err, &hErr):
		if hErr.Internal != nil {
			if inner, ok := hErr.Internal.(*echo.HTTPError); ok {
				hErr = inner
			}
		}
		code = hErr.Code
		message = hErr.Message
	case errors.As(err, &vErrs):
		fldErrs := make(map[string]string)
		for _, fe := range vErrs {
			fldErrs[fe.Field()] = fe.Translate(core.Translator)
		}
		code = http.StatusBadRequest
		message = fldErrs
	case errors.As(err, &vErr):
		if vErr.Fields != nil {
			fldErrs := make(map[string]string)
			for _, fe := range vErr.Fields {
				fldErrs[fe.Field] = fe.Error
			}
			message = fldErrs
		} else {
			message = vErr.Error()
		}
		code = http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidCredentials):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, user.ErrAccountSuspended), errors.Is(err, user.ErrAccountBanned):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, quiz.ErrAlreadySubmitted):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, poll.ErrInvalidOption), errors.Is(err, kvstore.ErrBadSnapshot):
		code = http.StatusBadRequest
		message = err.Error()
	case isNotFound(err):
		code = http.StatusNotFound
		message = "not found"
	default: // any other error is a server error
		code = http.StatusInternalServerError
		message = http.StatusText(http.StatusInternalServerError)
	}

	if m, ok := message.(string); ok {
		message = echo.Map{"error": m}
	}

	// Send response
	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead { // Issue #608
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}
		if err != nil {
			c.Echo().Logger.Error(err)
		}
	}
}

func isNotFound(err error) bool {
	for _, sentinel := range notFoundErrs {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
