package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/kitivo/apps/api/echo/helpers"
	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/core/notification"
	"github.com/trezcool/kitivo/core/user"
)

type authApi struct {
	service    *user.Service
	router     *nav.Router
	dispatcher *notification.Dispatcher
}

func RegisterAuthAPI(g *echo.Group, auth, gate echo.MiddlewareFunc, svc *user.Service, router *nav.Router, dispatcher *notification.Dispatcher) {
	api := authApi{service: svc, router: router, dispatcher: dispatcher}

	ag := g.Group("/auth")

	// un-authed endpoints
	ag.POST("/signup", api.signUp)
	ag.POST("/signin", api.signIn)

	// authed endpoints
	sg := ag.Group("", auth)
	sg.POST("/signout", api.signOut)

	mg := g.Group("/me", auth, gate)
	mg.GET("", api.me)
	mg.PUT("", api.updateProfile)
	mg.GET("/notifications", api.notificationFeed)
	mg.POST("/notifications/:id/read", api.readNotification)

	ng := g.Group("/nav", auth, gate)
	ng.GET("", api.currentRoute)
	ng.POST("", api.navigate)
}

type (
	SignInResponse struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
	}
)

func (api *authApi) signUp(ctx echo.Context) error {
	data := new(user.NewUser)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	usr, err := api.service.SignUp(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *authApi) signIn(ctx echo.Context) error {
	data := new(user.Credentials)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	usr, err := api.service.Authenticate(*data)
	if err != nil {
		return err
	}
	token, err := helpers.GenerateToken(helpers.GetUserClaims(usr))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SignInResponse{Token: token, User: usr})
}

// signOut forces the router back to the unauthenticated entry state.
func (api *authApi) signOut(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.router.Reset())
}

func (api *authApi) me(ctx echo.Context) error {
	usr, err := helpers.GetContextUser(ctx, api.service)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *authApi) updateProfile(ctx echo.Context) error {
	usr, err := helpers.GetContextUser(ctx, api.service)
	if err != nil {
		return err
	}
	data := new(user.UpdateProfile)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	updated, err := api.service.UpdateProfile(usr.ID, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *authApi) notificationFeed(ctx echo.Context) error {
	usr, err := helpers.GetContextUser(ctx, api.service)
	if err != nil {
		return err
	}
	feed, err := api.dispatcher.Feed(usr.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, feed)
}

func (api *authApi) readNotification(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return helpers.ErrHttpNotFound
	}
	usr, err := helpers.GetContextUser(ctx, api.service)
	if err != nil {
		return err
	}
	n, err := api.dispatcher.MarkRead(id, usr.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, n)
}

func (api *authApi) currentRoute(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.router.Current())
}

func (api *authApi) navigate(ctx echo.Context) error {
	data := new(nav.Route)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.router.Navigate(*data))
}
