package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/kitivo/apps/api/echo/helpers"
	"github.com/trezcool/kitivo/core"
	"github.com/trezcool/kitivo/core/settings"
	"github.com/trezcool/kitivo/core/user"
	"github.com/trezcool/kitivo/storage/kvstore"
)

type adminApi struct {
	userSvc     *user.Service
	settingsSvc *settings.Service
	store       *kvstore.Store
}

// RegisterAdminAPI mounts the admin surface. Admins always pass the
// maintenance gate, so these routes sit behind auth + role check only.
func RegisterAdminAPI(g *echo.Group, auth echo.MiddlewareFunc, userSvc *user.Service, settingsSvc *settings.Service, store *kvstore.Store) {
	api := adminApi{userSvc: userSvc, settingsSvc: settingsSvc, store: store}

	ag := g.Group("/admin", auth, helpers.AdminMiddleware())

	ag.GET("/users", api.users)
	ag.PUT("/users/:id/role", api.setRole)
	ag.PUT("/users/:id/status", api.setStatus)
	ag.DELETE("/users/:id", api.deleteUser)

	ag.GET("/roster", api.roster)
	ag.POST("/roster", api.approveMatric)
	ag.DELETE("/roster/:matric", api.revokeMatric)

	ag.GET("/settings", api.getSettings)
	ag.PUT("/settings/maintenance", api.setMaintenance)

	ag.GET("/backup", api.backup)
	ag.POST("/restore", api.restore)
}

type (
	SetRoleRequest struct {
		Role string `json:"role" validate:"required,oneof=student president admin"`
	}
	SetStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=active suspended banned"`
	}
	MatricRequest struct {
		MatricNumber string `json:"matric_number" validate:"required,matricnum"`
	}
	MaintenanceRequest struct {
		On bool `json:"on"`
	}
)

func (r *SetRoleRequest) Validate() error   { return core.Validate.Struct(r) }
func (r *SetStatusRequest) Validate() error { return core.Validate.Struct(r) }
func (r *MatricRequest) Validate() error    { return core.Validate.Struct(r) }

func (api *adminApi) users(ctx echo.Context) error {
	users, err := api.userSvc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *adminApi) setRole(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	data := new(SetRoleRequest)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	if err = data.Validate(); err != nil {
		return err
	}
	usr, err := api.userSvc.SetRole(id, data.Role)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *adminApi) setStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	data := new(SetStatusRequest)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	if err = data.Validate(); err != nil {
		return err
	}
	usr, err := api.userSvc.SetStatus(id, data.Status)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *adminApi) deleteUser(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.userSvc.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *adminApi) roster(ctx echo.Context) error {
	roster, err := api.userSvc.Roster()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, roster)
}

func (api *adminApi) approveMatric(ctx echo.Context) error {
	data := new(MatricRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	if err := api.userSvc.ApproveMatric(data.MatricNumber); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *adminApi) revokeMatric(ctx echo.Context) error {
	if err := api.userSvc.RevokeMatric(ctx.Param("matric")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *adminApi) getSettings(ctx echo.Context) error {
	sett, err := api.settingsSvc.Get()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sett)
}

func (api *adminApi) setMaintenance(ctx echo.Context) error {
	data := new(MaintenanceRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	sett, err := api.settingsSvc.SetMaintenanceMode(data.On)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sett)
}

func (api *adminApi) backup(ctx echo.Context) error {
	snap, err := api.store.Backup()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, snap)
}

func (api *adminApi) restore(ctx echo.Context) error {
	snap := new(kvstore.Snapshot)
	if err := ctx.Bind(snap); err != nil {
		return err
	}
	if err := api.store.Restore(*snap); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
