package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/kitivo/apps/api/echo/handlers"
	"github.com/trezcool/kitivo/apps/api/echo/helpers"
	"github.com/trezcool/kitivo/core"
	"github.com/trezcool/kitivo/core/academics"
	"github.com/trezcool/kitivo/core/board"
	"github.com/trezcool/kitivo/core/forum"
	"github.com/trezcool/kitivo/core/messaging"
	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/core/notification"
	"github.com/trezcool/kitivo/core/poll"
	"github.com/trezcool/kitivo/core/quiz"
	"github.com/trezcool/kitivo/core/settings"
	"github.com/trezcool/kitivo/core/user"
	"github.com/trezcool/kitivo/storage/kvstore"
)

type (
	Options struct {
		Conf           *core.Config
		DisableReqLogs bool

		Store        *kvstore.Store
		Router       *nav.Router
		UserSvc      *user.Service
		AcademicsSvc *academics.Service
		QuizSvc      *quiz.Service
		PollSvc      *poll.Service
		ForumSvc     *forum.Service
		MessagingSvc *messaging.Service
		BoardSvc     *board.Service
		SettingsSvc  *settings.Service
		Dispatcher   *notification.Dispatcher
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf
	helpers.ConfigureAuth(conf)

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = helpers.AppHTTPErrorHandler
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	auth := helpers.AuthMiddleware()
	gate := helpers.MaintenanceMiddleware(s.opts.SettingsSvc)

	handlers.RegisterAuthAPI(v1, auth, gate, s.opts.UserSvc, s.opts.Router, s.opts.Dispatcher)
	handlers.RegisterAcademicsAPI(v1, auth, gate, s.opts.AcademicsSvc, s.opts.Dispatcher)
	handlers.RegisterCommunityAPI(v1, auth, gate, s.opts.QuizSvc, s.opts.PollSvc, s.opts.ForumSvc, s.opts.MessagingSvc, s.opts.Dispatcher)
	handlers.RegisterBoardAPI(v1, auth, gate, s.opts.BoardSvc, s.opts.UserSvc, s.opts.Dispatcher)
	handlers.RegisterAdminAPI(v1, auth, s.opts.UserSvc, s.opts.SettingsSvc, s.opts.Store)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Conf.Address()))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the Kitivo API!")
}
