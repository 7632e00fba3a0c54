package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

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
	"github.com/trezcool/kitivo/services/email"
	"github.com/trezcool/kitivo/storage/kvstore"
	"github.com/trezcool/kitivo/storage/kvstore/inmem"
)

type testEnv struct {
	app         *echo.Echo
	store       *kvstore.Store
	conf        *core.Config
	usrSvc      *user.Service
	settingsSvc *settings.Service
	router      *nav.Router
	dispatcher  *notification.Dispatcher
}

func setupAPI(t *testing.T) *testEnv {
	t.Helper()

	conf := &core.Config{
		AppName:          "Kitivo",
		Debug:            true,
		TestMode:         true,
		SecretKey:        "secret",
		SessionTTL:       10 * time.Minute,
		AdminEmail:       "hod@test.cd",
		DefaultFromEmail: "noreply@test.cd",
	}
	helpers.ConfigureAuth(conf)

	store, err := kvstore.Open(inmemkv.New())
	if err != nil {
		t.Fatalf("setupAPI() failed: %v", err)
	}

	usrSvc := user.NewService(store.UserRepository(), conf, emailsvc.NewConsoleService(conf))
	settingsSvc := settings.NewService(store.SettingsRepository())
	router := nav.NewRouter(store.RouteRepository())
	dispatcher := notification.NewDispatcher(store.NotificationRepository(), store.UserRepository())

	app := echo.New()
	app.Pre(middleware.RemoveTrailingSlash())
	app.HTTPErrorHandler = helpers.AppHTTPErrorHandler

	v1 := app.Group("/v1")
	auth := helpers.AuthMiddleware()
	gate := helpers.MaintenanceMiddleware(settingsSvc)

	RegisterAuthAPI(v1, auth, gate, usrSvc, router, dispatcher)
	RegisterAcademicsAPI(v1, auth, gate, academics.NewService(store.AcademicsRepository()), dispatcher)
	RegisterCommunityAPI(v1, auth, gate,
		quiz.NewService(store.QuizRepository()),
		poll.NewService(store.PollRepository()),
		forum.NewService(store.ForumRepository()),
		messaging.NewService(store.MessageRepository()),
		dispatcher,
	)
	RegisterBoardAPI(v1, auth, gate, board.NewService(store.BoardRepository()), usrSvc, dispatcher)
	RegisterAdminAPI(v1, auth, usrSvc, settingsSvc, store)

	return &testEnv{
		app:         app,
		store:       store,
		conf:        conf,
		usrSvc:      usrSvc,
		settingsSvc: settingsSvc,
		router:      router,
		dispatcher:  dispatcher,
	}
}

func createUser(t *testing.T, env *testEnv, uname, role string) user.User {
	t.Helper()
	usr := user.User{
		Username: uname,
		Email:    uname + "@test.cd",
		Role:     role,
		Status:   user.StatusActive,
	}
	usr.SetName(uname, "", "Test")
	if err := usr.SetPassword("s3cret!"); err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	usr, err := env.store.UserRepository().CreateUser(usr)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func getToken(t *testing.T, usr user.User) string {
	t.Helper()
	token, err := helpers.GenerateToken(helpers.GetUserClaims(usr))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func itoa(i int) string { return strconv.Itoa(i) }

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decodeBody() failed: %v; body: %s", err, rec.Body.String())
	}
}
