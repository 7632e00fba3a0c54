package main

import (
	"io"
	"log"
	"os"

	"github.com/trezcool/kitivo/apps/api/echo"
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
	"github.com/trezcool/kitivo/services/logger"
	"github.com/trezcool/kitivo/storage/kvstore"
	"github.com/trezcool/kitivo/storage/kvstore/inmem"
	"github.com/trezcool/kitivo/storage/kvstore/postgres"
	"github.com/trezcool/kitivo/storage/kvstore/sqlite"
)

func main() {
	conf := core.LoadConfig()

	std := log.New(os.Stderr, conf.AppName+" ", log.LstdFlags|log.Lshortfile)
	var appLogger core.Logger
	if conf.Debug || conf.RollbarToken == "" {
		appLogger = logsvc.NewConsoleLogger(std)
	} else {
		appLogger = logsvc.NewRollbarLogger(std, conf)
	}

	// pick the key-value backend
	var kv core.KVStore
	switch conf.Storage.Engine {
	case "postgres":
		pg, err := pgkv.Open(conf.Storage.DSN)
		errAndDie(appLogger, err)
		defer closeQuietly(pg)
		kv = pg
	case "sqlite":
		sq, err := sqlitekv.Open(conf.Storage.Path)
		errAndDie(appLogger, err)
		defer closeQuietly(sq)
		kv = sq
	default:
		kv = inmemkv.New()
	}

	store, err := kvstore.Open(kv)
	errAndDie(appLogger, err)

	var mailSvc core.EmailService
	if conf.Debug || conf.SendgridApiKey == "" {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, appLogger)
	}

	usrSvc := user.NewService(store.UserRepository(), conf, mailSvc)
	dispatcher := notification.NewDispatcher(store.NotificationRepository(), store.UserRepository())

	app := echoapi.NewServer(&echoapi.Options{
		Conf:         conf,
		Store:        store,
		Router:       nav.NewRouter(store.RouteRepository()),
		UserSvc:      usrSvc,
		AcademicsSvc: academics.NewService(store.AcademicsRepository()),
		QuizSvc:      quiz.NewService(store.QuizRepository()),
		PollSvc:      poll.NewService(store.PollRepository()),
		ForumSvc:     forum.NewService(store.ForumRepository()),
		MessagingSvc: messaging.NewService(store.MessageRepository()),
		BoardSvc:     board.NewService(store.BoardRepository()),
		SettingsSvc:  settings.NewService(store.SettingsRepository()),
		Dispatcher:   dispatcher,
	})
	appLogger.Info("starting API server", "addr", conf.Address())
	app.Start()
}

func errAndDie(l core.Logger, err error) {
	if err != nil {
		l.Fatal(err.Error())
	}
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
