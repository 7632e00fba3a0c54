package main

import (
	"log"
	"os"

	"github.com/trezcool/kitivo/core"
	"github.com/trezcool/kitivo/core/settings"
	"github.com/trezcool/kitivo/core/user"
	"github.com/trezcool/kitivo/services/email"
	"github.com/trezcool/kitivo/storage/kvstore"
	"github.com/trezcool/kitivo/storage/kvstore/inmem"
	"github.com/trezcool/kitivo/storage/kvstore/postgres"
	"github.com/trezcool/kitivo/storage/kvstore/sqlite"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.LoadConfig()

	var kv core.KVStore
	switch conf.Storage.Engine {
	case "postgres":
		pg, err := pgkv.Open(conf.Storage.DSN)
		errAndDie(err)
		defer pg.Close()
		kv = pg
	case "sqlite":
		sq, err := sqlitekv.Open(conf.Storage.Path)
		errAndDie(err)
		defer sq.Close()
		kv = sq
	default:
		kv = inmemkv.New()
	}

	store, err := kvstore.Open(kv)
	errAndDie(err)

	cli := commandLine{
		store:       store,
		usrRepo:     store.UserRepository(),
		usrSvc:      user.NewService(store.UserRepository(), conf, emailsvc.NewConsoleService(conf)),
		settingsSvc: settings.NewService(store.SettingsRepository()),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
