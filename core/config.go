package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName    string
	Env        string // DEV (default), TEST, QA, PROD
	Debug      bool
	TestMode   bool
	Build      string
	SecretKey  string
	SessionTTL time.Duration

	// the address that is granted the Admin role at sign-up
	AdminEmail       string
	DefaultFromEmail string
	FrontendBaseURL  string
	RollbarToken     string
	SendgridApiKey   string

	Server struct {
		Host string
		Port string
	}

	Storage struct {
		Engine string // memory | sqlite | postgres
		Path   string // sqlite file path
		DSN    string // postgres DSN
	}
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

// LoadConfig builds the app Config from defaults, an optional
// config/.env.<env> file and environment variables (prefixed with the env).
func LoadConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("appName", "Kitivo")
	conf.SetDefault("debug", true)
	conf.SetDefault("secretKey", "w3+2ql)o#ej$yn&v8^ms1(bz!x)d*c7(#ud4k^$frgm9pqa")
	conf.SetDefault("sessionTTL", 7*24*time.Hour)
	conf.SetDefault("adminEmail", "hod@localhost")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("serverHost", "0.0.0.0")
	conf.SetDefault("serverPort", "8000")
	conf.SetDefault("storageEngine", "sqlite")
	conf.SetDefault("storagePath", "kitivo.db")

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	cfg := &Config{
		AppName:          conf.GetString("appName"),
		Env:              env,
		Debug:            conf.GetBool("debug"),
		TestMode:         conf.GetBool("testMode"),
		Build:            conf.GetString("build"),
		SecretKey:        conf.GetString("secretKey"),
		SessionTTL:       conf.GetDuration("sessionTTL"),
		AdminEmail:       conf.GetString("adminEmail"),
		DefaultFromEmail: conf.GetString("defaultFromEmail"),
		FrontendBaseURL:  conf.GetString("frontendBaseURL"),
		RollbarToken:     conf.GetString("rollbarToken"),
		SendgridApiKey:   conf.GetString("sendgridApiKey"),
	}
	cfg.Server.Host = conf.GetString("serverHost")
	cfg.Server.Port = conf.GetString("serverPort")
	cfg.Storage.Engine = conf.GetString("storageEngine")
	cfg.Storage.Path = conf.GetString("storagePath")
	cfg.Storage.DSN = conf.GetString("storageDSN")
	return cfg
}
