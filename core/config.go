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

type (
	ServerConfig struct {
		Address         string
		Host            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	CardsConfig struct {
		GapX     float64
		GapY     float64
		CutMarks bool
	}

	Config struct {
		AppName      string
		Env          string
		Debug        bool
		TestMode     bool
		Build        string
		RollbarToken string
		Server       ServerConfig

		// SchoolFile is the school profile printed on every document.
		SchoolFile   string
		DefaultBoard string
		Cards        CardsConfig
	}
)

// NewConfig reads the configuration from defaults, config/.env.<env> and the
// environment, in increasing precedence. Env vars are prefixed with the
// environment name, e.g. PROD_SCHOOLFILE.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("appName", "Vidyalaya Documents")
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("build", "dev")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.debugHost", ":4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("schoolFile", filepath.Join("config", "school.yaml"))
	conf.SetDefault("defaultBoard", "CBSE")
	conf.SetDefault("cards.gapX", 5.0)
	conf.SetDefault("cards.gapY", 5.0)
	conf.SetDefault("cards.cutMarks", true)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	if root, err := Getwd(); err == nil {
		dotEnvPath := filepath.Join(root, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
		}
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		Build:        conf.GetString("build"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:         conf.GetString("server.address"),
			Host:            conf.GetString("server.host"),
			DebugHost:       conf.GetString("server.debugHost"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
		},
		SchoolFile:   conf.GetString("schoolFile"),
		DefaultBoard: CleanString(conf.GetString("defaultBoard")),
		Cards: CardsConfig{
			GapX:     conf.GetFloat64("cards.gapX"),
			GapY:     conf.GetFloat64("cards.gapY"),
			CutMarks: conf.GetBool("cards.cutMarks"),
		},
	}
}
