package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"workforce/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

const (
	EnvModeDevelopment = "development"
	EnvModeProduction  = "production"
)

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string `env:"DATABASE_DSN"   env-default:"host=localhost port=5432 user=postgres password=postgres dbname=workforce sslmode=disable"`
	EnvMode     string `env:"ENV_MODE"       env-default:"development"`
	Port        string `env:"PORT"           env-default:"8080"`

	// auth
	JwtSecret     string `env:"JWT_SECRET"     env-default:"workforce-dev-secret"`
	AdminPassword string `env:"ADMIN_PASSWORD" env-default:"Admin123!"`

	// cache (optional; skill lookups fall back to the database when unset)
	ValkeyHost     string `env:"VALKEY_HOST"     env-default:""`
	ValkeyPort     string `env:"VALKEY_PORT"     env-default:"6379"`
	ValkeyUsername string `env:"VALKEY_USERNAME" env-default:""`
	ValkeyPassword string `env:"VALKEY_PASSWORD" env-default:""`
	ValkeyIsSsl    bool   `env:"VALKEY_IS_SSL"   env-default:"false"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	// walk up to the module root so .env is found from any test directory
	root := cwd
	for {
		if _, err := os.Stat(filepath.Join(root, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(root)
		if parent == root {
			break
		}

		root = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(root, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	if env.EnvMode != EnvModeDevelopment && env.EnvMode != EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}
}
