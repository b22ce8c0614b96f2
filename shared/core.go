package shared

import (
	"log/slog"
	"os"
	"time"

	"github.com/craftbase/appcatalog/database"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type Context = echo.Context
type DB = *gorm.DB

// Probe routes are shared between the router and the request logger, which
// suppresses them to keep monitoring noise out of the logs.
const (
	APIV1Prefix  = "/api/v1"
	HealthRoute  = APIV1Prefix + "/health/"
	MetricsRoute = APIV1Prefix + "/metrics/"
)

func DatabaseFactory() (DB, error) {
	pool, err := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	if err != nil {
		return nil, err
	}

	return database.NewGormDB(pool)
}

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
func InitLogger() {
	w := os.Stderr

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()
