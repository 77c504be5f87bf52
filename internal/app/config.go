package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr            string        `envconfig:"DAYBOOK_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"DAYBOOK_SHUTDOWN_TIMEOUT" default:"10s"`

	// DatabaseURL is a remote Turso URL or a local file: URL; AuthToken is
	// only needed for remote databases.
	DatabaseURL string `envconfig:"DAYBOOK_DATABASE_URL" default:"file:daybook.db"`
	AuthToken   string `envconfig:"DAYBOOK_AUTH_TOKEN"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
