package config

import (
	"time"

	"github.com/festops/scoreboard-service/internal/logger"
)

type Config struct {
	Logger logger.Config `mapstructure:"logger"`
	Server Server        `mapstructure:"server"`
	Mongo  Mongo         `mapstructure:"mongo"`
}

type Server struct {
	Addr string `mapstructure:"addr"`
}

type Mongo struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connectTimeout"`
}
