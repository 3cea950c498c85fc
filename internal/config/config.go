package config

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	authservice "github.com/goserg/sportscheduler/auth/service"
)

const DefaultPath = "configs/server.toml"

type Server struct {
	Host       string `toml:"host" env:"SCHEDULER_HOST"`
	Port       int    `toml:"port" env:"SCHEDULER_PORT"`
	Debug      bool   `toml:"debug_mode" env:"SCHEDULER_DEBUG"`
	SqliteFile string `toml:"sqlite_file" env:"SCHEDULER_SQLITE_FILE"`
	TLSCert    string `toml:"tls_cert" env:"SCHEDULER_TLS_CERT"`
	TLSKey     string `toml:"tls_key" env:"SCHEDULER_TLS_KEY"`
}

func (s Server) TLSEnabled() bool {
	return s.TLSCert != "" && s.TLSKey != ""
}

type Config struct {
	Server Server             `toml:"server"`
	Auth   authservice.Config `toml:"auth"`
}

func Default() Config {
	return Config{
		Server: Server{
			Host:       "127.0.0.1",
			Port:       3000,
			SqliteFile: "scheduler.sqlite",
		},
	}
}

// New reads the TOML file at path over the defaults and then applies environment overrides.
// A missing file is not an error.
func New(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	err = env.Parse(&cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
