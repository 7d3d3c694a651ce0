package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Game   GameConfig   `mapstructure:"game"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type GameConfig struct {
	BoardsDir    string `mapstructure:"boards_dir"`
	SessionsDir  string `mapstructure:"sessions_dir"`
	DefaultBoard string `mapstructure:"default_board"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// LoadConfig reads config.yaml from path, with environment variables taking
// precedence. A missing config file is not an error; defaults apply.
func LoadConfig(path string) (config *Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("game.boards_dir", "boards")
	v.SetDefault("game.sessions_dir", "sessions")
	v.SetDefault("game.default_board", "classic")
	v.SetDefault("log.debug", false)

	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	err = v.Unmarshal(&config)
	return
}
