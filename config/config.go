package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Gemini   Gemini
	DumpDir  string
}

type Server struct {
	Port string
}

type Database struct {
	Path string
}

type Gemini struct {
	DefaultModel string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "notequiz.db")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-pro")
	viper.SetDefault("DUMP_DIR", ".")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Path = viper.GetString("DATABASE_PATH")
	config.Gemini.DefaultModel = viper.GetString("GEMINI_MODEL")
	config.DumpDir = viper.GetString("DUMP_DIR")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
