package config

import (
	"github.com/spf13/viper"

	"github.com/dylan-dingjan/bebetterbot/model"
)

// Cfg is the global configuration, populated by LoadConfig.
var Cfg model.Config

func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("LISTEN_ADDR", ":3000")
	viper.SetDefault("DB_PATH", "./data/bebetter.db")
	viper.SetDefault("quotes.api_url", "https://zenquotes.io/api/random")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
