// internal/config/settings.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings — параметры запуска, читаемые из файла конфигурации.
// Константы баланса остаются в config.go; сюда попадает только то,
// что имеет смысл менять без пересборки.
type Settings struct {
	LogLevel string `mapstructure:"logLevel"`
	SavePath string `mapstructure:"savePath"`
	Seed     int64  `mapstructure:"seed"`

	Spectator SpectatorSettings `mapstructure:"spectator"`
}

// SpectatorSettings — настройки отладочной трансляции снапшотов.
type SpectatorSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// LoadSettings читает конфигурацию из каталога configDir и применяет значения
// по умолчанию. Отсутствие файла конфигурации — не ошибка.
func LoadSettings(configDir string) (*Settings, error) {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("savePath", "ninja_idle.db")
	viper.SetDefault("seed", 0)
	viper.SetDefault("spectator.enabled", false)
	viper.SetDefault("spectator.addr", "localhost:8089")

	viper.SetConfigName("ninja_idle.cfg")
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &s, nil
}
