package conf

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/careconnect-hq/careconnect/internal/admin/esign"
	"github.com/careconnect-hq/careconnect/pkg/cache"
	"github.com/careconnect-hq/careconnect/pkg/database"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/careconnect-hq/careconnect/pkg/storage"
)

// AppConfig composes the configuration of every subsystem.
type AppConfig struct {
	Log      log.Conf
	Http     http.Http
	Database database.Database
	Redis    cache.Redis
	Storage  storage.Storage
	ESign    esign.Config
	Sync     SyncConfig
}

// SyncConfig drives the scheduled document-tracking maintenance jobs.
type SyncConfig struct {
	// Cron spec for the nightly tracking-row sync, robfig/cron format.
	SyncSpec string `mapstructure:"syncSpec"`
	// Cron spec for the reminder/overdue scan.
	ScanSpec string `mapstructure:"scanSpec"`
}

var (
	cfg  AppConfig
	once sync.Once
)

func NewConf(confFile string) AppConfig {
	once.Do(func() {
		var err error
		cfg, err = LoadConfigFile(confFile)
		if err != nil {
			panic(fmt.Sprintf("load conf file error: %s", err))
		}
	})
	return cfg
}

// LoadConfigFile loads the TOML configuration file and watches it for changes.
func LoadConfigFile(confFile string) (AppConfig, error) {

	config := viper.New()
	config.SetConfigFile(confFile)
	config.AddConfigPath("./conf.d")
	config.SetConfigName("config")
	config.SetConfigType("toml")
	if err := config.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read configuration file: %w", err)
	}

	config.WatchConfig()
	config.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("configuration changed, re-reading: %s", e.Name)
		if err := config.Unmarshal(&cfg); err != nil {
			log.Errorf("failed to unmarshal configuration file: %v", err)
		}
	})
	if err := config.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal configuration file: %w", err)
	}

	return cfg, nil
}
