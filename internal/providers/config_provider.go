package providers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"timelinecsv/internal/structures"

	"github.com/spf13/viper"
)

const (
	DefaultHistoryDir     = "Timeline/Semantic Location History"
	DefaultPlacesFile     = "timeline.csv"
	DefaultActivitiesFile = "activities.csv"
)

func defaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Desktop", "Takeout")
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	v.SetDefault("source.root", defaultRoot())
	v.SetDefault("source.historyDir", DefaultHistoryDir)
	v.SetDefault("source.workers", 1)
	v.SetDefault("report.placesFile", DefaultPlacesFile)
	v.SetDefault("report.activitiesFile", DefaultActivitiesFile)
	v.SetDefault("report.activities", true)
	v.SetDefault("report.requireStartCoordinates", true)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 4)

	v.BindEnv("source.root", "TIMELINECSV_ROOT")
	v.BindEnv("source.workers", "TIMELINECSV_WORKERS")
	v.BindEnv("logger.level", "TIMELINECSV_LOG_LEVEL")
	v.BindEnv("metrics.textfile", "TIMELINECSV_METRICS_FILE")

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	err := v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if flags.Root != "" {
		conf.Source.Root = flags.Root
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "timelinecsv"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
