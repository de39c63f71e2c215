package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var Conf = new(AppConfig)

// AppConfig 库存应用配置
type AppConfig struct {
	AppliancesFile  string     `mapstructure:"appliances_file"`
	DictCapacity    int32      `mapstructure:"dict_capacity"`
	ShardCount      int32      `mapstructure:"shard_count"`
	RandomListLimit int        `mapstructure:"random_list_limit"`
	LogConfig       *LogConfig `mapstructure:"logger"`
}

// LogConfig ZapLogger配置
type LogConfig struct {
	Mode       string `mapstructure:"mode"`
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
}

func Init(configFile string) error {
	viper.SetConfigFile(configFile)
	// 配置缺省值 保证无配置文件时也能运行
	viper.SetDefault("appliances_file", "appliances.txt")
	viper.SetDefault("dict_capacity", 64)
	viper.SetDefault("shard_count", 16)
	viper.SetDefault("random_list_limit", 10)
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrap(err, "ReadInConfig failed")
	}
	if err := viper.Unmarshal(Conf); err != nil {
		return errors.Wrap(err, "unmarshal to Conf failed")
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(in fsnotify.Event) {
		_ = viper.Unmarshal(Conf)
	})
	return nil
}
