package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"cpu-scheduler/internal/schedulers"
)

const envPrefix = "SCHEDSIM"

// Keys understood in config.yaml, the environment and bound flags.
const (
	KeyPort                  = "port"
	KeyLogLevel              = "log_level"
	KeyRoundRobinTimeQuantum = "scheduler.round_robin.time_quantum"
	KeyTwoLevelThreshold     = "scheduler.two_level_fcfs.burst_threshold"
	KeyQueueCapacity         = "scheduler.queue_capacity"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	// TwoLevelBurstThreshold of 0 means the mean burst of each input.
	TwoLevelBurstThreshold int
	// QueueCapacity of 0 means unbounded ready queues.
	QueueCapacity int
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, 9095)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyRoundRobinTimeQuantum, schedulers.DefaultTimeQuantum)
	v.SetDefault(KeyTwoLevelThreshold, 0)
	v.SetDefault(KeyQueueCapacity, 0)
}

// New creates a viper instance with defaults and SCHEDSIM_ env overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads the config file into v. With an empty path "config.yaml" is
// looked up in the working directory and its absence is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			logrus.Debug("no config.yaml found, using defaults")
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	logrus.Debugf("using config file %s", v.ConfigFileUsed())
	return nil
}

// FromViper extracts and validates a SchedulerConfig.
func FromViper(v *viper.Viper) (*SchedulerConfig, error) {
	config := &SchedulerConfig{
		Port:                   v.GetInt(KeyPort),
		LogLevel:               v.GetString(KeyLogLevel),
		RoundRobinTimeQuantum:  v.GetInt(KeyRoundRobinTimeQuantum),
		TwoLevelBurstThreshold: v.GetInt(KeyTwoLevelThreshold),
		QueueCapacity:          v.GetInt(KeyQueueCapacity),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Load reads path (or ./config.yaml) with defaults and env overrides applied.
func Load(path string) (*SchedulerConfig, error) {
	v := New()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}
	return FromViper(v)
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%s must be in 1-65535, got %d", KeyPort, c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	if c.RoundRobinTimeQuantum < 1 {
		return fmt.Errorf("%s must be >= 1, got %d", KeyRoundRobinTimeQuantum, c.RoundRobinTimeQuantum)
	}
	if c.TwoLevelBurstThreshold < 0 {
		return fmt.Errorf("%s must be >= 0, got %d", KeyTwoLevelThreshold, c.TwoLevelBurstThreshold)
	}
	if c.QueueCapacity < 0 {
		return fmt.Errorf("%s must be >= 0, got %d", KeyQueueCapacity, c.QueueCapacity)
	}
	return nil
}

// SchedulerOptions converts the config into engine options.
func (c *SchedulerConfig) SchedulerOptions() schedulers.Options {
	opts := schedulers.Options{
		TimeQuantum:    c.RoundRobinTimeQuantum,
		BurstThreshold: c.TwoLevelBurstThreshold,
	}
	if c.QueueCapacity > 0 {
		capacity := c.QueueCapacity
		opts.QueueCapacity = &capacity
	}
	return opts
}
