package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures the minimal settings required to boot the SLA engine.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	TaskStore TaskStoreConfig `yaml:"taskStore"`
	Policy    PolicyConfig    `yaml:"policy"`
	Logging   LoggingConfig   `yaml:"logging"`
	Cache     CacheConfig     `yaml:"cache"`
}

// ServerConfig controls gRPC listener behaviour.
type ServerConfig struct {
	Address         string        `yaml:"address"`
	MetricsAddress  string        `yaml:"metricsAddress"`
	GracefulTimeout time.Duration `yaml:"gracefulTimeout"`
}

// TaskStoreConfig configures the back-office task store. When BaseURL is
// empty the engine falls back to the embedded SQLite store at SQLitePath.
type TaskStoreConfig struct {
	BaseURL    string        `yaml:"baseURL"`
	TasksPath  string        `yaml:"tasksPath"`
	Timeout    time.Duration `yaml:"timeout"`
	SQLitePath string        `yaml:"sqlitePath"`
	TaskTTL    time.Duration `yaml:"taskTTL"`
	LockTTL    time.Duration `yaml:"lockTTL"`
}

// PolicyConfig controls SLA policy pack loading.
type PolicyConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// CacheConfig controls Redis-backed caching of task lookups and the
// reservation keys guarding task creation.
type CacheConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Addr         string        `yaml:"addr"`
	Username     string        `yaml:"username"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db"`
	DialTimeout  time.Duration `yaml:"dialTimeout"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	MaxRetries   int           `yaml:"maxRetries"`
	TLS          bool          `yaml:"tls"`
}

// Load initialises Config from a YAML file and optional environment overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("DURAMED_SLA_CONFIG")
	}

	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Address:         ":50051",
			MetricsAddress:  ":2112",
			GracefulTimeout: 10 * time.Second,
		},
		TaskStore: TaskStoreConfig{
			TasksPath:  "/api/v1/tasks",
			Timeout:    5 * time.Second,
			SQLitePath: "duramed-sla-tasks.db",
			TaskTTL:    2 * time.Minute,
			LockTTL:    30 * time.Second,
		},
		Policy:  PolicyConfig{Path: "configs/policy/default.yaml"},
		Logging: LoggingConfig{Level: "info", JSON: false},
		Cache: CacheConfig{
			Enabled:      false,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
			MaxRetries:   2,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DURAMED_SLA_SERVER_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("DURAMED_SLA_METRICS_ADDRESS"); v != "" {
		cfg.Server.MetricsAddress = v
	}
	if v := os.Getenv("DURAMED_SLA_TASKSTORE_URL"); v != "" {
		cfg.TaskStore.BaseURL = v
	}
	if v := os.Getenv("DURAMED_SLA_TASKSTORE_TASKS_PATH"); v != "" {
		cfg.TaskStore.TasksPath = v
	}
	if v := os.Getenv("DURAMED_SLA_TASKSTORE_SQLITE_PATH"); v != "" {
		cfg.TaskStore.SQLitePath = v
	}
	if v := os.Getenv("DURAMED_SLA_TASKSTORE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TaskStore.Timeout = d
		}
	}
	if v := os.Getenv("DURAMED_SLA_TASK_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TaskStore.TaskTTL = d
		}
	}
	if v := os.Getenv("DURAMED_SLA_LOCK_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TaskStore.LockTTL = d
		}
	}
	if v := os.Getenv("DURAMED_SLA_POLICY_PATH"); v != "" {
		cfg.Policy.Path = v
	}
	if v := os.Getenv("DURAMED_SLA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("DURAMED_SLA_LOG_FORMAT"); v == "json" {
		cfg.Logging.JSON = true
	}
	if v := os.Getenv("DURAMED_SLA_CACHE_ADDR"); v != "" {
		cfg.Cache.Addr = v
	}
	if v := os.Getenv("DURAMED_SLA_CACHE_ENABLED"); v != "" {
		cfg.Cache.Enabled = strings.EqualFold(v, "true") || strings.EqualFold(v, "1")
	}
	if v := os.Getenv("DURAMED_SLA_CACHE_USERNAME"); v != "" {
		cfg.Cache.Username = v
	}
	if v := os.Getenv("DURAMED_SLA_CACHE_PASSWORD"); v != "" {
		cfg.Cache.Password = v
	}
	if v := os.Getenv("DURAMED_SLA_CACHE_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Cache.DB = db
		}
	}
	if v := os.Getenv("DURAMED_SLA_CACHE_TLS"); strings.EqualFold(v, "true") || strings.EqualFold(v, "1") {
		cfg.Cache.TLS = true
	}
	if v := os.Getenv("DURAMED_SLA_CACHE_DIAL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.DialTimeout = d
		}
	}
	if v := os.Getenv("DURAMED_SLA_CACHE_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.ReadTimeout = d
		}
	}
	if v := os.Getenv("DURAMED_SLA_CACHE_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.WriteTimeout = d
		}
	}
	if v := os.Getenv("DURAMED_SLA_CACHE_MAX_RETRIES"); v != "" {
		if retry, err := strconv.Atoi(v); err == nil {
			cfg.Cache.MaxRetries = retry
		}
	}
}
