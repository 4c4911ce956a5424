package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	RabbitMQ    RabbitMQConfig    `yaml:"rabbitmq"`
	Upstream    UpstreamConfig    `yaml:"upstream"`
	Cache       CacheConfig       `yaml:"cache"`
	Queue       QueueConfig       `yaml:"queue"`
	Sync        SyncConfig        `yaml:"sync"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
	LogLevel    string            `yaml:"log_level"`
}

// RabbitMQConfig configures new-item events. An empty URL disables publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type UpstreamConfig struct {
	BaseURL      string        `yaml:"base_url"`
	TokenURL     string        `yaml:"token_url"`
	UserAgent    string        `yaml:"user_agent"`
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	Username     string        `yaml:"username"`
	Password     string        `yaml:"password"`
	GrantType    string        `yaml:"grant_type"`
	PageSize     int           `yaml:"page_size"`
	Timeout      time.Duration `yaml:"timeout"`
}

type CacheConfig struct {
	// Backend is one of memory, postgres or redis.
	Backend string        `yaml:"backend"`
	TTL     time.Duration `yaml:"ttl"`
	Redis   RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type QueueConfig struct {
	Attempts        int           `yaml:"attempts"`
	BackoffBase     time.Duration `yaml:"backoff_base"`
	MaxBackoff      time.Duration `yaml:"max_backoff"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	InitialParallel int           `yaml:"initial_parallel"`
	UpdateParallel  int           `yaml:"update_parallel"`
}

type SyncConfig struct {
	ShortDelay     time.Duration `yaml:"short_delay"`
	LongDelay      time.Duration `yaml:"long_delay"`
	UpdateInterval time.Duration `yaml:"update_interval"`
	ResumeOnStart  *bool         `yaml:"resume_on_start"`

	// Communities are tracked at start-up when not tracked yet.
	Communities []string `yaml:"communities"`
}

func (s SyncConfig) ShouldResume() bool {
	return s.ResumeOnStart == nil || *s.ResumeOnStart
}

type MaintenanceConfig struct {
	CacheSweep   string        `yaml:"cache_sweep"`
	QueueClean   string        `yaml:"queue_clean"`
	CleanGrace   time.Duration `yaml:"clean_grace"`
	ModqueuePoll string        `yaml:"modqueue_poll"`
	RunTimeout   time.Duration `yaml:"run_timeout"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "modsync"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "items"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "modsync_items"
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = "https://oauth.reddit.com"
	}
	if c.Upstream.TokenURL == "" {
		c.Upstream.TokenURL = "https://www.reddit.com/api/v1/access_token"
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = "modsync/1.0"
	}
	if c.Upstream.GrantType == "" {
		c.Upstream.GrantType = "password"
	}
	if c.Upstream.PageSize == 0 {
		c.Upstream.PageSize = 100
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 30 * time.Second
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "postgres"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 5 * time.Minute
	}
	if c.Cache.Redis.Addr == "" {
		c.Cache.Redis.Addr = "localhost:6379"
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "modsync:cache:"
	}
	if c.Queue.Attempts == 0 {
		c.Queue.Attempts = 3
	}
	if c.Queue.BackoffBase == 0 {
		c.Queue.BackoffBase = 1 * time.Second
	}
	if c.Queue.MaxBackoff == 0 {
		c.Queue.MaxBackoff = 5 * time.Minute
	}
	if c.Queue.PollInterval == 0 {
		c.Queue.PollInterval = 1 * time.Second
	}
	if c.Queue.InitialParallel == 0 {
		c.Queue.InitialParallel = 1
	}
	if c.Queue.UpdateParallel == 0 {
		c.Queue.UpdateParallel = 5
	}
	if c.Sync.ShortDelay == 0 {
		c.Sync.ShortDelay = 1 * time.Second
	}
	if c.Sync.LongDelay == 0 {
		c.Sync.LongDelay = 20 * time.Second
	}
	if c.Sync.UpdateInterval == 0 {
		c.Sync.UpdateInterval = 10 * time.Second
	}
	if c.Maintenance.CacheSweep == "" {
		c.Maintenance.CacheSweep = "@every 1m"
	}
	if c.Maintenance.QueueClean == "" {
		c.Maintenance.QueueClean = "@every 1h"
	}
	if c.Maintenance.CleanGrace == 0 {
		c.Maintenance.CleanGrace = 24 * time.Hour
	}
	if c.Maintenance.ModqueuePoll == "" {
		c.Maintenance.ModqueuePoll = "@every 1m"
	}
	if c.Maintenance.RunTimeout == 0 {
		c.Maintenance.RunTimeout = 5 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case "memory", "postgres", "redis":
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	switch c.Upstream.GrantType {
	case "password", "client_credentials":
	default:
		return fmt.Errorf("unknown grant type %q", c.Upstream.GrantType)
	}
	if c.Upstream.ClientID == "" {
		return fmt.Errorf("upstream.client_id is required")
	}
	return nil
}
