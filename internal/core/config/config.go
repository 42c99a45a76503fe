package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STATSBOT_"

// maxPageSize is the largest message page the platform serves.
const maxPageSize = 100

// Config represents the top-level application config.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Discord  DiscordConfig  `koanf:"discord"`
	Backfill BackfillConfig `koanf:"backfill"`
	Live     LiveConfig     `koanf:"live"`
	Stats    StatsConfig    `koanf:"stats"`
	Identity IdentityConfig `koanf:"identity"`
	Command  CommandConfig  `koanf:"command"`
	Logging  LoggingConfig  `koanf:"logging"`
}

type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`
	Mode string `koanf:"mode"` // debug | release
}

type DatabaseConfig struct {
	DSN             string `koanf:"dsn"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	AutoMigrate     bool   `koanf:"auto_migrate"`
	DeleteBatchSize int    `koanf:"delete_batch_size"`
}

// String keeps the database password out of logs. Both URL and
// keyword/value DSNs are handled.
func (d DatabaseConfig) String() string {
	return fmt.Sprintf("{DSN:%s MaxOpenConns:%d MaxIdleConns:%d AutoMigrate:%t DeleteBatchSize:%d}",
		redactDSN(d.DSN), d.MaxOpenConns, d.MaxIdleConns, d.AutoMigrate, d.DeleteBatchSize)
}

var dsnPasswordPattern = regexp.MustCompile(`(?i)(password\s*=\s*)('[^']*'|\S+)`)

func redactDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		return u.Redacted()
	}
	return dsnPasswordPattern.ReplaceAllString(dsn, "${1}xxxxx")
}

type DiscordConfig struct {
	Token string `koanf:"token"`
}

// String keeps the token out of logs.
func (d DiscordConfig) String() string {
	if d.Token == "" {
		return "{Token:}"
	}
	return "{Token:***}"
}

type BackfillConfig struct {
	WorkerCount      int           `koanf:"worker_count"`
	PageSize         int           `koanf:"page_size"`
	ProgressEvery    int           `koanf:"progress_every"`
	QueueSize        int           `koanf:"queue_size"`
	ConcurrentGuilds int           `koanf:"concurrent_guilds"`
	Guilds           []string      `koanf:"guilds"`
	OnGuildAvailable bool          `koanf:"on_guild_available"`
	ScheduleInterval time.Duration `koanf:"schedule_interval"` // 0 disables
}

type LiveConfig struct {
	BufferSize            int  `koanf:"buffer_size"`
	ResolveReactionCounts bool `koanf:"resolve_reaction_counts"`
}

type StatsConfig struct {
	TopUsers          int `koanf:"top_users"`
	LookupConcurrency int `koanf:"lookup_concurrency"`
}

type IdentityConfig struct {
	CacheCapacity int           `koanf:"cache_capacity"`
	CacheTTL      time.Duration `koanf:"cache_ttl"`
	Redis         RedisConfig   `koanf:"redis"`
}

type RedisConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Addr      string `koanf:"addr"`
	Password  string `koanf:"password"`
	DB        int    `koanf:"db"`
	KeyPrefix string `koanf:"key_prefix"`
}

func (r RedisConfig) String() string {
	password := ""
	if r.Password != "" {
		password = "***"
	}
	return fmt.Sprintf("{Enabled:%t Addr:%s Password:%s DB:%d KeyPrefix:%s}",
		r.Enabled, r.Addr, password, r.DB, r.KeyPrefix)
}

type CommandConfig struct {
	Enabled bool `koanf:"enabled"`
}

type LoggingConfig struct {
	Level string `koanf:"level"` // debug | info | warn | error
}

// SlogLevel parses Level. Validate guarantees it parses.
func (l LoggingConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0")
	}
	if c.Database.MaxIdleConns <= 0 {
		return fmt.Errorf("database.max_idle_conns must be > 0")
	}
	if c.Database.DeleteBatchSize <= 0 {
		return fmt.Errorf("database.delete_batch_size must be > 0")
	}

	if strings.TrimSpace(c.Discord.Token) == "" {
		return fmt.Errorf("discord.token is required")
	}

	if c.Backfill.WorkerCount <= 0 {
		return fmt.Errorf("backfill.worker_count must be > 0")
	}
	if c.Backfill.PageSize <= 0 || c.Backfill.PageSize > maxPageSize {
		return fmt.Errorf("invalid backfill.page_size %d (must be 1-%d)", c.Backfill.PageSize, maxPageSize)
	}
	if c.Backfill.ProgressEvery <= 0 {
		return fmt.Errorf("backfill.progress_every must be > 0")
	}
	if c.Backfill.QueueSize <= 0 {
		return fmt.Errorf("backfill.queue_size must be > 0")
	}
	if c.Backfill.ConcurrentGuilds <= 0 {
		return fmt.Errorf("backfill.concurrent_guilds must be > 0")
	}
	if c.Backfill.ScheduleInterval < 0 {
		return fmt.Errorf("backfill.schedule_interval must be >= 0")
	}

	if c.Live.BufferSize <= 0 {
		return fmt.Errorf("live.buffer_size must be > 0")
	}

	if c.Stats.TopUsers <= 0 {
		return fmt.Errorf("stats.top_users must be > 0")
	}
	if c.Stats.LookupConcurrency <= 0 {
		return fmt.Errorf("stats.lookup_concurrency must be > 0")
	}

	if c.Identity.CacheCapacity <= 0 {
		return fmt.Errorf("identity.cache_capacity must be > 0")
	}
	if c.Identity.CacheTTL <= 0 {
		return fmt.Errorf("identity.cache_ttl must be > 0")
	}
	if c.Identity.Redis.Enabled && strings.TrimSpace(c.Identity.Redis.Addr) == "" {
		return fmt.Errorf("identity.redis.addr is required when redis is enabled")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("invalid logging.level %q: %w", c.Logging.Level, err)
	}

	return nil
}

// Load parses config from defaults, file and env (in that order), then validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                  8080,
		"server.host":                  "0.0.0.0",
		"server.mode":                  "release",
		"database.dsn":                 "",
		"database.max_open_conns":      25,
		"database.max_idle_conns":      25,
		"database.auto_migrate":        true,
		"database.delete_batch_size":   500,
		"discord.token":                "",
		"backfill.worker_count":        4,
		"backfill.page_size":           100,
		"backfill.progress_every":      1000,
		"backfill.queue_size":          16,
		"backfill.concurrent_guilds":   2,
		"backfill.guilds":              []string{},
		"backfill.on_guild_available":  true,
		"backfill.schedule_interval":   "0s",
		"live.buffer_size":             256,
		"live.resolve_reaction_counts": true,
		"stats.top_users":              10,
		"stats.lookup_concurrency":     8,
		"identity.cache_capacity":      4096,
		"identity.cache_ttl":           "10m",
		"identity.redis.enabled":       false,
		"identity.redis.addr":          "localhost:6379",
		"identity.redis.password":      "",
		"identity.redis.db":            0,
		"identity.redis.key_prefix":    "statsbot:name:",
		"command.enabled":              true,
		"logging.level":                "info",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Backfill.Guilds = splitList(cfg.Backfill.Guilds)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// splitList accepts both YAML lists and a comma-separated env value.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
