// Package config defines the configuration structures shared across layers.
// Loading and environment binding live in infrastructure/config.
package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`

	// Origins allowed to call the admin API from a browser.
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// AdminToken, when set, is required as a bearer token on every
	// /api/admin request. Empty disables the check (dev only).
	AdminToken string `mapstructure:"admin_token"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	// Driver selects the backing store: "mysql" or "sqlite".
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`

	// Path is the database file location when Driver is "sqlite".
	Path string `mapstructure:"path"`

	MaxIdleConns    int `mapstructure:"max_idle_conns"`
	MaxOpenConns    int `mapstructure:"max_open_conns"`
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"` // minutes
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console or json
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type TelegramConfig struct {
	// BotToken authenticates against the Telegram Bot API. Empty disables
	// broadcast delivery (broadcasts stay queued).
	BotToken string `mapstructure:"bot_token"`

	// SendInterval is the pause between consecutive sendMessage calls in
	// milliseconds. Telegram allows roughly 30 messages per second.
	SendInterval int `mapstructure:"send_interval"`
}

type BroadcastConfig struct {
	// DispatchInterval is how often the worker claims queued broadcasts,
	// in seconds.
	DispatchInterval int `mapstructure:"dispatch_interval"`

	// MaxRecipients caps the resolved audience of a single broadcast.
	MaxRecipients int `mapstructure:"max_recipients"`
}

type StatsConfig struct {
	// CacheTTL is the statistics snapshot cache lifetime in seconds.
	// Zero disables caching.
	CacheTTL int `mapstructure:"cache_ttl"`
}
