package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Lobby    LobbyConfig    `mapstructure:"lobby"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	QR       QRConfig       `mapstructure:"qr"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host                    string        `mapstructure:"host"`
	Port                    int           `mapstructure:"port"`
	Mode                    string        `mapstructure:"mode"`
	ReadTimeout             time.Duration `mapstructure:"read_timeout"`
	WriteTimeout            time.Duration `mapstructure:"write_timeout"`
	GracefulShutdownTimeout time.Duration `mapstructure:"graceful_shutdown_timeout"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	DB              string        `mapstructure:"db"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type CacheConfig struct {
	Backend string `mapstructure:"backend"` // "redis" | "memory"
}

// LobbyConfig holds every tunable of the lobby core. Components receive it
// explicitly; nothing reads the environment at call time.
type LobbyConfig struct {
	JoinBaseURL      string        `mapstructure:"join_base_url"`
	MatchThreshold   int           `mapstructure:"match_threshold"`
	CodeLength       int           `mapstructure:"code_length"`
	RecentMatchLimit int           `mapstructure:"recent_match_limit"`
	StoreTimeout     time.Duration `mapstructure:"store_timeout"`
	CreateRetries    int           `mapstructure:"create_retries"`
}

type CatalogConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	TitleTTL time.Duration `mapstructure:"title_ttl"`
}

type QRConfig struct {
	RendererURL string `mapstructure:"renderer_url"`
}

type CORSConfig struct {
	AllowedOrigins   []string      `mapstructure:"allowed_origins"`
	AllowedMethods   []string      `mapstructure:"allowed_methods"`
	AllowedHeaders   []string      `mapstructure:"allowed_headers"`
	AllowCredentials bool          `mapstructure:"allow_credentials"`
	MaxAge           time.Duration `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads config.yaml, overlays environment variables, and returns Config.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Environment variable override: DATABASE_POSTGRES_HOST -> database.postgres.host
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("lobby.match_threshold", 2)
	v.SetDefault("lobby.code_length", 16)
	v.SetDefault("lobby.recent_match_limit", 50)
	v.SetDefault("lobby.store_timeout", 5*time.Second)
	v.SetDefault("lobby.create_retries", 5)
	v.SetDefault("catalog.title_ttl", 24*time.Hour)
	v.SetDefault("cache.backend", "memory")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
