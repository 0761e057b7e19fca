package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type HTTP struct {
	Host string
	Port int
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Redis struct {
	Addr        string
	Pass        string
	DB          int
	KPICacheSec int
}

type Mantis struct {
	URL    string
	APIKey string
}

type Ingest struct {
	RequireKey bool
}

type Config struct {
	HTTP   HTTP
	DB     DB
	JWT    JWT
	Redis  Redis
	Mantis Mantis
	Ingest Ingest
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("backend.host", "127.0.0.1")
	v.SetDefault("backend.port", 9300)
	v.SetDefault("backend.db.host", "127.0.0.1")
	v.SetDefault("backend.db.port", 3306)
	v.SetDefault("backend.db.user", "root")
	v.SetDefault("backend.db.pass", "")
	v.SetDefault("backend.db.name", "gateway_portal")
	v.SetDefault("backend.redis.addr", "")
	v.SetDefault("backend.redis.db", 0)
	v.SetDefault("backend.redis.kpi_cache_sec", 30)
	v.SetDefault("backend.ingest.require_key", false)
	return v
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("backend.host"), Port: v.GetInt("backend.port")},
		DB: DB{
			Host: v.GetString("backend.db.host"),
			Port: v.GetInt("backend.db.port"),
			User: v.GetString("backend.db.user"),
			Pass: v.GetString("backend.db.pass"),
			Name: v.GetString("backend.db.name"),
		},
		Redis: Redis{
			Addr:        v.GetString("backend.redis.addr"),
			Pass:        v.GetString("backend.redis.pass"),
			DB:          v.GetInt("backend.redis.db"),
			KPICacheSec: v.GetInt("backend.redis.kpi_cache_sec"),
		},
		Mantis: Mantis{
			URL:    v.GetString("backend.mantis.url"),
			APIKey: v.GetString("backend.mantis.api_key"),
		},
		Ingest: Ingest{RequireKey: v.GetBool("backend.ingest.require_key")},
	}
	cfg.JWT.Secret = v.GetString("backend.jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("backend.jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "gateway-portal"
	}
	cfg.JWT.ExpMin = v.GetInt("backend.jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	return cfg
}

func Load(path string) (*Config, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return fromViper(v), nil
}

// Watch re-reads the file on change and hands the fresh config to onChange.
// Used to rotate the Mantis endpoint/key without a restart.
func Watch(path string, onChange func(*Config)) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	v.OnConfigChange(func(_ fsnotify.Event) {
		onChange(fromViper(v))
	})
	v.WatchConfig()
	return nil
}
