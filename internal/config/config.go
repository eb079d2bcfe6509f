package config

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
	Routing  RoutingConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

// RoutingConfig holds the tunables that trade search correctness against cost.
type RoutingConfig struct {
	// NodeSearchRadius is in projected (EPSG:3857) units.
	NodeSearchRadius float64
	// BBoxMargin is the padding in degrees around start/end used to bound the search graph.
	BBoxMargin      float64
	BBoxRetryFactor float64
	BBoxMaxRetries  int
	// MergeBBoxMargin pads the anchor/target ways when growing a segment.
	MergeBBoxMargin float64
	RequestTimeout  time.Duration
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	// ConsumerName по умолчанию hostname-имя_воркера
	ConsumerName string
	MaxRetries   int
}

const (
	DefaultNodeSearchRadius = 1000
	DefaultBBoxMargin       = 0.02
	DefaultBBoxRetryFactor  = 4
	DefaultBBoxMaxRetries   = 1
	DefaultMergeBBoxMargin  = 0.02
	DefaultRequestTimeout   = 30 * time.Second
)

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),

			CORSOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Routing: RoutingConfig{
			NodeSearchRadius: viper.GetFloat64("ROUTING_NODE_SEARCH_RADIUS"),
			BBoxMargin:       viper.GetFloat64("ROUTING_BBOX_MARGIN"),
			BBoxRetryFactor:  viper.GetFloat64("ROUTING_BBOX_RETRY_FACTOR"),
			BBoxMaxRetries:   viper.GetInt("ROUTING_BBOX_MAX_RETRIES"),
			MergeBBoxMargin:  viper.GetFloat64("ROUTING_MERGE_BBOX_MARGIN"),
			RequestTimeout:   time.Duration(viper.GetInt("ROUTING_REQUEST_TIMEOUT")) * time.Second,
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			ConsumerName:  viper.GetString("WORKER_CONSUMER_NAME"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	cfg.Routing.applyDefaults()

	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "score-ingestion-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

// DefaultRoutingConfig returns the tunables used when nothing is configured.
func DefaultRoutingConfig() RoutingConfig {
	var rc RoutingConfig
	rc.applyDefaults()
	return rc
}

func (rc *RoutingConfig) applyDefaults() {
	if rc.NodeSearchRadius <= 0 {
		rc.NodeSearchRadius = DefaultNodeSearchRadius
	}
	if rc.BBoxMargin <= 0 {
		rc.BBoxMargin = DefaultBBoxMargin
	}
	if rc.BBoxRetryFactor <= 1 {
		rc.BBoxRetryFactor = DefaultBBoxRetryFactor
	}
	if rc.BBoxMaxRetries < 0 {
		rc.BBoxMaxRetries = 0
	} else if rc.BBoxMaxRetries == 0 {
		rc.BBoxMaxRetries = DefaultBBoxMaxRetries
	}
	if rc.MergeBBoxMargin <= 0 {
		rc.MergeBBoxMargin = DefaultMergeBBoxMargin
	}
	if rc.RequestTimeout <= 0 {
		rc.RequestTimeout = DefaultRequestTimeout
	}
}

// Watch re-reads the config file on change and hands the new log level to onLogLevel.
// Routing tunables are not reloaded; they are wired into constructors at startup.
func Watch(onLogLevel func(level string)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onLogLevel(viper.GetString("LOG_LEVEL"))
	})
	viper.WatchConfig()
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Addr - адрес Redis в виде host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
