package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
	BackendMongo    = "mongo"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Record store backend: memory, dynamodb, redis or mongo.
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	KVTable      string `mapstructure:"KV_TABLE"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Demo visits generated when the visit list is empty. SeedRandom makes the
	// generated set reproducible.
	SeedVisits int   `mapstructure:"SEED_VISITS"`
	SeedRandom int64 `mapstructure:"SEED_RANDOM"`

	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`

	CORSAllowedOrigins string  `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RateLimitPerSecond float64 `mapstructure:"RATE_LIMIT_PER_SECOND"`
}

var AppConfig Config

var keys = []string{
	"APP_PORT", "ENV", "LOG_LEVEL",
	"STORE_BACKEND", "KV_TABLE",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"MONGO_URI", "MONGO_DATABASE",
	"SEED_VISITS", "SEED_RANDOM",
	"MERCADOPAGO_ACCESS_TOKEN", "PAYMENT_GATEWAY_MOCK",
	"CORS_ALLOWED_ORIGINS", "RATE_LIMIT_PER_SECOND",
}

// Load reads config.yaml (optional) from the working directory or ./config
// and overlays environment variables.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	// Unmarshal only sees env values for keys viper already knows about.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	return cfg, nil
}

// LoadConfig loads the process configuration into AppConfig.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_BACKEND", BackendMemory)
	v.SetDefault("KV_TABLE", "fieldops_kv")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "fieldops")
	v.SetDefault("SEED_VISITS", 0)
	v.SetDefault("SEED_RANDOM", 0)
	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_PER_SECOND", 20)
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
