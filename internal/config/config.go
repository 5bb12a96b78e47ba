package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port     string `mapstructure:"port"`
		Env      string `mapstructure:"env"`
		Name     string `mapstructure:"name"`
		Version  string `mapstructure:"version"`
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Jaeger struct {
		OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
		SampleRatio  float64 `mapstructure:"sample_ratio"`
	} `mapstructure:"jaeger"`
	CORS struct {
		AllowOrigins []string `mapstructure:"allow_origins"`
	} `mapstructure:"cors"`
	Cache struct {
		TTL time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`
	Portfolio struct {
		Author       string `mapstructure:"author"`
		SupportEmail string `mapstructure:"support_email"`
		SiteURL      string `mapstructure:"site_url"`
	} `mapstructure:"portfolio"`
}

// LoadConfig reads .env, then config.yaml from the given directories (default "."),
// then the environment. Later sources win.
func LoadConfig(paths ...string) (cfg Config, err error) {

	err = godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.name", "Portfolio Backend API")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("jaeger.sample_ratio", 1.0)
	v.SetDefault("kafka.group_id", "portfolio-worker-group")
	v.SetDefault("auth.token_lifespan", "24h")
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("portfolio.site_url", "http://localhost:3000")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.log_level", "LOG_LEVEL")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.group_id", "KAFKA_GROUP_ID")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	v.BindEnv("jaeger.otlp_endpoint", "OTLP_ENDPOINT")
	v.BindEnv("jaeger.sample_ratio", "OTLP_SAMPLE_RATIO")
	v.BindEnv("cors.allow_origins", "CORS_ALLOW_ORIGINS")
	v.BindEnv("cache.ttl", "CACHE_TTL")
	v.BindEnv("portfolio.author", "PORTFOLIO_AUTHOR")
	v.BindEnv("portfolio.support_email", "PORTFOLIO_SUPPORT_EMAIL")
	v.BindEnv("portfolio.site_url", "PORTFOLIO_SITE_URL")

	err = v.Unmarshal(&cfg)
	return
}
