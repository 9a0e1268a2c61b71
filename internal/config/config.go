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
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Auth struct {
		JWTSecret       string        `mapstructure:"jwt_secret"`
		AccessLifespan  time.Duration `mapstructure:"access_lifespan"`
		RefreshLifespan time.Duration `mapstructure:"refresh_lifespan"`
	} `mapstructure:"auth"`
	Webhook struct {
		Secret string `mapstructure:"secret"`
	} `mapstructure:"webhook"`
	OpenAI struct {
		APIKey  string        `mapstructure:"api_key"`
		Model   string        `mapstructure:"model"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"openai"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
}

func LoadConfig(paths ...string) (cfg Config, err error) {

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use environment only.")
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		viper.AddConfigPath(p)
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read environment only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("auth.access_lifespan", "ACCESS_TOKEN_LIFESPAN")
	viper.BindEnv("auth.refresh_lifespan", "REFRESH_TOKEN_LIFESPAN")
	viper.BindEnv("webhook.secret", "WEBHOOK_SECRET")
	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("openai.model", "OPENAI_MODEL")
	viper.BindEnv("openai.timeout", "OPENAI_TIMEOUT")
	viper.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("auth.access_lifespan", 15*time.Minute)
	viper.SetDefault("auth.refresh_lifespan", 7*24*time.Hour)
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("openai.timeout", 10*time.Second)

	err = viper.Unmarshal(&cfg)
	return
}
