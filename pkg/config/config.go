package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Port               string `mapstructure:"PORT"`
	GRPCPort           string `mapstructure:"GRPC_PORT"`
	AppEnv             string `mapstructure:"APP_ENV"`
	ServiceName        string `mapstructure:"SERVICE_NAME"`
	PostgresUsername   string `mapstructure:"POSTGRES_USERNAME"`
	PostgresPassword   string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDatabase   string `mapstructure:"POSTGRES_DATABASE"`
	PostgresSSLMode    string `mapstructure:"POSTGRES_SSLMODE"`
	PostgresHost       string `mapstructure:"POSTGRES_HOST"`
	PostgresPort       string `mapstructure:"POSTGRES_PORT"`
	RabbitMQURL        string `mapstructure:"RABBITMQ_URL"`
	RecentDefaultLimit int    `mapstructure:"RECENT_DEFAULT_LIMIT"`
	RecentMaxLimit     int    `mapstructure:"RECENT_MAX_LIMIT"`
}

func (c *AppConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

// PostgresDSN renders the lib/pq key/value connection string.
func (c *AppConfig) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUsername, c.PostgresPassword, c.PostgresDatabase, c.PostgresSSLMode,
	)
}

func Read() *AppConfig {
	appConfig, err := Load(".env")
	if err != nil {
		panic(fmt.Errorf("fatal error unmarshalling config: %w", err))
	}
	return appConfig
}

// Load reads the optional env file at path, then the process environment.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	bindEnvVariables(v)
	setDefaults(v)

	var appConfig AppConfig
	if err := v.Unmarshal(&appConfig); err != nil {
		return nil, err
	}

	if appConfig.RecentMaxLimit < 1 {
		return nil, fmt.Errorf("RECENT_MAX_LIMIT must be positive, got %d", appConfig.RecentMaxLimit)
	}
	if appConfig.RecentDefaultLimit < 1 || appConfig.RecentDefaultLimit > appConfig.RecentMaxLimit {
		return nil, fmt.Errorf("RECENT_DEFAULT_LIMIT must be between 1 and %d, got %d", appConfig.RecentMaxLimit, appConfig.RecentDefaultLimit)
	}

	return &appConfig, nil
}

func bindEnvVariables(v *viper.Viper) {
	_ = v.BindEnv("PORT")
	_ = v.BindEnv("GRPC_PORT")
	_ = v.BindEnv("APP_ENV")
	_ = v.BindEnv("SERVICE_NAME")
	_ = v.BindEnv("POSTGRES_USERNAME")
	_ = v.BindEnv("POSTGRES_PASSWORD")
	_ = v.BindEnv("POSTGRES_DATABASE")
	_ = v.BindEnv("POSTGRES_SSLMODE")
	_ = v.BindEnv("POSTGRES_HOST")
	_ = v.BindEnv("POSTGRES_PORT")
	_ = v.BindEnv("RABBITMQ_URL")
	_ = v.BindEnv("RECENT_DEFAULT_LIMIT")
	_ = v.BindEnv("RECENT_MAX_LIMIT")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GRPC_PORT", "9090")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVICE_NAME", "catalog")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("RECENT_DEFAULT_LIMIT", 10)
	v.SetDefault("RECENT_MAX_LIMIT", 100)
}
