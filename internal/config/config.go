package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Redis              Redis              `mapstructure:",squash"`
	Pacing             Pacing             `mapstructure:",squash"`
	PacingSnapshotSync PacingSnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Migrate  bool   `mapstructure:"database_migrate"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenTTL      time.Duration `mapstructure:"auth_token_ttl"`
	AdminEmail    string        `mapstructure:"auth_admin_email"`
	AdminPassword string        `mapstructure:"auth_admin_password"`
}

type Redis struct {
	URL     string        `mapstructure:"redis_url"`
	TTL     time.Duration `mapstructure:"redis_pacing_ttl"`
	Enabled bool          `mapstructure:"redis_enabled"`
}

// Pacing agrupa os parâmetros do motor de projeção
type Pacing struct {
	DefaultDurationDays int           `mapstructure:"pacing_default_duration_days"`
	AheadThreshold      float64       `mapstructure:"pacing_ahead_threshold"`
	MaxPoints           int           `mapstructure:"pacing_max_points"`
	ClockGranularity    time.Duration `mapstructure:"pacing_clock_granularity"`
	ExcludedCategories  []string      `mapstructure:"pacing_excluded_categories"`
}

type PacingSnapshotSync struct {
	CronSchedule      string `mapstructure:"pacing_snapshot_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"pacing_snapshot_sync_max_concurrent_jobs"`
	RetentionDays     int    `mapstructure:"pacing_snapshot_sync_retention_days"`
	Enabled           bool   `mapstructure:"pacing_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pacing?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", true)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "")
	viper.SetDefault("AUTH_ADMIN_PASSWORD", "")

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_PACING_TTL", "5m")
	viper.SetDefault("REDIS_ENABLED", false)

	viper.SetDefault("PACING_DEFAULT_DURATION_DAYS", 90)
	viper.SetDefault("PACING_AHEAD_THRESHOLD", 1.1)
	viper.SetDefault("PACING_MAX_POINTS", 90)
	viper.SetDefault("PACING_CLOCK_GRANULARITY", "1m")
	viper.SetDefault("PACING_EXCLUDED_CATEGORIES", "")

	viper.SetDefault("PACING_SNAPSHOT_SYNC_CRON", "0 2 * * *")      // Todos os dias às 2h da manhã
	viper.SetDefault("PACING_SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 4) // 4 campanhas em paralelo
	viper.SetDefault("PACING_SNAPSHOT_SYNC_RETENTION_DAYS", 180)    // Snapshots guardados por 180 dias
	viper.SetDefault("PACING_SNAPSHOT_SYNC_ENABLED", false)         // Habilitar snapshots diários

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Pacing.ExcludedCategories = compact(config.Pacing.ExcludedCategories)
	config.Server.AllowedOrigins = compact(config.Server.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// compact remove espaços e itens vazios de listas vindas do ambiente
func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
