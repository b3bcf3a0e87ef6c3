package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	LinkedIn  LinkedIn  `mapstructure:",squash"`
	Sync      Sync      `mapstructure:",squash"`
	Snapshot  Snapshot  `mapstructure:",squash"`
	Scheduler Scheduler `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type LinkedIn struct {
	BaseURL        string `mapstructure:"linkedin_base_url"`
	Version        string `mapstructure:"linkedin_version"`
	IntrospectURL  string `mapstructure:"linkedin_introspect_url"`
	AccessToken    string `mapstructure:"linkedin_access_token"`
	PageSize       int    `mapstructure:"linkedin_page_size"`
	TimeoutSeconds int    `mapstructure:"linkedin_timeout_seconds"`
}

type Sync struct {
	FreshnessTTLMinutes int `mapstructure:"sync_freshness_ttl_minutes"`
	LookbackDays        int `mapstructure:"sync_lookback_days"`
	MetricsBatchSize    int `mapstructure:"sync_metrics_batch_size"`
	MetricsConcurrency  int `mapstructure:"sync_metrics_concurrency"`
	HeartbeatSeconds    int `mapstructure:"sync_heartbeat_seconds"`
	JobRetentionMinutes int `mapstructure:"sync_job_retention_minutes"`
}

type Snapshot struct {
	Dir string `mapstructure:"snapshot_dir"`
}

type Scheduler struct {
	CronSchedule string `mapstructure:"scheduler_cron"`
	Enabled      bool   `mapstructure:"scheduler_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/linkedin_ads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("LINKEDIN_BASE_URL", "https://api.linkedin.com/rest")
	viper.SetDefault("LINKEDIN_VERSION", "202602")
	viper.SetDefault("LINKEDIN_INTROSPECT_URL", "https://www.linkedin.com/oauth/v2/introspectToken")
	viper.SetDefault("LINKEDIN_ACCESS_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("LINKEDIN_PAGE_SIZE", 100)
	viper.SetDefault("LINKEDIN_TIMEOUT_SECONDS", 60)

	// Defaults da sincronização
	viper.SetDefault("SYNC_FRESHNESS_TTL_MINUTES", 240) // 4 horas antes de considerar os dados velhos
	viper.SetDefault("SYNC_LOOKBACK_DAYS", 90)          // 90 dias de métricas por sincronização
	viper.SetDefault("SYNC_METRICS_BATCH_SIZE", 20)     // 20 URNs por chamada de analytics
	viper.SetDefault("SYNC_METRICS_CONCURRENCY", 3)     // 3 lotes concorrentes
	viper.SetDefault("SYNC_HEARTBEAT_SECONDS", 15)      // heartbeat do stream de progresso
	viper.SetDefault("SYNC_JOB_RETENTION_MINUTES", 60)  // retenção de jobs finalizados no registro

	viper.SetDefault("SNAPSHOT_DIR", "data/snapshots")

	viper.SetDefault("SCHEDULER_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("SCHEDULER_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
