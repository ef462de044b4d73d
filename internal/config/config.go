package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Demo      Demo      `mapstructure:",squash"`
	Simulator Simulator `mapstructure:",squash"`
	AlertScan AlertScan `mapstructure:",squash"`
	CallLog   CallLog   `mapstructure:",squash"`
	LinkedIn  LinkedIn  `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth guarda as credenciais do apresentador que controla o simulador
type Auth struct {
	PresenterUsername string        `mapstructure:"presenter_username"`
	PresenterPassword string        `mapstructure:"presenter_password"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

type Demo struct {
	Mode              string `mapstructure:"demo_mode"`
	UseGeneratedData  bool   `mapstructure:"demo_use_generated_data"`
	CampaignCount     int    `mapstructure:"demo_campaign_count"`
	AlertCount        int    `mapstructure:"demo_alert_count"`
	CreativeCampaigns int    `mapstructure:"demo_creative_campaigns"`
	Seed              int64  `mapstructure:"demo_seed"`
}

type Simulator struct {
	LatencyMS     int     `mapstructure:"simulator_latency_ms"`
	ErrorRate     float64 `mapstructure:"simulator_error_rate"`
	Logging       bool    `mapstructure:"simulator_logging"`
	OutageSeconds int     `mapstructure:"simulator_outage_seconds"`
}

type AlertScan struct {
	CronSchedule string `mapstructure:"alert_scan_cron"`
	Enabled      bool   `mapstructure:"alert_scan_enabled"`
}

type CallLog struct {
	DatabaseEnabled bool `mapstructure:"call_log_database_enabled"`
	MemoryLimit     int  `mapstructure:"call_log_memory_limit"`
}

type LinkedIn struct {
	BaseURL string `mapstructure:"linkedin_api_base_url"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaign_demo?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("PRESENTER_USERNAME", "presenter")
	viper.SetDefault("PRESENTER_PASSWORD", "") // hash bcrypt ou texto puro (ONLY LOCAL)
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("DEMO_MODE", "demo")
	viper.SetDefault("DEMO_USE_GENERATED_DATA", true)
	viper.SetDefault("DEMO_CAMPAIGN_COUNT", 4)
	viper.SetDefault("DEMO_ALERT_COUNT", 6)
	viper.SetDefault("DEMO_CREATIVE_CAMPAIGNS", 4)
	viper.SetDefault("DEMO_SEED", 0) // 0 = semente pelo relógio

	viper.SetDefault("SIMULATOR_LATENCY_MS", -1) // negativo = latência padrão de cada operação
	viper.SetDefault("SIMULATOR_ERROR_RATE", 0)
	viper.SetDefault("SIMULATOR_LOGGING", true)
	viper.SetDefault("SIMULATOR_OUTAGE_SECONDS", 30)

	viper.SetDefault("ALERT_SCAN_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("ALERT_SCAN_ENABLED", false)

	viper.SetDefault("CALL_LOG_DATABASE_ENABLED", false)
	viper.SetDefault("CALL_LOG_MEMORY_LIMIT", 200)

	viper.SetDefault("LINKEDIN_API_BASE_URL", "https://api.linkedin.com/rest")

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// SimulatorLatency retorna a latência fixa configurada. ok é false quando SIMULATOR_LATENCY_MS é negativo,
// e então cada operação usa a sua latência padrão; zero é uma latência fixa válida.
func (c *Config) SimulatorLatency() (time.Duration, bool) {
	if c.Simulator.LatencyMS < 0 {
		return 0, false
	}
	return time.Duration(c.Simulator.LatencyMS) * time.Millisecond, true
}

func (c *Config) OutageDuration() time.Duration {
	return time.Duration(c.Simulator.OutageSeconds) * time.Second
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
