package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig
	Log           LogConfig
	Elasticsearch ElasticsearchConfig
	CrateDB       CrateDBConfig
	Connect       ConnectConfig
	Query         QueryConfig
	Chart         ChartConfig
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level      string
	Format     string // "console" or "json"
	File       string // empty keeps logs on stdout only
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type ElasticsearchConfig struct {
	Addresses []string
	Username  string
	Password  string
	LogIndex  string
}

type CrateDBConfig struct {
	DSN      string
	Table    string
	MaxConns int32
}

type ConnectConfig struct {
	MaxElapsed time.Duration
}

type QueryConfig struct {
	MaxRecords int
	Timeout    time.Duration
}

type ChartConfig struct {
	MaxPoints       int
	ArtifactPath    string
	RefreshSchedule string // cron spec with seconds; empty disables the job
	RefreshStore    string
	RefreshWindow   time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("ELASTICSEARCH_ADDRESSES", "http://localhost:9200")
	v.SetDefault("ELASTICSEARCH_USERNAME", "")
	v.SetDefault("ELASTICSEARCH_PASSWORD", "")
	v.SetDefault("ELASTICSEARCH_LOG_INDEX", "logs")
	v.SetDefault("CRATEDB_DSN", "postgres://crate@localhost:5432/doc?sslmode=disable")
	v.SetDefault("CRATEDB_TABLE", "logs")
	v.SetDefault("CRATEDB_MAX_CONNS", 10)
	v.SetDefault("CONNECT_MAX_ELAPSED", "90s")
	v.SetDefault("QUERY_MAX_RECORDS", 50000)
	v.SetDefault("STORE_QUERY_TIMEOUT", "30s")
	v.SetDefault("CHART_MAX_POINTS", 50)
	v.SetDefault("CHART_ARTIFACT_PATH", "./public/myjsonfile.json")
	v.SetDefault("CHART_REFRESH_SCHEDULE", "")
	v.SetDefault("CHART_REFRESH_STORE", "cratedb")
	v.SetDefault("CHART_REFRESH_WINDOW", "1h")
}

func NewConfig() (*Config, error) {
	v := viper.New()
	// Configure Viper to read .env file
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// Enable automatic environment variable loading
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	cfg := fromViper(v)
	log.Info().
		Str("port", cfg.Server.Port).
		Strs("elasticsearch", cfg.Elasticsearch.Addresses).
		Str("es_index", cfg.Elasticsearch.LogIndex).
		Str("crate_table", cfg.CrateDB.Table).
		Int("max_records", cfg.Query.MaxRecords).
		Dur("query_timeout", cfg.Query.Timeout).
		Str("chart_path", cfg.Chart.ArtifactPath).
		Msg("Config loaded")
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	var config Config
	config.Server.Port = v.GetString("SERVER_PORT")

	// --- Logging ---
	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Format = v.GetString("LOG_FORMAT")
	config.Log.File = v.GetString("LOG_FILE")
	config.Log.MaxSizeMB = v.GetInt("LOG_MAX_SIZE_MB")
	config.Log.MaxBackups = v.GetInt("LOG_MAX_BACKUPS")
	config.Log.MaxAgeDays = v.GetInt("LOG_MAX_AGE_DAYS")

	// --- Elasticsearch ---
	config.Elasticsearch.Addresses = splitList(v.GetString("ELASTICSEARCH_ADDRESSES"))
	config.Elasticsearch.Username = v.GetString("ELASTICSEARCH_USERNAME")
	config.Elasticsearch.Password = v.GetString("ELASTICSEARCH_PASSWORD")
	config.Elasticsearch.LogIndex = v.GetString("ELASTICSEARCH_LOG_INDEX")

	// --- CrateDB ---
	config.CrateDB.DSN = v.GetString("CRATEDB_DSN")
	config.CrateDB.Table = v.GetString("CRATEDB_TABLE")
	config.CrateDB.MaxConns = v.GetInt32("CRATEDB_MAX_CONNS")

	config.Connect.MaxElapsed = v.GetDuration("CONNECT_MAX_ELAPSED")

	// --- Query ---
	config.Query.MaxRecords = v.GetInt("QUERY_MAX_RECORDS")
	config.Query.Timeout = v.GetDuration("STORE_QUERY_TIMEOUT")

	// --- Chart ---
	config.Chart.MaxPoints = v.GetInt("CHART_MAX_POINTS")
	config.Chart.ArtifactPath = v.GetString("CHART_ARTIFACT_PATH")
	config.Chart.RefreshSchedule = v.GetString("CHART_REFRESH_SCHEDULE")
	config.Chart.RefreshStore = v.GetString("CHART_REFRESH_STORE")
	config.Chart.RefreshWindow = v.GetDuration("CHART_REFRESH_WINDOW")

	return &config
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
