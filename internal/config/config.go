package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	Geo    GeoConfig
	CRM    CRMConfig
	Email  EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds admin JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings for the embedding pages.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeoConfig holds region reference service settings (client-credential token
// exchange plus the two reference-data endpoints).
type GeoConfig struct {
	BaseURL            string `mapstructure:"base_url"`
	TokenURL           string `mapstructure:"token_url"`
	ClientID           string `mapstructure:"client_id"`
	ClientSecret       string `mapstructure:"client_secret"`
	DepartmentsPath    string `mapstructure:"departments_path"`
	MunicipalitiesPath string `mapstructure:"municipalities_path"`
	TimeoutSecs        int    `mapstructure:"timeout_secs"`
}

// CRMConfig holds remote CRM lead service settings.
type CRMConfig struct {
	Provider    string `mapstructure:"provider"`
	BaseURL     string `mapstructure:"base_url"`
	LeadPath    string `mapstructure:"lead_path"`
	APIKey      string `mapstructure:"api_key"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// EmailConfig holds quote email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// Load reads configuration from environment variables with the COTIZADOR_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COTIZADOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "cotizador")
	v.SetDefault("db.password", "cotizador_secret")
	v.SetDefault("db.name", "cotizador_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "cotizador")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5500,http://127.0.0.1:5500")

	// Geo defaults
	v.SetDefault("geo.base_url", "")
	v.SetDefault("geo.token_url", "/oauth/token")
	v.SetDefault("geo.client_id", "")
	v.SetDefault("geo.client_secret", "")
	v.SetDefault("geo.departments_path", "/v1/departments")
	v.SetDefault("geo.municipalities_path", "/v1/municipalities")
	v.SetDefault("geo.timeout_secs", 10)

	// CRM defaults
	v.SetDefault("crm.provider", "noop")
	v.SetDefault("crm.base_url", "")
	v.SetDefault("crm.lead_path", "/v1/leads")
	v.SetDefault("crm.api_key", "")
	v.SetDefault("crm.timeout_secs", 10)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "cotizaciones@example.com")
	v.SetDefault("email.from_name", "Cotizador")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "COTIZADOR_SERVER_PORT",
		"server.read_timeout":     "COTIZADOR_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "COTIZADOR_SERVER_WRITE_TIMEOUT",
		"server.environment":      "COTIZADOR_SERVER_ENVIRONMENT",
		"db.host":                 "COTIZADOR_DB_HOST",
		"db.port":                 "COTIZADOR_DB_PORT",
		"db.user":                 "COTIZADOR_DB_USER",
		"db.password":             "COTIZADOR_DB_PASSWORD",
		"db.name":                 "COTIZADOR_DB_NAME",
		"db.sslmode":              "COTIZADOR_DB_SSLMODE",
		"db.max_open":             "COTIZADOR_DB_MAX_OPEN",
		"db.max_idle":             "COTIZADOR_DB_MAX_IDLE",
		"jwt.secret":              "COTIZADOR_JWT_SECRET",
		"jwt.access_expiry":       "COTIZADOR_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":      "COTIZADOR_JWT_REFRESH_EXPIRY",
		"jwt.issuer":              "COTIZADOR_JWT_ISSUER",
		"log.level":               "COTIZADOR_LOG_LEVEL",
		"log.format":              "COTIZADOR_LOG_FORMAT",
		"cors.allowed_origins":    "COTIZADOR_CORS_ALLOWED_ORIGINS",
		"geo.base_url":            "COTIZADOR_GEO_BASE_URL",
		"geo.token_url":           "COTIZADOR_GEO_TOKEN_URL",
		"geo.client_id":           "COTIZADOR_GEO_CLIENT_ID",
		"geo.client_secret":       "COTIZADOR_GEO_CLIENT_SECRET",
		"geo.departments_path":    "COTIZADOR_GEO_DEPARTMENTS_PATH",
		"geo.municipalities_path": "COTIZADOR_GEO_MUNICIPALITIES_PATH",
		"geo.timeout_secs":        "COTIZADOR_GEO_TIMEOUT_SECS",
		"crm.provider":            "COTIZADOR_CRM_PROVIDER",
		"crm.base_url":            "COTIZADOR_CRM_BASE_URL",
		"crm.lead_path":           "COTIZADOR_CRM_LEAD_PATH",
		"crm.api_key":             "COTIZADOR_CRM_API_KEY",
		"crm.timeout_secs":        "COTIZADOR_CRM_TIMEOUT_SECS",
		"email.provider":          "COTIZADOR_EMAIL_PROVIDER",
		"email.region":            "COTIZADOR_EMAIL_REGION",
		"email.from_address":      "COTIZADOR_EMAIL_FROM_ADDRESS",
		"email.from_name":         "COTIZADOR_EMAIL_FROM_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if COTIZADOR_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("COTIZADOR_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Geo = GeoConfig{
		BaseURL:            v.GetString("geo.base_url"),
		TokenURL:           v.GetString("geo.token_url"),
		ClientID:           v.GetString("geo.client_id"),
		ClientSecret:       v.GetString("geo.client_secret"),
		DepartmentsPath:    v.GetString("geo.departments_path"),
		MunicipalitiesPath: v.GetString("geo.municipalities_path"),
		TimeoutSecs:        v.GetInt("geo.timeout_secs"),
	}

	cfg.CRM = CRMConfig{
		Provider:    v.GetString("crm.provider"),
		BaseURL:     v.GetString("crm.base_url"),
		LeadPath:    v.GetString("crm.lead_path"),
		APIKey:      v.GetString("crm.api_key"),
		TimeoutSecs: v.GetInt("crm.timeout_secs"),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	return cfg, nil
}
