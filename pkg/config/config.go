package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Fuentes de datos soportadas para el inventario.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceMySQL    = "mysql"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Data    DataConfig
	DB      DBConfig
	MySQL   MySQLConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Insight InsightConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DataConfig indica de dónde se lee el inventario.
type DataConfig struct {
	Source      string // csv | postgres | mysql
	CSVPath     string
	CSVEncoding string // utf-8 | latin1
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// MySQLConfig configuración de MySQL (formato DSN del driver go-sql-driver).
type MySQLConfig struct {
	DSN string
}

// RedisConfig configuración de la caché de resultados. Addr vacío = sin caché.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

// JWTConfig configuración de JWT. Secret vacío = API sin autenticación.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// InsightConfig umbrales por defecto de las vistas de análisis.
type InsightConfig struct {
	LowStockQuantity  float64
	LowStockMargin    float64
	OverstockQuantity float64
	OverstockMargin   float64
	Velocity          float64
	MinMonthlySales   float64
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATA_SOURCE, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventory-insight"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8050),
		},
		Data: DataConfig{
			Source:      strings.ToLower(getString(v, "DATA_SOURCE", SourceCSV)),
			CSVPath:     getString(v, "DATA_CSV_PATH", "data/inventory.csv"),
			CSVEncoding: strings.ToLower(getString(v, "DATA_CSV_ENCODING", "utf-8")),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventory_insight"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		MySQL: MySQLConfig{
			DSN: getString(v, "MYSQL_DSN", "root:root@tcp(localhost:3306)/inventory_insight?parseTime=true"),
		},
		Redis: RedisConfig{
			Addr:       getString(v, "REDIS_ADDR", ""),
			Password:   getString(v, "REDIS_PASSWORD", ""),
			DB:         getInt(v, "REDIS_DB", 0),
			TTLSeconds: getInt(v, "CACHE_TTL_SECONDS", 300),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24),
			Issuer:     getString(v, "JWT_ISSUER", "inventory-insight"),
		},
		Insight: InsightConfig{
			LowStockQuantity:  getFloat(v, "INSIGHT_LOW_STOCK_QTY", 60),
			LowStockMargin:    getFloat(v, "INSIGHT_LOW_STOCK_MARGIN", 20),
			OverstockQuantity: getFloat(v, "INSIGHT_OVERSTOCK_QTY", 200),
			OverstockMargin:   getFloat(v, "INSIGHT_OVERSTOCK_MARGIN", 10),
			Velocity:          getFloat(v, "INSIGHT_VELOCITY", 1.2),
			MinMonthlySales:   getFloat(v, "INSIGHT_MIN_MONTHLY_SALES", 40),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Data.Source {
	case SourceCSV, SourcePostgres, SourceMySQL:
	default:
		return fmt.Errorf("config: DATA_SOURCE inválido %q (csv, postgres o mysql)", c.Data.Source)
	}
	switch c.Data.CSVEncoding {
	case "utf-8", "utf8", "latin1", "iso-8859-1":
	default:
		return fmt.Errorf("config: DATA_CSV_ENCODING inválido %q", c.Data.CSVEncoding)
	}
	if c.Redis.TTLSeconds < 0 {
		return fmt.Errorf("config: CACHE_TTL_SECONDS no puede ser negativo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		if s, ok := v.Get(key).(string); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return def
			}
			return f
		}
		return v.GetFloat64(key)
	}
	return def
}
