package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"

	defaultPort        = "8080"
	defaultGeminiModel = "gemini-2.5-flash"
	defaultSQLitePath  = "sttm.db"
)

type Config struct {
	Port         string
	StoreBackend string
	SQLitePath   string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	GCSBucket string

	GeminiKey   string
	GeminiModel string
	GCPProject  string
	GCPLocation string

	CORSOrigins string
	LogLevel    string
	SeedOnStart string
}

func LoadConfig() Config {
	return Config{
		Port:         os.Getenv("PORT"),
		StoreBackend: os.Getenv("STORE_BACKEND"),
		SQLitePath:   os.Getenv("SQLITE_PATH"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		GCSBucket: os.Getenv("GCS_BUCKET"),

		GeminiKey:   os.Getenv("GEMINI_KEY"),
		GeminiModel: os.Getenv("GEMINI_MODEL"),
		GCPProject:  os.Getenv("GCP_PROJECT"),
		GCPLocation: os.Getenv("GCP_LOCATION"),

		CORSOrigins: os.Getenv("CORS_ORIGINS"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		SeedOnStart: os.Getenv("SEED_ON_START"),
	}
}

// Backend returns the normalised store backend name. Unknown values are
// returned as-is so the caller can reject them.
func (c Config) Backend() string {
	b := strings.ToLower(strings.TrimSpace(c.StoreBackend))
	if b == "" {
		return BackendMemory
	}
	return b
}

func (c Config) ListenAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = defaultPort
	}
	return "0.0.0.0:" + port
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func (c Config) SQLiteFile() string {
	if p := strings.TrimSpace(c.SQLitePath); p != "" {
		return p
	}
	return defaultSQLitePath
}

// AllowedOrigins splits CORS_ORIGINS on commas; an empty value allows any origin.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// SeedMappings reports whether the sample mappings should be inserted into an
// empty store on start. Defaults to true.
func (c Config) SeedMappings() bool {
	v := strings.TrimSpace(c.SeedOnStart)
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}

func (c Config) Model() string {
	if m := strings.TrimSpace(c.GeminiModel); m != "" {
		return m
	}
	return defaultGeminiModel
}

func (c Config) AssistEnabled() bool {
	return strings.TrimSpace(c.GeminiKey) != "" || strings.TrimSpace(c.GCPProject) != ""
}
