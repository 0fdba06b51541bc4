package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"menucloud-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Config holds all process-wide settings, read once at startup.
type Config struct {
	Port          string
	DatabasePath  string
	JWTSecret     []byte
	JWTTTL        time.Duration
	PublicBaseURL string
	AssetHostURL  string
}

var cfg *Config

// Load reads .env (if present) and the environment into the process config.
func Load() *Config {
	if cfg != nil {
		return cfg
	}
	// .env is optional; deployments may set the environment directly
	_ = godotenv.Load()

	ttlHours := 24
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlHours = n
		}
	}

	cfg = &Config{
		Port:          getEnv("PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "menucloud.db"),
		JWTSecret:     []byte(getEnv("JWT_SECRET", "menucloud_super_secret_2024")),
		JWTTTL:        time.Duration(ttlHours) * time.Hour,
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		AssetHostURL:  getEnv("ASSET_HOST_URL", ""),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	OpenDB(Load().DatabasePath)
}

// OpenDB connects gorm to the given sqlite path and migrates the schema.
// Tests pass ":memory:".
func OpenDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Admin{},
		&models.Menu{},
		&models.MenuItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
