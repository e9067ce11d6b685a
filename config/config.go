package config

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret signs session tokens, read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "bengal_bistro_chat_secret_2024"))

// Load reads a .env file when present; env vars always win
func Load() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Port is the HTTP listen port
func Port() string {
	return getEnv("PORT", "8080")
}

// DBPath is where the profile database lives
func DBPath() string {
	return getEnv("DB_PATH", "bistro_chat.db")
}

// InitDB opens the sqlite database backing the profile store
func InitDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("✅ Database connected")
	return db
}
