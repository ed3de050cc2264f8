package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB         *sql.DB
	JWTSecret  string
	Port       string
	AppEnv     string
	UploadDir  string
	CORSOrigin string
}

var AppConfig *Config

// Load reads .env (if present) and environment variables into AppConfig.
// Must be called before InitDB.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		JWTSecret:  getEnv("JWT_SECRET", ""),
		Port:       getEnv("PORT", "5000"),
		AppEnv:     getEnv("APP_ENV", "development"),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}

	if AppConfig.JWTSecret == "" {
		if AppConfig.AppEnv == "production" {
			log.Fatal("JWT_SECRET must be set in production")
		}
		AppConfig.JWTSecret = "summit-schools-dev-secret"
	}
}

func InitDB() {
	dsn := getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=summit sslmode=disable")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig.DB = db
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
