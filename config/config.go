package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	TgToken     string
	TgChatID    int64
	SamplesYAML string // optional override for the built-in grind samples
	SalesCSV    string // optional sales export; empty disables the sales surface
	DbDsn       string // optional ClickHouse archival sink
	Baseline    string
	Candidates  string // comma-separated candidate sample names
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance.
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file, using process environment")
		}

		config = &Config{
			HTTPAddr:    getEnv("HTTP_ADDR", ":8005"),
			TgToken:     os.Getenv("TG_TOKEN"),
			TgChatID:    parseInt64(os.Getenv("TG_CHAT_ID")),
			SamplesYAML: os.Getenv("SAMPLES_YAML"),
			SalesCSV:    os.Getenv("SALES_CSV"),
			DbDsn:       os.Getenv("DB_DSN"),
			Baseline:    getEnv("BASELINE_SAMPLE", "Ditting"),
			Candidates:  getEnv("CANDIDATE_SAMPLES", "Colombini Test 1,Colombini Test 2"),
		}
	})
	return config
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseInt64(v string) int64 {
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid int in env: %q", v)
		return 0
	}
	return n
}
