package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

const maxOpenConns = 20

// dsn builds the connection string. DATABASE_URL wins when set; the
// discrete DB_* variables are the fallback for local setups.
func dsn() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
}

func InitDB() (*sql.DB, error) {
	var err error
	DB, err = sql.Open("postgres", dsn())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	// the CAS-heavy mission paths hold connections briefly but often
	DB.SetMaxOpenConns(maxOpenConns)
	DB.SetMaxIdleConns(maxOpenConns / 2)
	DB.SetConnMaxLifetime(time.Hour)

	if err = DB.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	log.Printf("event=db_connected max_open=%d", maxOpenConns)
	return DB, nil
}

func CloseDB() error {
	if DB == nil {
		return nil
	}
	if err := DB.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}
	log.Println("event=db_closed")
	return nil
}
