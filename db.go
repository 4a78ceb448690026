package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

func InitDB() (*sql.DB, error) {
	err := godotenv.Load() // Load .env file if present
	if err != nil {
		log.Println("No .env file found or error loading .env:", err)
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	name := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	if user == "" || pass == "" || host == "" || name == "" || port == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err = EnsureSchema(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Println("✅ Connected to database")
	return db, nil
}

const createAccountsTable = `
CREATE TABLE IF NOT EXISTS accounts (
    id INT AUTO_INCREMENT PRIMARY KEY,
    f_sno INT NOT NULL,
    f_username VARCHAR(100) NOT NULL UNIQUE,
    f_email VARCHAR(255) NOT NULL UNIQUE,
    f_pwd VARCHAR(255) NOT NULL
);
`

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    id INT AUTO_INCREMENT PRIMARY KEY,
    f_id INT NOT NULL,
    f_image VARCHAR(500) NOT NULL,
    f_name VARCHAR(255) NOT NULL,
    f_email VARCHAR(255) NOT NULL UNIQUE,
    f_mobile VARCHAR(50) NOT NULL,
    f_designation VARCHAR(50) NOT NULL,
    f_gender VARCHAR(20) NOT NULL,
    f_course VARCHAR(255) NOT NULL,
    f_createdate VARCHAR(10) NOT NULL
);
`

// EnsureSchema membuat tabel kalau belum ada, dijalankan sekali saat startup.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(createAccountsTable); err != nil {
		return err
	}
	if _, err := db.Exec(createEmployeesTable); err != nil {
		return err
	}
	return nil
}
