package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/navya24shree/Campus-Event-Management-System/logger"
	"github.com/navya24shree/Campus-Event-Management-System/models"
	"github.com/navya24shree/Campus-Event-Management-System/utils"
)

// Open connects to MySQL and configures the pool. The handle is injected
// into the repositories; no package-level connection state.
func Open(dsn string) (*sql.DB, error) {
	sqldb, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := sqldb.Ping(); err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(20)
	sqldb.SetMaxIdleConns(10)
	return sqldb, nil
}

// CreateTables bootstraps the schema. The UNIQUE (event_id, email) key on
// registrations is what turns a concurrent double-register into a clean
// duplicate error instead of two rows.
func CreateTables(sqldb *sql.DB) error {
	stmts := []string{`
	CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		role ENUM('student', 'admin') DEFAULT 'student',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`, `
	CREATE TABLE IF NOT EXISTS events (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		club_name VARCHAR(255) NOT NULL,
		description TEXT,
		detailed_description TEXT,
		image_url VARCHAR(500),
		date DATE NOT NULL,
		time TIME NOT NULL,
		venue VARCHAR(255) NOT NULL,
		status ENUM('upcoming', 'completed') DEFAULT 'upcoming',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`, `
	CREATE TABLE IF NOT EXISTS registrations (
		id INT AUTO_INCREMENT PRIMARY KEY,
		event_id INT NOT NULL,
		student_name VARCHAR(255) NOT NULL,
		section VARCHAR(50) NOT NULL,
		sem VARCHAR(50) NOT NULL,
		email VARCHAR(255) NOT NULL,
		registered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_event_email (event_id, email),
		FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
	)`, `
	CREATE TABLE IF NOT EXISTS feedback (
		id INT AUTO_INCREMENT PRIMARY KEY,
		event_id INT NOT NULL,
		name VARCHAR(255) NOT NULL,
		section VARCHAR(50) NOT NULL,
		email VARCHAR(255) NOT NULL,
		rating INT NOT NULL CHECK (rating >= 1 AND rating <= 5),
		submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
	)`}

	for _, stmt := range stmts {
		if _, err := sqldb.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// EnsureAdmin is the idempotent provisioning step: create the admin account
// or reset its password and role if it already exists. Called explicitly
// from main, not hidden inside schema bootstrap.
func EnsureAdmin(sqldb *sql.DB, email, password string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	var id int64
	err = sqldb.QueryRow(`SELECT id FROM users WHERE email=?`, email).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = sqldb.Exec(`INSERT INTO users(name, email, password, role) VALUES (?,?,?,?)`,
			"Admin", email, hashed, models.RoleAdmin)
		if err == nil {
			logger.Log.Infow("admin user created", "email", email)
		}
	case err == nil:
		_, err = sqldb.Exec(`UPDATE users SET password=?, role=? WHERE email=?`,
			hashed, models.RoleAdmin, email)
		if err == nil {
			logger.Log.Infow("admin user password reset", "email", email)
		}
	}
	return err
}
