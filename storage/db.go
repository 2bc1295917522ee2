package storage

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"backend/apperrors"
	"backend/models"
)

var db *sql.DB

// InitDB opens the raw database/sql connection used by the session helpers
// and the backup export reader. Missing connection settings are a
// configuration error, not a generic crash.
func InitDB() (*sql.DB, error) {
	godotenv.Load()

	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	if user == "" || dbname == "" || host == "" || port == "" {
		return nil, apperrors.Configuration("database connection settings missing (DB_USER, DB_NAME, DB_HOST, DB_PORT)")
	}

	connStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		user, password, dbname, host, port)

	var err error
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfiguration, err, "failed to open database connection")
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfiguration, err, "failed to ping database")
	}

	return db, nil
}

func GetDB() *sql.DB {
	return db
}

// SaveSession saves a new session for a user. If allowMultipleSessions is
// false, all existing sessions for the user are removed first.
func SaveSession(db *sql.DB, session *models.Session, allowMultipleSessions bool) error {
	if !allowMultipleSessions {
		if _, err := db.Exec(`DELETE FROM session WHERE user_id = $1`, session.UserID); err != nil {
			return fmt.Errorf("failed to delete all user sessions: %v", err)
		}
	}

	insertQuery := `INSERT INTO session (user_id, org_id, session_id, host_name, ip_address, timestp, expires_at, refresh_token, refresh_token_expires_at)
                    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := db.Exec(insertQuery, session.UserID, session.OrgID, session.SessionID, session.HostName, session.IPAddress,
		session.Timestamp, session.ExpiresAt, session.RefreshToken, session.RefreshTokenExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert new session: %v", err)
	}
	return nil
}

// GetUserBySessionID resolves the user attached to a non-expired session.
func GetUserBySessionID(db *sql.DB, sessionID string) (*models.User, error) {
	query := `
		SELECT u.id, u.org_id, u.email, u.first_name, u.last_name, u.role
		FROM session s
		JOIN users u ON u.id = s.user_id
		WHERE s.session_id = $1 AND s.expires_at > NOW()`

	var user models.User
	err := db.QueryRow(query, sessionID).Scan(&user.ID, &user.OrgID, &user.Email, &user.FirstName, &user.LastName, &user.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("session not found or expired")
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail loads a user with its password hash, for the login check.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT id, org_id, email, password, first_name, last_name, role FROM users WHERE email = $1`

	var user models.User
	err := db.QueryRow(query, email).Scan(&user.ID, &user.OrgID, &user.Email, &user.Password, &user.FirstName, &user.LastName, &user.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a user row. The password must already be hashed.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (id, org_id, email, password, first_name, last_name, role, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := db.Exec(query, user.ID, user.OrgID, user.Email, user.Password,
		user.FirstName, user.LastName, user.Role, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %v", err)
	}
	return nil
}

func DeleteSession(db *sql.DB, sessionID string) error {
	_, err := db.Exec(`DELETE FROM session WHERE session_id = $1`, sessionID)
	return err
}

// GetUserSessionCount returns the number of active sessions for a user.
func GetUserSessionCount(db *sql.DB, userID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM session WHERE user_id = $1 AND expires_at > NOW()`, userID).Scan(&count)
	return count, err
}
