package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const createTable = `CREATE TABLE IF NOT EXISTS schedule (
	id VARCHAR(36) PRIMARY KEY,
	status VARCHAR(16) NOT NULL,
	report TEXT NOT NULL,
	data MEDIUMTEXT NOT NULL,
	created_at DATETIME NOT NULL
)`

// MySQL stores records in the schedule table.
type MySQL struct {
	db *sql.DB
}

// OpenMySQL connects to MySQL, verifies the connection and creates the
// schedule table when missing.
func OpenMySQL(ctx context.Context, user, pass, host, port, name string) (*MySQL, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schedule table: %w", err)
	}
	return NewMySQL(db), nil
}

func NewMySQL(db *sql.DB) *MySQL {
	return &MySQL{db: db}
}

func (m *MySQL) Close() error {
	return m.db.Close()
}

func (m *MySQL) Save(ctx context.Context, r *Record) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO schedule (id, status, report, data, created_at) VALUES (?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE status = VALUES(status), report = VALUES(report), data = VALUES(data)`,
		r.ID, string(r.Status), r.Report, r.Data, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("save schedule %s: %w", r.ID, err)
	}
	return nil
}

func (m *MySQL) Get(ctx context.Context, id string) (*Record, error) {
	var r Record
	var status string
	err := m.db.QueryRowContext(ctx,
		`SELECT id, status, report, data, created_at FROM schedule WHERE id = ?`, id).
		Scan(&r.ID, &status, &r.Report, &r.Data, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get schedule %s: %w", id, err)
	}
	r.Status = Status(status)
	return &r, nil
}

func (m *MySQL) List(ctx context.Context) ([]*Record, error) {
	rows, err := m.db.QueryContext(ctx,
		`SELECT id, status, report, created_at FROM schedule ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	out := []*Record{}
	for rows.Next() {
		var r Record
		var status string
		if err := rows.Scan(&r.ID, &status, &r.Report, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Status = Status(status)
		out = append(out, &r)
	}
	return out, rows.Err()
}

func (m *MySQL) Delete(ctx context.Context, id string) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM schedule WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete schedule %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
