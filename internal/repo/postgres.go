package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

const schema = `CREATE TABLE IF NOT EXISTS evaluations (
	id         UUID PRIMARY KEY,
	kind       TEXT NOT NULL,
	project    TEXT NOT NULL DEFAULT '',
	input      BYTEA NOT NULL,
	result     BYTEA NOT NULL,
	digest     TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

// Open connects to Postgres. Connection strings without an sslmode get
// sslmode=require.
func Open(connStr string) (*sql.DB, error) {
	if connStr == "" {
		connStr = "user=postgres dbname=postgres password=password sslmode=disable"
	}
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			connStr = connStr + "?sslmode=require"
		} else {
			connStr = connStr + " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *PostgresRepository) Save(ctx context.Context, e *Evaluation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO evaluations (id, kind, project, input, result, digest, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Kind, e.Project, []byte(e.Input), []byte(e.Result), e.Digest, e.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*Evaluation, error) {
	var e Evaluation
	var input, result []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT id, kind, project, input, result, digest, created_at FROM evaluations WHERE id = $1`, id,
	).Scan(&e.ID, &e.Kind, &e.Project, &input, &result, &e.Digest, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	e.Input, e.Result = input, result
	return &e, nil
}

func (r *PostgresRepository) List(ctx context.Context, project string, limit int) ([]Evaluation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, project, digest, created_at FROM evaluations
		 WHERE project = $1 ORDER BY created_at DESC LIMIT $2`, project, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var out []Evaluation
	for rows.Next() {
		var e Evaluation
		if err := rows.Scan(&e.ID, &e.Kind, &e.Project, &e.Digest, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
