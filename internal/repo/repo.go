package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("evaluation not found")

// Evaluation is a stored request together with the result it produced.
type Evaluation struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Project   string          `json:"project,omitempty"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	Digest    string          `json:"digest"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	Save(ctx context.Context, e *Evaluation) error
	Get(ctx context.Context, id uuid.UUID) (*Evaluation, error)
	List(ctx context.Context, project string, limit int) ([]Evaluation, error)
}
