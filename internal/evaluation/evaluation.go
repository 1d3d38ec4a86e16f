package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/sizing"
	"Ampere/internal/receipt"
	"Ampere/internal/repo"

	"github.com/google/uuid"
)

const (
	KindCircuit = "circuit"
	KindChain   = "chain"
)

// Service evaluates circuits and keeps a signed record of every result.
type Service struct {
	Repo     repo.Repository
	Receipts *receipt.Signer
}

// Record is what a caller gets back for a stored evaluation.
type Record struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Receipt   string          `json:"receipt"`
	CreatedAt time.Time       `json:"created_at"`
	Input     json.RawMessage `json:"input,omitempty"`
	Result    json.RawMessage `json:"result"`
}

func (s *Service) Circuit(ctx context.Context, project string, in sizing.Circuit) (*Record, error) {
	o, err := sizing.Evaluate(in)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, KindCircuit, project, in, o)
}

func (s *Service) Chain(ctx context.Context, project string, tiers []sizing.Circuit) (*Record, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers", cable.ErrInvalidInput)
	}
	return s.store(ctx, KindChain, project, sizing.ChainInput{Tiers: tiers}, sizing.EvaluateChain(tiers))
}

func (s *Service) store(ctx context.Context, kind, project string, in, out interface{}) (*Record, error) {
	input, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	result, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	e := &repo.Evaluation{
		ID:        uuid.New(),
		Kind:      kind,
		Project:   project,
		Input:     input,
		Result:    result,
		Digest:    receipt.Digest(result),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("store evaluation: %w", err)
	}
	return s.record(e, false)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	e, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.record(e, true)
}

func (s *Service) record(e *repo.Evaluation, withInput bool) (*Record, error) {
	token, err := s.Receipts.SignDigest(e.ID.String(), e.Digest)
	if err != nil {
		return nil, err
	}
	rec := &Record{ID: e.ID, Kind: e.Kind, Receipt: token, CreatedAt: e.CreatedAt, Result: e.Result}
	if withInput {
		rec.Input = e.Input
	}
	return rec, nil
}

// ErrForeignReceipt is returned for a receipt issued for another evaluation.
var ErrForeignReceipt = errors.New("receipt belongs to another evaluation")

// Verify checks a receipt against the stored result of evaluation id. A
// result whose bytes no longer hash to the digest recorded at save time
// fails even when the receipt itself is genuine.
func (s *Service) Verify(ctx context.Context, id uuid.UUID, token string) error {
	e, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if e.Digest != receipt.Digest(e.Result) {
		return receipt.ErrDigestMismatch
	}
	rc, err := s.Receipts.Verify(token, e.Result)
	if err != nil {
		return err
	}
	if rc.EvaluationID != id.String() {
		return ErrForeignReceipt
	}
	return nil
}
