package batch

import (
	"context"
	"fmt"
	"runtime"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/sizing"

	"golang.org/x/sync/errgroup"
)

type Input struct {
	Items []sizing.Circuit `json:"items"`
}

// Item is the result for one circuit. A failed circuit carries its error
// and never affects the others.
type Item struct {
	Index   int             `json:"index"`
	Name    string          `json:"name,omitempty"`
	Outcome *sizing.Outcome `json:"outcome,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type Result struct {
	Count     int    `json:"count"`
	Compliant int    `json:"compliant"`
	Failed    int    `json:"failed"`
	Items     []Item `json:"items"`
}

// Evaluate sizes every circuit concurrently, bounded by the CPU count.
func Evaluate(ctx context.Context, in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("%w: no items", cable.ErrInvalidInput)
	}
	items := make([]Item, len(in.Items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range in.Items {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items[i] = evaluate(i, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Count: len(items), Items: items}
	for _, it := range items {
		switch {
		case it.Error != "":
			res.Failed++
		case it.Outcome.Compliant:
			res.Compliant++
		}
	}
	return res, nil
}

func evaluate(i int, c sizing.Circuit) (it Item) {
	it = Item{Index: i, Name: c.Name}
	defer func() {
		if r := recover(); r != nil {
			it.Outcome = nil
			it.Error = fmt.Sprintf("internal error: %v", r)
		}
	}()
	o, err := sizing.Evaluate(c)
	if err != nil {
		it.Error = err.Error()
		return it
	}
	it.Outcome = o
	return it
}
