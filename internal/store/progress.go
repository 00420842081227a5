package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dmorante/repaso/ent"
	"github.com/dmorante/repaso/ent/progressrecord"
)

// ProgressRecord is one archived quiz outcome. Data is an opaque JSON
// object so old backups survive schema drift in the summary shape.
type ProgressRecord struct {
	ID        int64
	Data      map[string]any
	CreatedAt time.Time
}

// ProgressRepo manages archived quiz outcomes.
type ProgressRepo interface {
	// Append stores a new progress record. A zero ID is assigned from
	// the current time.
	Append(ctx context.Context, rec *ProgressRecord) (*ProgressRecord, error)

	// All returns every progress record, oldest first.
	All(ctx context.Context) ([]*ProgressRecord, error)

	// Clear removes every progress record and returns the count.
	Clear(ctx context.Context) (int, error)
}

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Append(ctx context.Context, rec *ProgressRecord) (*ProgressRecord, error) {
	create := r.client.ProgressRecord.Create().SetData(rec.Data)
	if rec.ID != 0 {
		create.SetID(rec.ID)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append progress: %w", err)
	}
	return entProgressToRecord(saved), nil
}

func (r *progressRepo) All(ctx context.Context) ([]*ProgressRecord, error) {
	rows, err := r.client.ProgressRecord.Query().
		Order(ent.Asc(progressrecord.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	out := make([]*ProgressRecord, len(rows))
	for i, row := range rows {
		out[i] = entProgressToRecord(row)
	}
	return out, nil
}

func (r *progressRepo) Clear(ctx context.Context) (int, error) {
	n, err := r.client.ProgressRecord.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear progress: %w", err)
	}
	return n, nil
}

func entProgressToRecord(row *ent.ProgressRecord) *ProgressRecord {
	return &ProgressRecord{
		ID:        row.ID,
		Data:      row.Data,
		CreatedAt: row.CreatedAt,
	}
}
