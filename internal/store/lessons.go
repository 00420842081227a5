package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dmorante/repaso/ent"
	"github.com/dmorante/repaso/ent/lessonrecord"
)

// LessonRecord is a saved lesson document. Data holds the lesson JSON
// in its stored object form; the quiz layer decodes it on demand.
type LessonRecord struct {
	ID        int64
	Filename  string
	Data      map[string]any
	Source    string
	CreatedAt time.Time
}

// LessonRepo manages the saved lesson library.
type LessonRepo interface {
	// Save stores a lesson. A zero ID is assigned from the current
	// time; an empty Source defaults to "db".
	Save(ctx context.Context, rec *LessonRecord) (*LessonRecord, error)

	// All returns every saved lesson, oldest first.
	All(ctx context.Context) ([]*LessonRecord, error)

	// Get returns the lesson with the given ID, nil when absent.
	Get(ctx context.Context, id int64) (*LessonRecord, error)

	// Delete removes a lesson. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id int64) error

	// Clear removes every saved lesson and returns the count.
	Clear(ctx context.Context) (int, error)
}

type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) Save(ctx context.Context, rec *LessonRecord) (*LessonRecord, error) {
	create := r.client.LessonRecord.Create().
		SetFilename(rec.Filename).
		SetData(rec.Data)
	if rec.ID != 0 {
		create.SetID(rec.ID)
	}
	if rec.Source != "" {
		create.SetSource(rec.Source)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save lesson %q: %w", rec.Filename, err)
	}
	return entLessonToRecord(saved), nil
}

func (r *lessonRepo) All(ctx context.Context) ([]*LessonRecord, error) {
	rows, err := r.client.LessonRecord.Query().
		Order(ent.Asc(lessonrecord.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}

	out := make([]*LessonRecord, len(rows))
	for i, row := range rows {
		out[i] = entLessonToRecord(row)
	}
	return out, nil
}

func (r *lessonRepo) Get(ctx context.Context, id int64) (*LessonRecord, error) {
	row, err := r.client.LessonRecord.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lesson %d: %w", id, err)
	}
	return entLessonToRecord(row), nil
}

func (r *lessonRepo) Delete(ctx context.Context, id int64) error {
	err := r.client.LessonRecord.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete lesson %d: %w", id, err)
	}
	return nil
}

func (r *lessonRepo) Clear(ctx context.Context) (int, error) {
	n, err := r.client.LessonRecord.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear lessons: %w", err)
	}
	return n, nil
}

func entLessonToRecord(row *ent.LessonRecord) *LessonRecord {
	return &LessonRecord{
		ID:        row.ID,
		Filename:  row.Filename,
		Data:      row.Data,
		Source:    row.Source,
		CreatedAt: row.CreatedAt,
	}
}
