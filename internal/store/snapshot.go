package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// snapshotVersion is the current backup format. Version 1 files carry
// lessons only; version 2 adds progress records. Import accepts both.
const snapshotVersion = 2

// Snapshot is the JSON backup document.
type Snapshot struct {
	Version  int              `json:"version"`
	Lessons  []LessonExport   `json:"lessons,omitempty"`
	Progress []ProgressExport `json:"progress,omitempty"`
}

// LessonExport is the wire form of a saved lesson.
type LessonExport struct {
	ID       int64          `json:"id"`
	Filename string         `json:"filename"`
	Data     map[string]any `json:"data"`
	Source   string         `json:"source,omitempty"`
}

// ProgressExport is the wire form of a progress record.
type ProgressExport struct {
	ID   int64          `json:"id"`
	Data map[string]any `json:"data"`
}

// ImportStats reports what an import actually inserted.
type ImportStats struct {
	Lessons  int
	Progress int
}

// Total returns the number of inserted records.
func (s ImportStats) Total() int {
	return s.Lessons + s.Progress
}

// Export serializes the whole library as an indented JSON document.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	lessons, err := s.Lessons().All(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.Progress().All(ctx)
	if err != nil {
		return nil, err
	}

	snap := Snapshot{Version: snapshotVersion}
	for _, l := range lessons {
		snap.Lessons = append(snap.Lessons, LessonExport{
			ID:       l.ID,
			Filename: l.Filename,
			Data:     l.Data,
			Source:   l.Source,
		})
	}
	for _, p := range progress {
		snap.Progress = append(snap.Progress, ProgressExport{ID: p.ID, Data: p.Data})
	}

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}

// Import merges a backup document into the library. Lessons already
// present (same ID or same filename) and progress records with a known
// ID are skipped. The merge is transactional: a failed insert rolls
// everything back.
func (s *Store) Import(ctx context.Context, doc []byte) (ImportStats, error) {
	var snap Snapshot
	if err := json.Unmarshal(doc, &snap); err != nil {
		return ImportStats{}, fmt.Errorf("parse backup: %w", err)
	}
	if snap.Lessons == nil && snap.Progress == nil {
		return ImportStats{}, fmt.Errorf("parse backup: no lessons or progress in document")
	}

	existing, err := s.Lessons().All(ctx)
	if err != nil {
		return ImportStats{}, err
	}
	knownLessonIDs := make(map[int64]bool, len(existing))
	knownFilenames := make(map[string]bool, len(existing))
	for _, l := range existing {
		knownLessonIDs[l.ID] = true
		knownFilenames[l.Filename] = true
	}

	archived, err := s.Progress().All(ctx)
	if err != nil {
		return ImportStats{}, err
	}
	knownProgressIDs := make(map[int64]bool, len(archived))
	for _, p := range archived {
		knownProgressIDs[p.ID] = true
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return ImportStats{}, fmt.Errorf("begin import: %w", err)
	}

	var stats ImportStats
	for _, l := range snap.Lessons {
		if knownLessonIDs[l.ID] || knownFilenames[l.Filename] {
			continue
		}
		source := l.Source
		if source == "" {
			source = "db"
		}
		create := tx.LessonRecord.Create().
			SetFilename(l.Filename).
			SetData(l.Data).
			SetSource(source)
		if l.ID != 0 {
			create.SetID(l.ID)
		}
		if _, err := create.Save(ctx); err != nil {
			tx.Rollback()
			return ImportStats{}, fmt.Errorf("import lesson %q: %w", l.Filename, err)
		}
		// Guard against duplicates within the document itself.
		knownLessonIDs[l.ID] = true
		knownFilenames[l.Filename] = true
		stats.Lessons++
	}

	for _, p := range snap.Progress {
		if knownProgressIDs[p.ID] {
			continue
		}
		create := tx.ProgressRecord.Create().SetData(p.Data)
		if p.ID != 0 {
			create.SetID(p.ID)
		}
		if _, err := create.Save(ctx); err != nil {
			tx.Rollback()
			return ImportStats{}, fmt.Errorf("import progress %d: %w", p.ID, err)
		}
		knownProgressIDs[p.ID] = true
		stats.Progress++
	}

	if err := tx.Commit(); err != nil {
		return ImportStats{}, fmt.Errorf("commit import: %w", err)
	}
	return stats, nil
}

// ClearAll wipes lessons and progress in one transaction and returns
// the removed record count.
func (s *Store) ClearAll(ctx context.Context) (int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin clear: %w", err)
	}

	lessons, err := tx.LessonRecord.Delete().Exec(ctx)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("clear lessons: %w", err)
	}
	progress, err := tx.ProgressRecord.Delete().Exec(ctx)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("clear progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit clear: %w", err)
	}
	return lessons + progress, nil
}
