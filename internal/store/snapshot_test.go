package store

import (
	"context"
	"encoding/json"
	"testing"
)

func TestExportShape(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Lessons().Save(ctx, &LessonRecord{ID: 1, Filename: "uno.json", Data: testLessonData("uno")}); err != nil {
		t.Fatalf("save lesson: %v", err)
	}
	if _, err := s.Progress().Append(ctx, &ProgressRecord{ID: 2, Data: map[string]any{"points": float64(30)}}); err != nil {
		t.Fatalf("append progress: %v", err)
	}

	out, err := s.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(out, &snap); err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if snap.Version != 2 {
		t.Errorf("version = %d, want 2", snap.Version)
	}
	if len(snap.Lessons) != 1 || snap.Lessons[0].Filename != "uno.json" {
		t.Errorf("lessons = %+v", snap.Lessons)
	}
	if len(snap.Progress) != 1 || snap.Progress[0].ID != 2 {
		t.Errorf("progress = %+v", snap.Progress)
	}
}

func TestImportMergesAndDedupes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Lesson 1 already exists; lesson 3 shares its filename with an
	// existing record under a different ID.
	if _, err := s.Lessons().Save(ctx, &LessonRecord{ID: 1, Filename: "uno.json", Data: testLessonData("uno")}); err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	if _, err := s.Lessons().Save(ctx, &LessonRecord{ID: 9, Filename: "tres.json", Data: testLessonData("tres")}); err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	if _, err := s.Progress().Append(ctx, &ProgressRecord{ID: 5, Data: map[string]any{"points": float64(10)}}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	doc := []byte(`{
		"version": 2,
		"lessons": [
			{"id": 1, "filename": "uno.json", "data": {"questions": []}},
			{"id": 2, "filename": "dos.json", "data": {"questions": []}},
			{"id": 3, "filename": "tres.json", "data": {"questions": []}}
		],
		"progress": [
			{"id": 5, "data": {"points": 10}},
			{"id": 6, "data": {"points": 40}}
		]
	}`)

	stats, err := s.Import(ctx, doc)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if stats.Lessons != 1 {
		t.Errorf("imported lessons = %d, want 1 (id and filename dupes skipped)", stats.Lessons)
	}
	if stats.Progress != 1 {
		t.Errorf("imported progress = %d, want 1", stats.Progress)
	}
	if stats.Total() != 2 {
		t.Errorf("total = %d, want 2", stats.Total())
	}

	lessons, err := s.Lessons().All(ctx)
	if err != nil {
		t.Fatalf("all lessons: %v", err)
	}
	if len(lessons) != 3 {
		t.Errorf("lessons = %d, want 3", len(lessons))
	}
}

func TestImportVersionOneLessonsOnly(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	doc := []byte(`{
		"version": 1,
		"lessons": [{"id": 7, "filename": "viejo.json", "data": {"questions": []}}]
	}`)

	stats, err := s.Import(ctx, doc)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if stats.Lessons != 1 || stats.Progress != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestImportRejectsInvalidDocuments(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "not json at all"},
		{"no arrays", `{"version": 2}`},
		{"wrong shape", `{"version": 2, "lessons": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Import(ctx, []byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestImportIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	doc := []byte(`{
		"version": 2,
		"lessons": [{"id": 11, "filename": "once.json", "data": {"questions": []}}],
		"progress": [{"id": 12, "data": {"points": 20}}]
	}`)

	first, err := s.Import(ctx, doc)
	if err != nil {
		t.Fatalf("first import: %v", err)
	}
	if first.Total() != 2 {
		t.Fatalf("first total = %d, want 2", first.Total())
	}

	second, err := s.Import(ctx, doc)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if second.Total() != 0 {
		t.Errorf("second total = %d, want 0", second.Total())
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)
	ctx := context.Background()

	if _, err := src.Lessons().Save(ctx, &LessonRecord{ID: 21, Filename: "ciclo.json", Data: testLessonData("ciclo")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := src.Progress().Append(ctx, &ProgressRecord{ID: 22, Data: map[string]any{"points": float64(70)}}); err != nil {
		t.Fatalf("append: %v", err)
	}

	out, err := src.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dst, err := Open("file:roundtrip?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open destination store: %v", err)
	}
	t.Cleanup(func() { dst.Close() })

	stats, err := dst.Import(ctx, out)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if stats.Total() != 2 {
		t.Errorf("total = %d, want 2", stats.Total())
	}

	lessons, err := dst.Lessons().All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(lessons) != 1 || lessons[0].ID != 21 || lessons[0].Filename != "ciclo.json" {
		t.Errorf("lessons = %+v", lessons)
	}
}

func TestClearAll(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Lessons().Save(ctx, &LessonRecord{ID: 31, Filename: "a31.json", Data: testLessonData("a")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := s.Progress().Append(ctx, &ProgressRecord{ID: 32, Data: map[string]any{"points": float64(0)}}); err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.ClearAll(ctx)
	if err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared = %d, want 2", n)
	}

	lessons, _ := s.Lessons().All(ctx)
	progress, _ := s.Progress().All(ctx)
	if len(lessons) != 0 || len(progress) != 0 {
		t.Errorf("left %d lessons, %d progress", len(lessons), len(progress))
	}
}
