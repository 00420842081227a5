package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"lesson_records", "progress_records"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func testLessonData(title string) map[string]any {
	return map[string]any{
		"context": []any{"párrafo de contexto"},
		"questions": []any{
			map[string]any{
				"id":   "q1",
				"text": title,
				"options": []any{
					map[string]any{"value": "a", "text": "sí", "correct": true, "explanation": "porque sí"},
				},
			},
		},
	}
}

func TestLessonSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	saved, err := repo.Save(ctx, &LessonRecord{
		Filename: "la_celula.json",
		Data:     testLessonData("¿Qué es la célula?"),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected an assigned ID")
	}
	if saved.Source != "db" {
		t.Errorf("source = %q, want default \"db\"", saved.Source)
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	got, err := repo.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Filename != "la_celula.json" {
		t.Fatalf("got = %+v", got)
	}
	if _, ok := got.Data["questions"]; !ok {
		t.Errorf("data lost questions: %v", got.Data)
	}
}

func TestLessonGetAbsent(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Lessons().Get(context.Background(), 12345)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("got = %+v, want nil for absent ID", got)
	}
}

func TestLessonAllOrderedByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	for i, name := range []string{"a.json", "b.json", "c.json"} {
		_, err := repo.Save(ctx, &LessonRecord{
			ID:       int64(100 + i),
			Filename: name,
			Data:     testLessonData(name),
		})
		if err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("lessons = %d, want 3", len(all))
	}
	for i, want := range []string{"a.json", "b.json", "c.json"} {
		if all[i].Filename != want {
			t.Errorf("lesson %d = %q, want %q", i, all[i].Filename, want)
		}
	}
}

func TestLessonDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	saved, err := repo.Save(ctx, &LessonRecord{Filename: "x.json", Data: testLessonData("x")})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := repo.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Error("lesson survived delete")
	}

	// Deleting an absent ID is a no-op.
	if err := repo.Delete(ctx, saved.ID); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestLessonClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, &LessonRecord{
			ID:       int64(200 + i),
			Filename: string(rune('a'+i)) + "_clear.json",
			Data:     testLessonData("x"),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	n, err := repo.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n != 3 {
		t.Errorf("cleared = %d, want 3", n)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("lessons left after clear: %d", len(all))
	}
}

func TestLessonDuplicateFilenameAllowedBySave(t *testing.T) {
	// Save itself does not dedupe; only Import does. Two manual saves
	// with the same filename both land.
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	if _, err := repo.Save(ctx, &LessonRecord{ID: 1, Filename: "dup.json", Data: testLessonData("a")}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := repo.Save(ctx, &LessonRecord{ID: 2, Filename: "dup.json", Data: testLessonData("b")}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("lessons = %d, want 2", len(all))
	}
}

func TestProgressAppendAndAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := repo.Append(ctx, &ProgressRecord{
			ID:   int64(300 + i),
			Data: map[string]any{"points": float64(10 * (i + 1)), "correct": float64(i)},
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("records = %d, want 2", len(all))
	}
	if all[0].ID != 300 || all[1].ID != 301 {
		t.Errorf("order = %d, %d", all[0].ID, all[1].ID)
	}
	if all[1].Data["points"] != float64(20) {
		t.Errorf("points = %v, want 20", all[1].Data["points"])
	}
}

func TestProgressClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	if _, err := repo.Append(ctx, &ProgressRecord{Data: map[string]any{"points": float64(50)}}); err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := repo.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n != 1 {
		t.Errorf("cleared = %d, want 1", n)
	}
}
