package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dmorante/repaso/internal/router"
	"github.com/dmorante/repaso/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func lessonData(question string) map[string]any {
	return map[string]any{
		"questions": []any{
			map[string]any{
				"id":   "q1",
				"text": question,
				"options": []any{
					map[string]any{"value": "a", "text": "sí", "correct": true},
					map[string]any{"value": "b", "text": "no"},
				},
			},
		},
	}
}

func loadedHome(t *testing.T) (*HomeScreen, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	for i, name := range []string{"la_celula.json", "los_rios.json"} {
		rec := &store.LessonRecord{ID: int64(i + 1), Filename: name, Data: lessonData(name)}
		if _, err := s.Lessons().Save(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	h := New(s, nil)
	msg := h.loadCmd()()
	scr, _ := h.Update(msg)
	return scr.(*HomeScreen), s
}

func TestLoadPopulatesList(t *testing.T) {
	h, _ := loadedHome(t)

	if h.loading {
		t.Error("expected loading cleared")
	}
	if len(h.filtered) != 2 {
		t.Fatalf("filtered = %d, want 2", len(h.filtered))
	}
	if h.View(100, 30) == "" {
		t.Error("expected non-empty view")
	}
}

func TestSearchFilters(t *testing.T) {
	h, _ := loadedHome(t)

	for _, r := range "rios" {
		scr, _ := h.Update(keyPress(r))
		h = scr.(*HomeScreen)
	}

	if len(h.filtered) != 1 {
		t.Fatalf("filtered = %d, want 1", len(h.filtered))
	}
	if got := h.lessons[h.filtered[0]].Filename; got != "los_rios.json" {
		t.Errorf("match = %q, want los_rios.json", got)
	}
}

func TestSearchNoMatches(t *testing.T) {
	h, _ := loadedHome(t)

	for _, r := range "zzz" {
		scr, _ := h.Update(keyPress(r))
		h = scr.(*HomeScreen)
	}
	if len(h.filtered) != 0 {
		t.Errorf("filtered = %d, want 0", len(h.filtered))
	}
	if h.View(100, 30) == "" {
		t.Error("expected non-empty view for empty result")
	}
}

func TestEnterPushesQuizScreen(t *testing.T) {
	h, _ := loadedHome(t)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected play command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
}

func TestRandomPicksFromFiltered(t *testing.T) {
	h, _ := loadedHome(t)

	_, cmd := h.Update(ctrlKey('r'))
	if cmd == nil {
		t.Fatal("expected play command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
}

func TestDeleteWithConfirmation(t *testing.T) {
	h, s := loadedHome(t)

	scr, _ := h.Update(ctrlKey('d'))
	h = scr.(*HomeScreen)
	if !h.confirmDelete {
		t.Fatal("expected delete confirmation")
	}
	if !h.InterceptEscape() {
		t.Error("expected Esc interception during confirmation")
	}

	// N cancels.
	scr, _ = h.Update(keyPress('n'))
	h = scr.(*HomeScreen)
	if h.confirmDelete {
		t.Error("expected confirmation dismissed")
	}
	if len(h.filtered) != 2 {
		t.Errorf("filtered = %d, want 2 after cancel", len(h.filtered))
	}

	// S deletes the highlighted lesson.
	scr, _ = h.Update(ctrlKey('d'))
	h = scr.(*HomeScreen)
	scr, cmd := h.Update(keyPress('s'))
	h = scr.(*HomeScreen)
	if cmd == nil {
		t.Fatal("expected delete command")
	}
	scr, _ = h.Update(cmd())
	h = scr.(*HomeScreen)

	if len(h.filtered) != 1 {
		t.Errorf("filtered = %d, want 1 after delete", len(h.filtered))
	}
	all, err := s.Lessons().All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("stored lessons = %d, want 1", len(all))
	}
}
