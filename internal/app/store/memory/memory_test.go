package memory_test

import (
	"testing"

	"github.com/dalemusser/clubhub/internal/app/store/memory"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/app/store/repo/repotest"
)

func TestStore_Contract(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repo.Repository[repotest.Widget] {
		return memory.New(repotest.WidgetEntity)
	})
}

func TestStore_FirstIDIsOne(t *testing.T) {
	s := memory.New(repotest.WidgetEntity)
	w, err := s.Create(t.Context(), repotest.Widget{Name: "first"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if w.ID != 1 {
		t.Errorf("first id: got %d, want 1", w.ID)
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
}
