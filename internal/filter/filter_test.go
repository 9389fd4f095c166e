package filter

import (
	"errors"
	"sync"
	"testing"

	"todohome/internal/models"
)

func TestGetDefaultsToInbox(t *testing.T) {
	t.Parallel()
	s := NewStore()
	if got := s.Get("U1"); got != models.FilterInbox {
		t.Errorf("Expected inbox, got %q", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	t.Parallel()
	s := NewStore()
	for _, mode := range []models.FilterMode{models.FilterOverdue, models.FilterUpcoming, models.FilterInbox} {
		if err := s.Set("U1", mode); err != nil {
			t.Fatalf("Set(%q) failed: %v", mode, err)
		}
		if got := s.Get("U1"); got != mode {
			t.Errorf("Expected %q, got %q", mode, got)
		}
	}
	if got := s.Get("U2"); got != models.FilterInbox {
		t.Errorf("Expected other users to stay on inbox, got %q", got)
	}
}

func TestSetRejectsUnknownMode(t *testing.T) {
	t.Parallel()
	s := NewStore()
	if err := s.Set("U1", models.FilterUpcoming); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	err := s.Set("U1", "bogus")
	if !errors.Is(err, models.ErrInvalidFilter) {
		t.Fatalf("Expected ErrInvalidFilter, got %v", err)
	}
	if got := s.Get("U1"); got != models.FilterUpcoming {
		t.Errorf("Expected previous mode to be kept, got %q", got)
	}
}

func TestConcurrentWriters(t *testing.T) {
	t.Parallel()
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Set("U1", models.FilterModes[i%len(models.FilterModes)])
			_ = s.Get("U1")
		}(i)
	}
	wg.Wait()

	if !s.Get("U1").Valid() {
		t.Errorf("Expected a valid mode after concurrent writes, got %q", s.Get("U1"))
	}
}
