package manager

import (
	"errors"
	"path/filepath"
	"testing"
)

func equalScores(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecord_InsertsInOrder(t *testing.T) {
	sm := NewScoreManager(NewMemoryStore(50, 30, 10))

	if err := sm.Record(40); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := sm.TopScores()
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if want := []int{50, 40, 30, 10}; !equalScores(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestRecord_KeepsTopTen(t *testing.T) {
	sm := NewScoreManager(NewMemoryStore(100, 90, 80, 70, 60, 50, 40, 30, 20, 10))

	if err := sm.Record(5); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	got, _ := sm.TopScores()
	if len(got) != 10 || got[9] != 10 {
		t.Errorf("Low score should fall off, got %v", got)
	}

	if err := sm.Record(55); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	got, _ = sm.TopScores()
	want := []int{100, 90, 80, 70, 60, 55, 50, 40, 30, 20}
	if !equalScores(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestRecord_IgnoresNonPositive(t *testing.T) {
	store := NewMemoryStore(30)
	sm := NewScoreManager(store)

	for _, score := range []int{0, -10} {
		if err := sm.Record(score); err != nil {
			t.Errorf("Record(%d) failed: %v", score, err)
		}
	}
	if store.Saves != 0 {
		t.Errorf("Expected no writes, got %d", store.Saves)
	}
}

func TestRecord_PersistenceFailure(t *testing.T) {
	store := NewMemoryStore()
	store.Fail = errors.New("read-only")
	sm := NewScoreManager(store)

	if err := sm.Record(10); !errors.Is(err, ErrPersistence) {
		t.Errorf("Expected ErrPersistence, got %v", err)
	}
	if _, err := sm.TopScores(); !errors.Is(err, ErrPersistence) {
		t.Errorf("Expected ErrPersistence from TopScores, got %v", err)
	}
}

func TestTopScores_NormalizesStoredData(t *testing.T) {
	sm := NewScoreManager(NewMemoryStore(5, -3, 0, 25, 15))

	got, err := sm.TopScores()
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if want := []int{25, 15, 5}; !equalScores(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	high, err := sm.GetHighScore()
	if err != nil || high != 25 {
		t.Errorf("Expected high score 25, got %d (%v)", high, err)
	}
}

func TestScoreManager_FileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	sm := NewScoreManager(NewFileStore(path))

	for _, score := range []int{20, 60, 40} {
		if err := sm.Record(score); err != nil {
			t.Fatalf("Record(%d) failed: %v", score, err)
		}
	}

	got, err := NewScoreManager(NewFileStore(path)).TopScores()
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if want := []int{60, 40, 20}; !equalScores(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
