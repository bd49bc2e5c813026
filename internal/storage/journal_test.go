package storage

import (
	"testing"
)

func openJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournalEmpty(t *testing.T) {
	j := openJournal(t)

	stats, err := j.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats != (Stats{}) {
		t.Errorf("Stats() = %+v, expected zero value", stats)
	}
}

func TestJournalRecordAndTop(t *testing.T) {
	j := openJournal(t)

	runs := []struct {
		length  int
		ticks   uint64
		outcome string
	}{
		{5, 40, "collision"},
		{12, 130, "collision"},
		{3, 9, "collision"},
		{143, 5000, "full"},
	}
	for _, r := range runs {
		if _, err := j.Record(r.length, r.ticks, r.outcome); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	top, err := j.Top(3)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Length != 143 || top[1].Length != 12 || top[2].Length != 5 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
	if top[0].Ticks != 5000 || top[0].Outcome != "full" {
		t.Errorf("top run = %+v, expected 5000 ticks / full", top[0])
	}

	stats, err := j.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 4 || stats.Best != 143 || stats.Fulls != 1 {
		t.Errorf("Stats() = %+v, expected 4 runs, best 143, 1 full", stats)
	}
	if stats.AvgLength != 40.75 {
		t.Errorf("Stats().AvgLength = %v, expected 40.75", stats.AvgLength)
	}
}

func TestJournalsAreIndependent(t *testing.T) {
	a := openJournal(t)
	b := openJournal(t)

	//nolint:errcheck // test setup
	a.Record(7, 20, "collision")

	stats, err := b.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.Best != 0 {
		t.Errorf("second journal Stats() = %+v, expected no runs", stats)
	}
}
