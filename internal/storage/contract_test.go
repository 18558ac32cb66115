package storage_test

import (
	"errors"
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/storage/markdown"
	"github.com/chris-regnier/moodctl/internal/storage/memory"
	"github.com/chris-regnier/moodctl/internal/storage/sqlite"
)

type storageFactory func(t *testing.T) storage.Storage

func markdownFactory(t *testing.T) storage.Storage {
	t.Helper()
	s, err := markdown.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating markdown storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func libsqlFactory(t *testing.T) storage.Storage {
	t.Helper()
	s, err := sqlite.New(t.TempDir(), sqlite.DriverLibSQL)
	if err != nil {
		t.Fatalf("creating libsql storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func pureSQLiteFactory(t *testing.T) storage.Storage {
	t.Helper()
	s, err := sqlite.New(t.TempDir(), sqlite.DriverPureGo)
	if err != nil {
		t.Fatalf("creating sqlite storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sqliteMemoryFactory(t *testing.T) storage.Storage {
	t.Helper()
	s, err := sqlite.OpenMemory()
	if err != nil {
		t.Fatalf("opening in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func memoryFactory(t *testing.T) storage.Storage {
	t.Helper()
	return memory.New()
}

func day(n int) time.Time {
	return time.Date(2026, 1, n, 0, 0, 0, 0, time.Local)
}

func makeEntry(n int, m mood.Mood, stress int) mood.Entry {
	return mood.Entry{
		Date:        day(n),
		Mood:        m,
		StressLevel: stress,
		Journal:     "day " + day(n).Format(mood.DateLayout),
	}
}

func mustInsert(t *testing.T, s storage.Storage, e mood.Entry) {
	t.Helper()
	if err := s.Insert(e); err != nil {
		t.Fatalf("Insert %s: %v", e.DateString(), err)
	}
}

func mustCount(t *testing.T, s storage.Storage) int {
	t.Helper()
	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	return n
}

func dates(entries []mood.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.DateString()
	}
	return out
}

func equalStrings(a, b []string) bool {
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

func runContractTests(t *testing.T, name string, factory storageFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Insert and Recent", func(t *testing.T) {
			s := factory(t)
			e := mood.Entry{
				Date:        day(3),
				Mood:        mood.Calm,
				StressLevel: 4,
				Journal:     "Walked by the river.\n\nFelt **fine**.",
				Contact:     "me@example.com",
			}
			mustInsert(t, s, e)

			got, err := s.Recent(5)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(got))
			}
			g := got[0]
			if g.DateString() != "2026-01-03" || g.Mood != mood.Calm || g.StressLevel != 4 {
				t.Errorf("got %+v", g)
			}
			if g.Journal != e.Journal {
				t.Errorf("journal = %q, want %q", g.Journal, e.Journal)
			}
			if g.Contact != e.Contact {
				t.Errorf("contact = %q, want %q", g.Contact, e.Contact)
			}
		})

		t.Run("Journal whitespace is kept", func(t *testing.T) {
			s := factory(t)
			e := makeEntry(4, mood.Sad, 6)
			e.Journal = "\n    indented code\n\ntrailing  \n\n"
			mustInsert(t, s, e)

			got, err := s.Recent(1)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(got))
			}
			if got[0].Journal != e.Journal {
				t.Errorf("journal = %q, want %q", got[0].Journal, e.Journal)
			}
		})

		t.Run("Insert drops time of day", func(t *testing.T) {
			s := factory(t)
			e := makeEntry(7, mood.Happy, 1)
			e.Date = e.Date.Add(15*time.Hour + 30*time.Minute)
			mustInsert(t, s, e)

			got, err := s.Recent(1)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			if got[0].DateString() != "2026-01-07" {
				t.Errorf("date = %s", got[0].DateString())
			}
		})

		t.Run("Insert missing mood", func(t *testing.T) {
			s := factory(t)
			mustInsert(t, s, makeEntry(1, mood.Happy, 2))

			err := s.Insert(mood.Entry{Date: day(2), StressLevel: 3})
			if !errors.Is(err, storage.ErrValidation) {
				t.Errorf("expected ErrValidation, got: %v", err)
			}
			if !errors.Is(err, mood.ErrMissingMood) {
				t.Errorf("expected ErrMissingMood, got: %v", err)
			}
			if n := mustCount(t, s); n != 1 {
				t.Errorf("count = %d, want 1", n)
			}
		})

		t.Run("Insert stress out of range", func(t *testing.T) {
			s := factory(t)
			err := s.Insert(makeEntry(1, mood.Sad, 11))
			if !errors.Is(err, mood.ErrStressOutOfRange) {
				t.Errorf("expected ErrStressOutOfRange, got: %v", err)
			}
			if n := mustCount(t, s); n != 0 {
				t.Errorf("count = %d, want 0", n)
			}
		})

		t.Run("Recent empty", func(t *testing.T) {
			s := factory(t)
			got, err := s.Recent(5)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Errorf("expected empty non-nil slice, got %v", got)
			}
		})

		t.Run("Recent order and limit", func(t *testing.T) {
			s := factory(t)
			for _, n := range []int{4, 1, 3, 2} {
				mustInsert(t, s, makeEntry(n, mood.Happy, n))
			}

			got, err := s.Recent(3)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			want := []string{"2026-01-04", "2026-01-03", "2026-01-02"}
			if !equalStrings(dates(got), want) {
				t.Errorf("dates = %v, want %v", dates(got), want)
			}

			all, err := s.Recent(10)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			if len(all) != 4 {
				t.Errorf("expected all 4 entries, got %d", len(all))
			}
		})

		t.Run("Recent zero limit", func(t *testing.T) {
			s := factory(t)
			mustInsert(t, s, makeEntry(1, mood.Happy, 1))
			got, err := s.Recent(0)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("expected no entries, got %d", len(got))
			}
		})

		t.Run("Cap holds after every insert", func(t *testing.T) {
			s := factory(t)
			order := []int{9, 3, 12, 1, 7, 7, 15, 2, 20, 11, 4, 18}
			for _, n := range order {
				mustInsert(t, s, makeEntry(n, mood.Stressed, n%11))
				if c := mustCount(t, s); c > storage.MaxEntries {
					t.Fatalf("count = %d after inserting day %d", c, n)
				}
			}
			got, err := s.Recent(storage.MaxEntries)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			want := []string{"2026-01-20", "2026-01-18", "2026-01-15", "2026-01-12", "2026-01-11"}
			if !equalStrings(dates(got), want) {
				t.Errorf("dates = %v, want %v", dates(got), want)
			}
		})

		t.Run("Sixth insert evicts oldest date", func(t *testing.T) {
			s := factory(t)
			moods := []mood.Mood{mood.Happy, mood.Sad, mood.Happy, mood.Calm, mood.Excited}
			stress := []int{3, 7, 2, 5, 9}
			for i := range moods {
				mustInsert(t, s, makeEntry(i+1, moods[i], stress[i]))
			}
			mustInsert(t, s, makeEntry(6, mood.Angry, 8))

			if n := mustCount(t, s); n != 5 {
				t.Fatalf("count = %d, want 5", n)
			}
			got, err := s.Recent(5)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			want := []string{"2026-01-06", "2026-01-05", "2026-01-04", "2026-01-03", "2026-01-02"}
			if !equalStrings(dates(got), want) {
				t.Errorf("dates = %v, want %v", dates(got), want)
			}
		})

		t.Run("Back-dated insert evicts itself", func(t *testing.T) {
			s := factory(t)
			for n := 2; n <= 6; n++ {
				mustInsert(t, s, makeEntry(n, mood.Calm, 1))
			}
			mustInsert(t, s, makeEntry(1, mood.Angry, 9))

			got, err := s.Recent(10)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			want := []string{"2026-01-06", "2026-01-05", "2026-01-04", "2026-01-03", "2026-01-02"}
			if !equalStrings(dates(got), want) {
				t.Errorf("dates = %v, want %v", dates(got), want)
			}
			for _, e := range got {
				if e.Mood == mood.Angry {
					t.Error("back-dated entry should have been evicted")
				}
			}
		})

		t.Run("Tied oldest dates evict one row", func(t *testing.T) {
			s := factory(t)
			for _, n := range []int{1, 1, 2, 3, 4} {
				mustInsert(t, s, makeEntry(n, mood.Sad, 5))
			}
			mustInsert(t, s, makeEntry(5, mood.Happy, 2))

			got, err := s.Recent(10)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			want := []string{"2026-01-05", "2026-01-04", "2026-01-03", "2026-01-02", "2026-01-01"}
			if !equalStrings(dates(got), want) {
				t.Errorf("dates = %v, want %v", dates(got), want)
			}
		})

		t.Run("ClearAll idempotent", func(t *testing.T) {
			s := factory(t)
			for n := 1; n <= 3; n++ {
				mustInsert(t, s, makeEntry(n, mood.Happy, n))
			}
			for i := 0; i < 2; i++ {
				if err := s.ClearAll(); err != nil {
					t.Fatalf("ClearAll #%d: %v", i+1, err)
				}
				if n := mustCount(t, s); n != 0 {
					t.Errorf("count after ClearAll #%d = %d, want 0", i+1, n)
				}
			}
		})

		t.Run("Insert after ClearAll", func(t *testing.T) {
			s := factory(t)
			mustInsert(t, s, makeEntry(1, mood.Happy, 1))
			if err := s.ClearAll(); err != nil {
				t.Fatalf("ClearAll: %v", err)
			}
			mustInsert(t, s, makeEntry(2, mood.Sad, 2))
			if n := mustCount(t, s); n != 1 {
				t.Errorf("count = %d, want 1", n)
			}
		})
	})
}

func TestContract(t *testing.T) {
	runContractTests(t, "markdown", markdownFactory)
	runContractTests(t, "libsql", libsqlFactory)
	runContractTests(t, "sqlite", pureSQLiteFactory)
	runContractTests(t, "sqlite-memory", sqliteMemoryFactory)
	runContractTests(t, "memory", memoryFactory)
}
