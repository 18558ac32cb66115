package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/adrg/frontmatter"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// Store implements storage.Storage using Markdown files with YAML front-matter,
// one file per entry named <date>-<id>.md.
type Store struct {
	baseDir string // e.g. ~/.moodctl/entries/
	mu      sync.Mutex
}

// New creates a new Markdown file storage backend.
func New(dataDir string) (*Store, error) {
	entriesDir := filepath.Join(dataDir, "entries")
	if err := os.MkdirAll(entriesDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating entries directory: %v", storage.ErrStorage, err)
	}
	return &Store{baseDir: entriesDir}, nil
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

func marshal(e mood.Entry) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "date: %s\n", e.DateString())
	fmt.Fprintf(&b, "mood: %s\n", strconv.Quote(string(e.Mood)))
	fmt.Fprintf(&b, "stress_level: %d\n", e.StressLevel)
	if e.Contact != "" {
		fmt.Fprintf(&b, "contact: %s\n", strconv.Quote(e.Contact))
	}
	b.WriteString("---\n\n")
	b.WriteString(e.Journal)
	return []byte(b.String())
}

type frontMatter struct {
	Date        string `yaml:"date"`
	Mood        string `yaml:"mood"`
	StressLevel int    `yaml:"stress_level"`
	Contact     string `yaml:"contact"`
}

func unmarshal(data []byte) (mood.Entry, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(strings.NewReader(string(data)), &fm)
	if err != nil {
		return mood.Entry{}, fmt.Errorf("%w: parsing front-matter: %v", storage.ErrStorage, err)
	}
	date, err := mood.ParseDate(fm.Date)
	if err != nil {
		return mood.Entry{}, fmt.Errorf("%w: parsing date: %v", storage.ErrStorage, err)
	}
	if err := mood.ValidateStress(fm.StressLevel); err != nil {
		return mood.Entry{}, fmt.Errorf("%w: %v", storage.ErrStorage, err)
	}
	return mood.Entry{
		Date:        date,
		Mood:        mood.Mood(fm.Mood),
		StressLevel: fm.StressLevel,
		// marshal separates the front-matter from the journal with one blank line.
		Journal:     strings.TrimPrefix(string(body), "\n"),
		Contact:     fm.Contact,
	}, nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
func (s *Store) atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.baseDir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	// Lock the temp file during write
	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: acquiring lock: %v", storage.ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}
	return nil
}

type storedEntry struct {
	name  string
	entry mood.Entry
}

// scan reads every entry file, sorted by file name ascending.
func (s *Store) scan() ([]storedEntry, error) {
	dirEntries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading entries directory: %v", storage.ErrStorage, err)
	}

	var out []storedEntry
	for _, d := range dirEntries {
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, d.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", storage.ErrStorage, d.Name(), err)
		}
		e, err := unmarshal(data)
		if err != nil {
			continue // skip malformed files
		}
		out = append(out, storedEntry{name: d.Name(), entry: e})
	}
	return out, nil
}

// Insert writes e to a new file and removes the oldest-dated files beyond
// the retention cap.
func (s *Store) Insert(e mood.Entry) error {
	if err := storage.Validate(e); err != nil {
		return err
	}
	e.Date = mood.Day(e.Date)

	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return fmt.Errorf("%w: generating file id: %v", storage.ErrStorage, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := e.DateString() + "-" + id + ".md"
	path := filepath.Join(s.baseDir, name)
	if err := s.atomicWrite(path, marshal(e)); err != nil {
		return err
	}

	stored, err := s.scan()
	if err != nil {
		os.Remove(path)
		return err
	}
	// scan is name-sorted, which for <date>-<id>.md is date order.
	for len(stored) > storage.MaxEntries {
		if err := s.remove(stored[0].name); err != nil {
			os.Remove(path)
			return fmt.Errorf("%w: evicting %s: %v", storage.ErrStorage, stored[0].name, err)
		}
		stored = stored[1:]
	}
	return nil
}

// removeFile is replaced in tests to simulate filesystem failures.
var removeFile = os.Remove

func (s *Store) remove(name string) error {
	return removeFile(filepath.Join(s.baseDir, name))
}

// Recent returns up to limit entries, most recent date first.
func (s *Store) Recent(limit int) ([]mood.Entry, error) {
	if limit <= 0 {
		return []mood.Entry{}, nil
	}

	s.mu.Lock()
	stored, err := s.scan()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stored, func(i, j int) bool {
		return stored[i].entry.Date.After(stored[j].entry.Date)
	})
	if len(stored) > limit {
		stored = stored[:limit]
	}

	entries := make([]mood.Entry, len(stored))
	for i, se := range stored {
		entries[i] = se.entry
	}
	return entries, nil
}

// ClearAll removes every entry file.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.scan()
	if err != nil {
		return err
	}
	for _, se := range stored {
		if err := os.Remove(filepath.Join(s.baseDir, se.name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("%w: removing %s: %v", storage.ErrStorage, se.name, err)
		}
	}
	return nil
}

// Count returns the number of entry files.
func (s *Store) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.scan()
	if err != nil {
		return 0, err
	}
	return len(stored), nil
}
