package runs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/expconf"
	experrors "github.com/randalmurphal/expconf/errors"
)

// Storage errors.
var (
	// ErrRunNotFound indicates no run with the given ID exists.
	ErrRunNotFound = errors.New("run not found")

	// ErrRunAlreadyExists indicates a run directory already exists.
	ErrRunAlreadyExists = errors.New("run already exists")
)

const (
	recordFile   = "record.yaml"
	resolvedFile = "resolved.yaml"
)

// Record describes one recorded composition.
type Record struct {
	// ID is the generated run identifier.
	ID string `yaml:"id"`

	// Experiment is the experiment name the run composed.
	Experiment string `yaml:"experiment"`

	// Overrides are the command-line overrides applied on top.
	Overrides []string `yaml:"overrides,omitempty"`

	// Fingerprint is the resolved configuration's content digest.
	Fingerprint string `yaml:"fingerprint"`

	// CreatedAt is when the run was recorded.
	CreatedAt time.Time `yaml:"created_at"`
}

// Store records composed runs as directories on disk.
type Store struct {
	baseDir string
	mu      sync.RWMutex
}

// NewStore creates a file-based run store rooted at baseDir.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &Store{baseDir: baseDir}, nil
}

// Save records a composed run and returns its record. Records are looked
// up by experiment name, so one is required.
func (s *Store) Save(experiment string, overrides []string, resolved *expconf.Resolved) (*Record, error) {
	if experiment == "" {
		return nil, experrors.ErrExperimentRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := nanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}

	runDir := filepath.Join(s.baseDir, id)
	if _, err := os.Stat(runDir); err == nil {
		return nil, ErrRunAlreadyExists
	}
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, err
	}

	fingerprint, err := resolved.Fingerprint()
	if err != nil {
		return nil, err
	}

	record := &Record{
		ID:          id,
		Experiment:  experiment,
		Overrides:   append([]string(nil), overrides...),
		Fingerprint: fingerprint,
		CreatedAt:   time.Now().UTC(),
	}

	snapshot, err := resolved.YAML()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(runDir, resolvedFile), snapshot, 0o644); err != nil {
		return nil, err
	}

	if err := s.writeRecord(runDir, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Get returns the record for a run ID.
func (s *Store) Get(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.readRecord(filepath.Join(s.baseDir, id))
}

// Resolved returns the recorded resolved-configuration snapshot.
func (s *Store) Resolved(id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.baseDir, id, resolvedFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}
	return data, nil
}

// List returns all records, newest first.
func (s *Store) List() ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		record, err := s.readRecord(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			// Skip directories without a readable record.
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// Latest returns the most recently recorded run.
func (s *Store) Latest() (*Record, error) {
	records, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrRunNotFound
	}
	return records[0], nil
}

func (s *Store) writeRecord(runDir string, record *Record) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(runDir, recordFile), data, 0o644)
}

func (s *Store) readRecord(runDir string) (*Record, error) {
	data, err := os.ReadFile(filepath.Join(runDir, recordFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}

	var record Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("read run record: %w", err)
	}
	return &record, nil
}
