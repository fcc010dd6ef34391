package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/yemeli/vitrine-golang/internal/models"
)

// SnapshotKey is the local store slot holding the persisted Dataset. A
// snapshot written by an admin edit takes priority over the default source on
// the next load, which is how edits stick without a real backend.
const SnapshotKey = "donnees_site"

// State is the load lifecycle of the catalog store.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Store owns the authoritative in-memory Dataset and its load/persist
// lifecycle. The Dataset is replaced atomically: readers either see the
// previous complete document or the new one, never a partial update.
type Store struct {
	local  *LocalStore
	source Source

	mu            sync.RWMutex
	state         State
	data          *models.Dataset
	lastErr       *LoadError
	lastPersisted []byte
}

// NewStore builds a store over a local snapshot slot and a default source.
func NewStore(local *LocalStore, source Source) *Store {
	return &Store{local: local, source: source, state: StateUnloaded}
}

// State reports the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Load resolves the Dataset: the persisted local snapshot wins over the
// default source. On success the in-memory document is replaced wholesale;
// on failure the store moves to Failed and the error is returned, never
// silently treated as an empty dataset.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	data, raw, err := s.resolve(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.data = nil
		s.lastErr = err
		return err
	}

	s.state = StateLoaded
	s.data = data
	s.lastErr = nil
	s.lastPersisted = raw
	return nil
}

func (s *Store) resolve(ctx context.Context) (*models.Dataset, []byte, *LoadError) {
	raw, ok, err := s.local.Get(SnapshotKey)
	src := "snapshot"
	if err != nil {
		return nil, nil, &LoadError{Source: src, Reason: "reading snapshot slot", Err: err}
	}
	if !ok {
		src = "network"
		if _, isFile := s.source.(FileSource); isFile {
			src = "file"
		}
		raw, err = s.source.Fetch(ctx)
		if err != nil {
			if loadErr, isLoad := err.(*LoadError); isLoad {
				return nil, nil, loadErr
			}
			return nil, nil, &LoadError{Source: src, Reason: "fetch failed", Err: err}
		}
	}

	data, loadErr := decodeDataset(src, raw)
	if loadErr != nil {
		return nil, nil, loadErr
	}
	return data, raw, nil
}

func decodeDataset(source string, raw []byte) (*models.Dataset, *LoadError) {
	var data models.Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &LoadError{Source: source, Reason: "malformed JSON payload", Err: err}
	}
	if err := validateDataset(&data); err != nil {
		return nil, &LoadError{Source: source, Reason: err.Error()}
	}
	return &data, nil
}

// validateDataset rejects documents missing required fields up front, instead
// of letting them fail later at arbitrary call sites.
func validateDataset(d *models.Dataset) error {
	if d.Company.Name == "" {
		return fmt.Errorf("missing required field entreprise.nom")
	}
	if d.WhatsApp.Number == "" {
		return fmt.Errorf("missing required field whatsapp.numero")
	}
	if len(d.Categories) == 0 {
		return fmt.Errorf("dataset has no categories")
	}
	seen := make(map[int64]bool, len(d.Products))
	for _, p := range d.Products {
		if seen[p.ID] {
			return fmt.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
		if p.Price < 0 {
			return fmt.Errorf("product %d has a negative price", p.ID)
		}
		if p.Discount < 0 || p.Discount > 100 {
			return fmt.Errorf("product %d has a discount outside [0,100]", p.ID)
		}
	}
	return nil
}

// Dataset returns a deep copy of the live document. Only a Loaded store
// answers; Unloaded and Loading return ErrNotLoaded, Failed returns the load
// failure itself.
func (s *Store) Dataset() (*models.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.state {
	case StateLoaded:
		return s.data.Clone(), nil
	case StateFailed:
		return nil, s.lastErr
	default:
		return nil, ErrNotLoaded
	}
}

// Persist writes the full Dataset to the snapshot slot and swaps it in as
// the live document. Persisting an identical dataset twice is a no-op: the
// slot is not rewritten.
func (s *Store) Persist(d *models.Dataset) error {
	if err := validateDataset(d); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !bytes.Equal(raw, s.lastPersisted) {
		if err := s.local.Set(SnapshotKey, raw); err != nil {
			return err
		}
		s.lastPersisted = raw
	}
	s.data = d.Clone()
	s.state = StateLoaded
	s.lastErr = nil
	return nil
}

// Export returns the live Dataset serialized for download/backup.
func (s *Store) Export() ([]byte, error) {
	data, err := s.Dataset()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}
