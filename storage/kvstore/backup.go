package kvstore

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrBadSnapshot = errors.New("snapshot is malformed")

// Snapshot is a full copy of the key-space, suitable for later restore.
type Snapshot struct {
	ID        string                     `json:"id"`
	CreatedAt time.Time                  `json:"created_at"` // UTC
	Tables    map[string]json.RawMessage `json:"tables"`
}

// Backup snapshots every known key in the store.
func (s *Store) Backup() (Snapshot, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "listing keys")
	}

	snap := Snapshot{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Tables:    make(map[string]json.RawMessage, len(keys)),
	}
	for _, key := range keys {
		data, err := s.kv.Load(key)
		if err != nil {
			return Snapshot{}, errors.Wrapf(err, "reading key %q", key)
		}
		snap.Tables[key] = append(json.RawMessage(nil), data...)
	}
	return snap, nil
}

// Restore replaces the key-space with the snapshot and reloads every table.
// The whole payload is validated up front; a corrupt snapshot leaves the
// existing key-space and all in-memory tables untouched.
func (s *Store) Restore(snap Snapshot) error {
	if snap.Tables == nil {
		return ErrBadSnapshot
	}

	// validate before touching anything
	for _, ref := range s.tables {
		data, ok := snap.Tables[ref.key]
		if !ok {
			continue // older snapshot: table keeps its current value
		}
		if err := ref.validate(data); err != nil {
			return errors.Wrap(ErrBadSnapshot, err.Error())
		}
	}

	for key, data := range snap.Tables {
		if err := s.kv.Save(key, data); err != nil {
			return errors.Wrapf(err, "restoring key %q", key)
		}
	}
	for _, ref := range s.tables {
		if err := ref.tbl.Reload(); err != nil {
			return err
		}
	}
	return nil
}

// EncodeSnapshot / DecodeSnapshot are the wire format used by the backup
// endpoint and the admin CLI.

func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, errors.Wrap(ErrBadSnapshot, err.Error())
	}
	return snap, nil
}
