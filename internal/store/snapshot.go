package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// stateKey is the fixed namespace key the full snapshot lives under.
const stateKey = "fintrack.state"

// Snapshot is a SQLite-backed key-value slot holding one serialized
// copy of the application state.
type Snapshot struct {
	db *sql.DB
}

// OpenSnapshot opens or creates the snapshot database at the given path.
func OpenSnapshot(dbPath string) (*Snapshot, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Snapshot{db: db}, nil
}

// Save serializes the state and writes it under the namespace key,
// replacing any previous snapshot.
func (sn *Snapshot) Save(st State) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	_, err = sn.db.Exec(`INSERT INTO app_state (key, payload, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		stateKey, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Load reads the stored snapshot. ok is false when no snapshot has
// been written yet.
func (sn *Snapshot) Load() (st State, ok bool, err error) {
	var payload []byte
	err = sn.db.QueryRow("SELECT payload FROM app_state WHERE key = ?", stateKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("reading snapshot: %w", err)
	}

	if err := json.Unmarshal(payload, &st); err != nil {
		return State{}, false, fmt.Errorf("decoding snapshot: %w", err)
	}
	return st, true, nil
}

// Close closes the snapshot database.
func (sn *Snapshot) Close() error {
	return sn.db.Close()
}
