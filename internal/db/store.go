package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const defaultDBName = "partnerline.db"

// Sentinel errors for the store contract.
var (
	ErrNotInitialized = errors.New("store not initialized")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrNotFound       = errors.New("not found")
)

// Collection names the record collections the store manages.
type Collection string

const (
	Departments Collection = "departments"
	Projects    Collection = "projects"
	// Collaborators holds fortune30 and internal partners; SME partners
	// live in their own collection, as in the original schema.
	Collaborators Collection = "collaborators"
	SMEPartners   Collection = "smePartners"
	SPIs          Collection = "spis"
	Objectives    Collection = "objectives"
	Initiatives   Collection = "initiatives"
	SitReps       Collection = "sitreps"
)

// Collections lists every collection in schema order.
var Collections = []Collection{
	Departments, Projects, Collaborators, SMEPartners,
	SPIs, Objectives, Initiatives, SitReps,
}

// collectionTables maps collection names to their SQL table names.
var collectionTables = map[Collection]string{
	Departments:   "departments",
	Projects:      "projects",
	Collaborators: "collaborators",
	SMEPartners:   "sme_partners",
	SPIs:          "spis",
	Objectives:    "objectives",
	Initiatives:   "initiatives",
	SitReps:       "sitreps",
}

// Mode selects the transaction mode.
type Mode int

const (
	ReadOnly Mode = iota
	ReadWrite
)

type storeState int

const (
	stateNotReady storeState = iota
	stateReady
)

type Config struct {
	Workspace string
}

func dbPath(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, ".partnerline", defaultDBName)
}

// EnsureWorkspace creates the workspace directory if missing.
func EnsureWorkspace(workspace string) (string, error) {
	path := filepath.Join(workspace, ".partnerline")
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// Path returns the db path for the workspace.
func Path(workspace string) string {
	return dbPath(workspace)
}

// Store is a versioned local record store: one id-keyed collection per
// entity kind, each record a JSON document. Lifecycle is explicit:
// Open -> Init (ready) -> Clear (not ready) -> Init (ready again).
type Store struct {
	conn *sql.DB

	mu    sync.Mutex
	state storeState

	// writeMu serializes read-write transactions per collection. Reads
	// and writes against different collections proceed independently.
	writeMu map[Collection]*sync.Mutex
}

// Open opens (creating if absent) the workspace database. The store is
// not ready for transactions until Init has run.
func Open(cfg Config) (*Store, error) {
	if _, err := EnsureWorkspace(cfg.Workspace); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", dbPath(cfg.Workspace))
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	writeMu := make(map[Collection]*sync.Mutex, len(Collections))
	for _, c := range Collections {
		writeMu[c] = &sync.Mutex{}
	}
	return &Store{conn: conn, state: stateNotReady, writeMu: writeMu}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	s.mu.Lock()
	s.state = stateNotReady
	s.mu.Unlock()
	return s.conn.Close()
}

// Init applies the versioned schema, creating any missing collection.
// Idempotent: calling it on an already-initialized store neither fails
// nor duplicates collections.
func (s *Store) Init(ctx context.Context) error {
	if err := applySchema(ctx, s.conn); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	s.mu.Lock()
	s.state = stateReady
	s.mu.Unlock()
	return nil
}

// Clear destroys every collection and the schema version. The store is
// not ready afterwards; Init must run before further operations.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.state = stateNotReady
	s.mu.Unlock()
	return dropSchema(ctx, s.conn)
}

// Ready reports whether Init has completed since Open or the last Clear.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateReady
}

// WithRawHandle hands the underlying connection to fn. It is the scoped
// capability for infrastructure (audit log, clearing) that needs to step
// outside the collection contract; entity access goes through
// RunTransaction.
func (s *Store) WithRawHandle(fn func(conn *sql.DB) error) error {
	if !s.Ready() {
		return ErrNotInitialized
	}
	return fn(s.conn)
}

// Tx is a handle on one collection inside a transaction.
type Tx struct {
	tx    *sql.Tx
	ctx   context.Context
	table string
}

// RunTransaction opens a transaction scoped to exactly one collection,
// runs op against its handle, and commits. It fails with
// ErrNotInitialized before Init, and propagates storage aborts verbatim.
// Read-write transactions on the same collection are serialized.
func (s *Store) RunTransaction(ctx context.Context, collection Collection, mode Mode, op func(tx *Tx) error) error {
	if !s.Ready() {
		return ErrNotInitialized
	}
	table, ok := collectionTables[collection]
	if !ok {
		return fmt.Errorf("unknown collection %q", collection)
	}
	if mode == ReadWrite {
		mu := s.writeMu[collection]
		mu.Lock()
		defer mu.Unlock()
	}
	tx, err := s.conn.BeginTx(ctx, &sql.TxOptions{ReadOnly: mode == ReadOnly})
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := op(&Tx{tx: tx, ctx: ctx, table: table}); err != nil {
		return err
	}
	return tx.Commit()
}

// Add inserts a record, failing with ErrDuplicateKey if the id exists.
func (t *Tx) Add(id string, record json.RawMessage) error {
	var exists int
	err := t.tx.QueryRowContext(t.ctx, `SELECT 1 FROM `+t.table+` WHERE id=?`, id).Scan(&exists)
	if err == nil {
		return fmt.Errorf("%s id %s: %w", t.table, id, ErrDuplicateKey)
	}
	if err != sql.ErrNoRows {
		return err
	}
	_, err = t.tx.ExecContext(t.ctx, `INSERT INTO `+t.table+`(id,record) VALUES (?,?)`, id, string(record))
	return err
}

// Get fetches a record; absence is reported as (nil, ErrNotFound).
func (t *Tx) Get(id string) (json.RawMessage, error) {
	var record string
	err := t.tx.QueryRowContext(t.ctx, `SELECT record FROM `+t.table+` WHERE id=?`, id).Scan(&record)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(record), nil
}

// GetAll returns every record in insertion order.
func (t *Tx) GetAll() ([]json.RawMessage, error) {
	rows, err := t.tx.QueryContext(t.ctx, `SELECT record FROM `+t.table+` ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []json.RawMessage
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, err
		}
		res = append(res, json.RawMessage(record))
	}
	return res, rows.Err()
}

// Put replaces a record, failing with ErrNotFound if the id is absent.
func (t *Tx) Put(id string, record json.RawMessage) error {
	res, err := t.tx.ExecContext(t.ctx, `UPDATE `+t.table+` SET record=? WHERE id=?`, string(record), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record, failing with ErrNotFound if the id is absent.
func (t *Tx) Delete(id string) error {
	res, err := t.tx.ExecContext(t.ctx, `DELETE FROM `+t.table+` WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of records in the collection.
func (t *Tx) Count() (int, error) {
	var n int
	err := t.tx.QueryRowContext(t.ctx, `SELECT count(*) FROM `+t.table).Scan(&n)
	return n, err
}
