package registry

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// ParseRecord is one audited parse attempt.
type ParseRecord struct {
	// ID uniquely identifies the record. Assigned on insert when empty.
	ID string

	// File is the path of the parsed configuration.
	File string

	// ReloadID groups records produced by one reload cycle.
	ReloadID string

	// OK reports whether the parse (and validation, if run) succeeded.
	OK bool

	// ErrorType is the stable error-type string for failed parses,
	// e.g. "unsupported-mediator". Empty on success.
	ErrorType string

	// ErrorMessage is the human-readable error for failed parses.
	ErrorMessage string

	// Sequences is the number of top-level inSequence blocks.
	Sequences int

	// Mediators is the total mediator count across the program.
	Mediators int

	// CreatedAt is when the record was inserted.
	CreatedAt time.Time
}

// StoreConfig configures the parse-audit store.
type StoreConfig struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// Store persists parse records to SQLite.
type Store struct {
	db        *sql.DB
	mu        sync.Mutex
	closeOnce sync.Once

	insertStmt *sql.Stmt
	byFileStmt *sql.Stmt
	latestStmt *sql.Stmt
	pruneStmt  *sql.Stmt
}

// NewStore creates a parse-audit store with default settings.
func NewStore(dbPath string) (*Store, error) {
	return NewStoreWithConfig(StoreConfig{DBPath: dbPath})
}

// NewStoreWithConfig creates a parse-audit store with custom configuration.
func NewStoreWithConfig(cfg StoreConfig) (*Store, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.DBPath, int(cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &Store{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := store.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}

	return store, nil
}

// initSchema creates the database schema if it doesn't exist.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS parse_records (
		id TEXT PRIMARY KEY,
		file TEXT NOT NULL,
		reload_id TEXT NOT NULL,
		ok INTEGER NOT NULL,
		error_type TEXT NOT NULL DEFAULT '',
		error_message TEXT NOT NULL DEFAULT '',
		sequences INTEGER NOT NULL DEFAULT 0,
		mediators INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_parse_records_file ON parse_records(file, created_at);
	CREATE INDEX IF NOT EXISTS idx_parse_records_created ON parse_records(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// prepareStatements prepares SQL statements for reuse.
func (s *Store) prepareStatements() error {
	var err error

	s.insertStmt, err = s.db.Prepare(`
		INSERT INTO parse_records (id, file, reload_id, ok, error_type, error_message, sequences, mediators, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}

	s.byFileStmt, err = s.db.Prepare(`
		SELECT id, file, reload_id, ok, error_type, error_message, sequences, mediators, created_at
		FROM parse_records
		WHERE file = ?
		ORDER BY created_at DESC
		LIMIT ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare list statement: %w", err)
	}

	s.latestStmt, err = s.db.Prepare(`
		SELECT id, file, reload_id, ok, error_type, error_message, sequences, mediators, created_at
		FROM parse_records
		WHERE file = ?
		ORDER BY created_at DESC, id
		LIMIT 1
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare latest statement: %w", err)
	}

	s.pruneStmt, err = s.db.Prepare(`
		DELETE FROM parse_records
		WHERE created_at < ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare prune statement: %w", err)
	}

	return nil
}

// Record inserts a parse record. An empty ID is assigned a fresh UUID and an
// unset CreatedAt is stamped with the current time; both are written back to
// the given record.
func (s *Store) Record(ctx context.Context, rec *ParseRecord) error {
	if rec == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if rec.File == "" {
		return fmt.Errorf("file cannot be empty")
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	ok := 0
	if rec.OK {
		ok = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.insertStmt.ExecContext(ctx,
		rec.ID,
		rec.File,
		rec.ReloadID,
		ok,
		rec.ErrorType,
		rec.ErrorMessage,
		rec.Sequences,
		rec.Mediators,
		rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to record parse: %w", err)
	}

	return nil
}

// ListByFile returns up to limit records for a file, newest first.
func (s *Store) ListByFile(ctx context.Context, file string, limit int) ([]*ParseRecord, error) {
	if file == "" {
		return nil, fmt.Errorf("file cannot be empty")
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.byFileStmt.QueryContext(ctx, file, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*ParseRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// Latest returns the most recent record for a file, or nil when the file has
// never been recorded.
func (s *Store) Latest(ctx context.Context, file string) (*ParseRecord, error) {
	if file == "" {
		return nil, fmt.Errorf("file cannot be empty")
	}

	row := s.latestStmt.QueryRowContext(ctx, file)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// Prune removes records older than the given time and returns how many were
// deleted.
func (s *Store) Prune(ctx context.Context, olderThan time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.pruneStmt.ExecContext(ctx, olderThan.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to prune records: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(deleted), nil
}

// Close releases the database. Close is idempotent.
func (s *Store) Close() error {
	var closeErr error

	s.closeOnce.Do(func() {
		for _, stmt := range []*sql.Stmt{s.insertStmt, s.byFileStmt, s.latestStmt, s.pruneStmt} {
			if stmt != nil {
				stmt.Close()
			}
		}
		if s.db != nil {
			_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
			closeErr = s.db.Close()
		}
	})

	return closeErr
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*ParseRecord, error) {
	var (
		rec       ParseRecord
		ok        int
		createdAt int64
	)

	err := sc.Scan(
		&rec.ID,
		&rec.File,
		&rec.ReloadID,
		&ok,
		&rec.ErrorType,
		&rec.ErrorMessage,
		&rec.Sequences,
		&rec.Mediators,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}

	rec.OK = ok != 0
	rec.CreatedAt = time.Unix(0, createdAt)

	return &rec, nil
}
