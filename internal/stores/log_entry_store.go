package stores

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"access-analytics/internal/models"

	_ "modernc.org/sqlite"
)

// Field names a log entry column that reads can group or count by.
type Field string

const (
	FieldIPAddress  Field = "ip_address"
	FieldMethod     Field = "method"
	FieldPath       Field = "path"
	FieldStatusCode Field = "status_code"
	FieldUserAgent  Field = "user_agent"
)

func (f Field) column() (string, error) {
	switch f {
	case FieldIPAddress, FieldMethod, FieldPath, FieldStatusCode, FieldUserAgent:
		return string(f), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, string(f))
}

// EntryFilter restricts a read to matching entries. Zero values mean "no constraint".
type EntryFilter struct {
	StatusCode  int // exact status code, e.g. 404
	StatusClass int // hundred-range, e.g. 4 for 4xx
}

func (f EntryFilter) where() (string, []any) {
	var clauses []string
	var args []any
	if f.StatusCode != 0 {
		clauses = append(clauses, "status_code = ?")
		args = append(args, f.StatusCode)
	}
	if f.StatusClass != 0 {
		clauses = append(clauses, "status_code / 100 = ?")
		args = append(args, f.StatusClass)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// GroupOptions shapes a GroupCount result.
type GroupOptions struct {
	CountAbove int64 // keep groups whose count is strictly greater than this
	Limit      int   // 0 means unlimited
}

// GroupCount is one group of a GroupCount read. FirstID is the smallest entry id in the group
// and orders groups with equal counts by first insertion.
type GroupCount struct {
	Key     string
	Count   int64
	FirstID int64
}

// LogEntryReader reads committed entries. All calls made through one reader observe the same snapshot.
type LogEntryReader interface {
	Count(ctx context.Context, filter EntryFilter) (int64, error)
	CountDistinct(ctx context.Context, field Field, filter EntryFilter) (int64, error)
	// GroupCount groups matching entries by field, ordered by count descending then first insertion.
	GroupCount(ctx context.Context, field Field, filter EntryFilter, opts GroupOptions) ([]GroupCount, error)
}

// BatchWriter buffers entries and commits them in fixed-size batches, one transaction per batch.
// A BatchWriter belongs to a single bulk-load and must not be shared between goroutines.
//
//go:generate mockgen -source=log_entry_store.go -destination=./mocks/log_entry_store_mock.go -package=mocks
type BatchWriter interface {
	// Append buffers entry and commits the buffer once it holds batchSize entries.
	Append(ctx context.Context, entry *models.LogEntry) error
	// Flush commits whatever is buffered. Entries never flushed are discarded with the writer.
	Flush(ctx context.Context) error
	Committed() int64
	BatchesCommitted() int64
	BatchSize() int
}

// LogEntryStore is the append-only log entry collection. Entries get their id in insertion
// order and become visible to readers only when their batch commits.
type LogEntryStore interface {
	NewBatchWriter(batchSize int) BatchWriter
	// View runs fn against a snapshot of committed entries taken when fn issues its first read.
	View(ctx context.Context, fn func(reader LogEntryReader) error) error
	Close() error
}

const schema = `
CREATE TABLE IF NOT EXISTS log_entries (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	ip_address  TEXT    NOT NULL,
	timestamp   TEXT    NOT NULL,
	method      TEXT    NOT NULL,
	path        TEXT    NOT NULL,
	status_code INTEGER NOT NULL,
	bytes_sent  INTEGER NOT NULL,
	referer     TEXT    NOT NULL,
	user_agent  TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_log_entries_ip_address ON log_entries (ip_address);
CREATE INDEX IF NOT EXISTS idx_log_entries_status_code ON log_entries (status_code);
CREATE INDEX IF NOT EXISTS idx_log_entries_path ON log_entries (path);
`

const insertEntry = `INSERT INTO log_entries
	(ip_address, timestamp, method, path, status_code, bytes_sent, referer, user_agent)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// WAL lets readers keep their snapshot while a batch commits; FULL sync makes a commit durable.
const pragmas = "_pragma=journal_mode(WAL)&_pragma=synchronous(FULL)&_pragma=busy_timeout(5000)"

type sqliteLogEntryStore struct {
	db *sql.DB
}

// NewSQLiteLogEntryStore opens (creating if needed) the sqlite database at path.
// Failures wrap ErrStoreUnavailable; existing data is never modified by opening.
func NewSQLiteLogEntryStore(path string) (LogEntryStore, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty database path", ErrStoreUnavailable)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	db, err := sql.Open("sqlite", dataSourceName(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", ErrStoreUnavailable, path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %q: %w", ErrStoreUnavailable, path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create schema: %w", ErrStoreUnavailable, err)
	}

	return &sqliteLogEntryStore{db: db}, nil
}

// dataSourceName builds a sqlite URI for path. The path is percent-encoded so '?', '#' and '%'
// in a file name are not read as URI syntax.
func dataSourceName(path string) string {
	return "file:" + (&url.URL{Path: path}).EscapedPath() + "?" + pragmas
}

func (s *sqliteLogEntryStore) NewBatchWriter(batchSize int) BatchWriter {
	if batchSize < 1 {
		batchSize = 1
	}
	return &batchWriter{
		db:        s.db,
		batchSize: batchSize,
		buffer:    make([]*models.LogEntry, 0, batchSize),
	}
}

func (s *sqliteLogEntryStore) View(ctx context.Context, fn func(reader LogEntryReader) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin read transaction: %w", err)
	}
	// Read-only: rolling back only releases the snapshot.
	defer func() { _ = tx.Rollback() }()

	return fn(&txReader{tx: tx})
}

func (s *sqliteLogEntryStore) Close() error {
	return s.db.Close()
}

type txReader struct {
	tx *sql.Tx
}

func (r *txReader) Count(ctx context.Context, filter EntryFilter) (int64, error) {
	where, args := filter.where()
	var count int64
	if err := r.tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM log_entries"+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

func (r *txReader) CountDistinct(ctx context.Context, field Field, filter EntryFilter) (int64, error) {
	column, err := field.column()
	if err != nil {
		return 0, err
	}
	where, args := filter.where()
	var count int64
	query := fmt.Sprintf("SELECT COUNT(DISTINCT %s) FROM log_entries%s", column, where)
	if err := r.tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count distinct %s: %w", column, err)
	}
	return count, nil
}

func (r *txReader) GroupCount(ctx context.Context, field Field, filter EntryFilter, opts GroupOptions) ([]GroupCount, error) {
	column, err := field.column()
	if err != nil {
		return nil, err
	}
	where, args := filter.where()

	limit := opts.Limit
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	query := fmt.Sprintf(`SELECT CAST(%[1]s AS TEXT), COUNT(*) AS cnt, MIN(id) AS first_id
		FROM log_entries%[2]s
		GROUP BY %[1]s
		HAVING COUNT(*) > ?
		ORDER BY cnt DESC, first_id ASC
		LIMIT ?`, column, where)
	args = append(args, opts.CountAbove, limit)

	rows, err := r.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to group by %s: %w", column, err)
	}
	defer rows.Close()

	groups := []GroupCount{}
	for rows.Next() {
		var group GroupCount
		if err := rows.Scan(&group.Key, &group.Count, &group.FirstID); err != nil {
			return nil, fmt.Errorf("failed to scan %s group: %w", column, err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s groups: %w", column, err)
	}
	return groups, nil
}
