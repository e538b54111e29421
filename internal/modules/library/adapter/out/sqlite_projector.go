package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"readlog/internal/modules/library/domain"

	_ "modernc.org/sqlite"
)

type SQLiteLibraryProjector struct {
	dbPath  string
	once    sync.Once
	db      *sql.DB
	openErr error
}

func NewSQLiteLibraryProjector(dbPath string) *SQLiteLibraryProjector {
	return &SQLiteLibraryProjector{dbPath: dbPath}
}

// open creates the database directory, the database and the schema on the
// first projection call. Commands that never project leave no files behind.
func (s *SQLiteLibraryProjector) open(ctx context.Context) (*sql.DB, error) {
	s.once.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0o755); err != nil {
			s.openErr = fmt.Errorf("create db dir: %w", err)
			return
		}
		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			s.openErr = fmt.Errorf("open sqlite: %w", err)
			return
		}
		if err := ensureSchema(ctx, db); err != nil {
			_ = db.Close()
			s.openErr = err
			return
		}
		s.db = db
	})
	return s.db, s.openErr
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS books (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  author TEXT,
  source_row INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sessions (
  book_id TEXT NOT NULL,
  segment INTEGER NOT NULL,
  start_date TEXT,
  finish_date TEXT,
  invalid INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (book_id, segment)
);
CREATE TABLE IF NOT EXISTS genres (
  book_id TEXT NOT NULL,
  genre TEXT NOT NULL,
  votes INTEGER NOT NULL,
  PRIMARY KEY (book_id, genre)
);
`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create library tables: %w", err)
	}
	return nil
}

func (s *SQLiteLibraryProjector) Reset(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	for _, table := range []string{"books", "sessions", "genres"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}

func (s *SQLiteLibraryProjector) UpsertBook(ctx context.Context, book domain.Book) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	const bookStmt = `
INSERT INTO books (id, title, author, source_row)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  author=excluded.author,
  source_row=excluded.source_row;
`
	if _, err := db.ExecContext(ctx, bookStmt, book.ID, book.Title, book.Author, book.Row); err != nil {
		return fmt.Errorf("upsert book: %w", err)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM sessions WHERE book_id = ?`, book.ID); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	const sessionStmt = `
INSERT INTO sessions (book_id, segment, start_date, finish_date, invalid)
VALUES (?, ?, ?, ?, ?);
`
	for _, session := range book.Sessions {
		invalid := 0
		if session.Invalid {
			invalid = 1
		}
		if _, err := db.ExecContext(ctx, sessionStmt, book.ID, session.Segment, dateOrNull(session.Start), dateOrNull(session.Finish), invalid); err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM genres WHERE book_id = ?`, book.ID); err != nil {
		return fmt.Errorf("clear genres: %w", err)
	}
	for genre, votes := range book.Genres {
		if _, err := db.ExecContext(ctx, `INSERT INTO genres (book_id, genre, votes) VALUES (?, ?, ?)`, book.ID, genre, votes); err != nil {
			return fmt.Errorf("insert genre: %w", err)
		}
	}
	return nil
}

func dateOrNull(date time.Time) any {
	if date.IsZero() {
		return nil
	}
	return date.Format(domain.DateFormat)
}
