package out

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"readlog/internal/modules/library/domain"
	libraryout "readlog/internal/modules/library/port/out"
	apperrors "readlog/internal/platform/errors"
)

const (
	colBookID    = "Book Id"
	colTitle     = "Title"
	colAuthor    = "Author"
	colReadDates = "read_dates"
	colGenres    = "genres"
)

// CSVLibraryStore reads the enriched Goodreads export. Loading is
// best-effort: a bad row yields diagnostics, never a failed load.
type CSVLibraryStore struct {
	csvPath string
}

func NewCSVLibraryStore(csvPath string) libraryout.LibraryStore {
	return &CSVLibraryStore{csvPath: csvPath}
}

func (s *CSVLibraryStore) Load(_ context.Context) ([]domain.Book, []domain.Diagnostic, error) {
	file, err := os.Open(s.csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrNoLibrary, s.csvPath)
		}
		return nil, nil, fmt.Errorf("open export: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read export: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("export %s has no header row", s.csvPath)
	}

	headers := rows[0]
	idCol := indexOf(headers, colBookID)
	titleCol := indexOf(headers, colTitle)
	authorCol := indexOf(headers, colAuthor)
	datesCol := indexOf(headers, colReadDates)
	genresCol := indexOf(headers, colGenres)
	if missing := missingColumns(idCol, titleCol, authorCol, datesCol); len(missing) > 0 {
		return nil, nil, fmt.Errorf("export %s is missing columns %s", s.csvPath, strings.Join(missing, ", "))
	}

	var books []domain.Book
	var diagnostics []domain.Diagnostic
	for row, record := range rows[1:] {
		id := strings.TrimSpace(safeGet(record, idCol))
		title := strings.TrimSpace(safeGet(record, titleCol))
		if id == "" {
			diagnostics = append(diagnostics, domain.Diagnostic{
				Row:    row,
				Title:  title,
				Kind:   domain.IssueIdentity,
				Detail: "row has no book id, cannot correlate covers",
			})
			continue
		}

		sessions, issues := domain.ParseSessions(safeGet(record, datesCol))
		for _, issue := range issues {
			diagnostics = append(diagnostics, domain.Diagnostic{
				Row:     row,
				BookID:  id,
				Title:   title,
				Segment: issue.Segment,
				Kind:    issue.Kind,
				Detail:  issue.Detail,
			})
		}
		books = append(books, domain.Book{
			ID:       id,
			Title:    title,
			Author:   strings.TrimSpace(safeGet(record, authorCol)),
			Row:      row,
			Sessions: sessions,
			Genres:   domain.ParseGenres(safeGet(record, genresCol)),
		})
	}
	return books, diagnostics, nil
}

func indexOf(headers []string, name string) int {
	for i, header := range headers {
		if strings.EqualFold(strings.TrimSpace(header), name) {
			return i
		}
	}
	return -1
}

func missingColumns(id, title, author, dates int) []string {
	var missing []string
	if id == -1 {
		missing = append(missing, colBookID)
	}
	if title == -1 {
		missing = append(missing, colTitle)
	}
	if author == -1 {
		missing = append(missing, colAuthor)
	}
	if dates == -1 {
		missing = append(missing, colReadDates)
	}
	return missing
}

func safeGet(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}
	return record[col]
}
