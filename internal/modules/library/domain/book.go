package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Book is one row of the export, immutable after loading. Row is the
// zero-based data row it came from and is the tie-breaker that keeps every
// view deterministic. A book with no countable sessions stays in the library
// (it may be currently reading or have unparseable dates) but never appears
// in finish-date views.
type Book struct {
	ID       string
	Title    string
	Author   string
	Row      int
	Sessions []ReadingSession
	Genres   map[string]int
}

func (b Book) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("book id is required")
	}
	return nil
}

// FinishedSessions returns the sessions that count toward finish-date views,
// in source order.
func (b Book) FinishedSessions() []ReadingSession {
	out := make([]ReadingSession, 0, len(b.Sessions))
	for _, s := range b.Sessions {
		if s.Counts() {
			out = append(out, s)
		}
	}
	return out
}

// Diagnostic is a SessionIssue attributed to the row and book it came from.
type Diagnostic struct {
	Row     int
	BookID  string
	Title   string
	Segment int
	Kind    IssueKind
	Detail  string
}

func (d Diagnostic) String() string {
	label := d.BookID
	if d.Title != "" {
		label = fmt.Sprintf("%s (%s)", d.Title, d.BookID)
	}
	if label == "" {
		label = fmt.Sprintf("row %d", d.Row)
	}
	return fmt.Sprintf("%s: segment %d: %s: %s", label, d.Segment, d.Kind, d.Detail)
}

// ParseGenres decodes the enricher's genres column: "name:votes" entries
// separated by ";". Entries that do not fit the shape are skipped.
func ParseGenres(raw string) map[string]int {
	raw = strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), `"`))
	if raw == "" {
		return nil
	}
	genres := map[string]int{}
	for _, entry := range strings.Split(raw, ";") {
		name, votes, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		count, err := strconv.Atoi(strings.TrimSpace(votes))
		if err != nil || name == "" || count < 0 {
			continue
		}
		genres[name] += count
	}
	if len(genres) == 0 {
		return nil
	}
	return genres
}
