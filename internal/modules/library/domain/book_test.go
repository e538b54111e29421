package domain_test

import (
	"testing"

	"readlog/internal/modules/library/domain"
)

func TestBookValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.Book{ID: "123"}).Validate(); err != nil {
		t.Fatalf("book with id should be valid: %v", err)
	}
	if err := (domain.Book{Title: "Untitled"}).Validate(); err == nil {
		t.Fatalf("book without id should fail")
	}
}

func TestFinishedSessionsSkipsInvalidAndUnfinished(t *testing.T) {
	t.Parallel()
	sessions, _ := domain.ParseSessions("2024-02-10,2024-02-01;2024-03-01,;,2024-04-01")
	book := domain.Book{ID: "1", Sessions: sessions}
	finished := book.FinishedSessions()
	if len(finished) != 1 {
		t.Fatalf("expected one countable session, got %d", len(finished))
	}
	if finished[0].Segment != 2 {
		t.Fatalf("unexpected session counted: %+v", finished[0])
	}
}

func TestParseGenres(t *testing.T) {
	t.Parallel()
	genres := domain.ParseGenres(`"Fantasy:1200;Romance:340;broken;NoVotes:"`)
	if len(genres) != 2 {
		t.Fatalf("expected two genres, got %v", genres)
	}
	if genres["Fantasy"] != 1200 || genres["Romance"] != 340 {
		t.Fatalf("unexpected votes: %v", genres)
	}
	if domain.ParseGenres("") != nil {
		t.Fatalf("empty input should yield nil")
	}
}
