package domain_test

import (
	"reflect"
	"testing"
	"time"

	"readlog/internal/modules/activity/domain"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func session(bookID string, row, segment int, finish string) domain.Session {
	return domain.Session{BookID: bookID, Row: row, Segment: segment, Finish: day(finish)}
}

func TestFilterYearByFinishDateOnly(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		{BookID: "1", Row: 0, Start: day("2024-12-20"), Finish: day("2025-01-02")},
		{BookID: "2", Row: 1, Start: day("2025-06-01")}, // no finish recorded
		session("3", 2, 0, "2024-11-01"),
	}
	got := domain.FilterYear(sessions, 2025)
	if len(got) != 1 || got[0].BookID != "1" {
		t.Fatalf("expected only the session finishing in 2025, got %+v", got)
	}
	// A session that started in 2025 but has no finish never matches.
	if len(domain.FilterYear(sessions, 2024)) != 1 {
		t.Fatalf("start dates must not decide year membership")
	}
}

func TestChronologicalTieBreakIsRowOrder(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		session("b", 5, 0, "2025-03-10"),
		session("a", 2, 0, "2025-03-10"),
		session("c", 9, 0, "2025-01-01"),
	}
	for run := 0; run < 3; run++ {
		got := domain.Chronological(sessions)
		ids := []string{got[0].BookID, got[1].BookID, got[2].BookID}
		if !reflect.DeepEqual(ids, []string{"c", "a", "b"}) {
			t.Fatalf("run %d: unexpected order %v", run, ids)
		}
	}
}

func TestRereadBothSessionsCount(t *testing.T) {
	t.Parallel()
	sessions := domain.NumberRereads([]domain.Session{
		session("1", 0, 0, "2025-02-01"),
		session("1", 0, 1, "2025-08-15"),
		session("2", 1, 0, "2025-02-01"),
	})
	year := domain.FilterYear(sessions, 2025)
	if len(domain.Chronological(year)) != 3 {
		t.Fatalf("each reread session is its own event")
	}

	counts := domain.DayCounts(year)
	if counts[day("2025-02-01")] != 2 {
		t.Fatalf("two different books finishing the same day should count twice, got %d", counts[day("2025-02-01")])
	}
	if counts[day("2025-08-15")] != 1 {
		t.Fatalf("unexpected count for reread day")
	}

	buckets := domain.MonthBuckets(year)
	if len(buckets[1]) != 2 || len(buckets[7]) != 1 {
		t.Fatalf("unexpected month buckets: feb=%d aug=%d", len(buckets[1]), len(buckets[7]))
	}
}

func TestNumberRereadsCountsWholeLibrary(t *testing.T) {
	t.Parallel()
	sessions := domain.NumberRereads([]domain.Session{
		session("1", 0, 0, "2024-12-28"),
		session("1", 0, 1, "2025-01-10"),
	})
	if sessions[0].ReadNumber != 1 || sessions[1].ReadNumber != 2 {
		t.Fatalf("unexpected read numbers: %+v", sessions)
	}
	if sessions[0].TotalReads != 2 || sessions[1].TotalReads != 2 {
		t.Fatalf("unexpected total reads: %+v", sessions)
	}
	// Re-read numbering survives year filtering.
	year := domain.FilterYear(sessions, 2025)
	if len(year) != 1 || year[0].ReadNumber != 2 {
		t.Fatalf("january reread should keep read number 2: %+v", year)
	}
}

func TestEmptyYearProducesWellFormedStructures(t *testing.T) {
	t.Parallel()
	year := domain.FilterYear([]domain.Session{session("1", 0, 0, "2023-05-01")}, 2025)
	if len(year) != 0 {
		t.Fatalf("expected no qualifying sessions")
	}
	if got := domain.Chronological(year); len(got) != 0 {
		t.Fatalf("chronological list should be empty, got %v", got)
	}
	if counts := domain.DayCounts(year); len(counts) != 0 {
		t.Fatalf("day counts should be empty, got %v", counts)
	}
	buckets := domain.MonthBuckets(year)
	for month, bucket := range buckets {
		if len(bucket) != 0 {
			t.Fatalf("month %d should be empty", month+1)
		}
	}
	summary := domain.Summarize(2025, year)
	if summary.TotalSessions != 0 || summary.ActiveDays != 0 || summary.MaxPerDay != 0 || len(summary.BusiestDays) != 0 {
		t.Fatalf("empty year summary should be all zeros: %+v", summary)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		session("1", 0, 0, "2025-02-01"),
		session("1", 0, 1, "2025-02-01"), // same book finished twice on one day
		session("2", 1, 0, "2025-02-01"),
		session("3", 2, 0, "2025-03-05"),
	}
	summary := domain.Summarize(2025, sessions)
	if summary.TotalSessions != 4 || summary.UniqueBooks != 3 || summary.RereadBooks != 1 {
		t.Fatalf("unexpected session/book counts: %+v", summary)
	}
	if summary.ActiveDays != 2 || summary.MaxPerDay != 3 {
		t.Fatalf("unexpected day stats: %+v", summary)
	}
	if summary.AveragePerActive != 2 {
		t.Fatalf("unexpected average: %v", summary.AveragePerActive)
	}
	if len(summary.BusiestDays) != 2 || !summary.BusiestDays[0].Date.Equal(day("2025-02-01")) {
		t.Fatalf("unexpected busiest days: %+v", summary.BusiestDays)
	}
}

func TestGenreDistribution(t *testing.T) {
	t.Parallel()
	got := domain.GenreDistribution([]domain.BookGenres{
		{BookID: "1", Genres: map[string]int{"Fantasy": 100, "Romance": 40}},
		{BookID: "2", Genres: map[string]int{"Fantasy": 60}},
		{BookID: "3", Genres: map[string]int{"Horror": 160}},
	})
	want := []domain.GenreCount{
		{Genre: "Fantasy", Votes: 160, Books: 2},
		{Genre: "Horror", Votes: 160, Books: 1},
		{Genre: "Romance", Votes: 40, Books: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected distribution: %+v", got)
	}
}

func TestWeekGridLeapYear(t *testing.T) {
	t.Parallel()
	weeks, monthWeeks := domain.WeekGrid(2024, map[time.Time]int{
		day("2024-02-29"): 2,
		day("2024-12-31"): 1,
	})

	laidOut := 0
	for _, week := range weeks {
		for _, count := range week {
			if count >= 0 {
				laidOut++
			}
		}
	}
	if laidOut != 366 {
		t.Fatalf("2024 must lay out 366 days, got %d", laidOut)
	}

	// 2024 starts on a Monday, so Feb 29 lands in week 8 on Thursday and
	// Dec 31 in week 52 on Tuesday.
	if weeks[8][3] != 2 {
		t.Fatalf("Feb 29 misplaced: week 8 = %v", weeks[8])
	}
	if weeks[52][1] != 1 {
		t.Fatalf("Dec 31 misplaced: week 52 = %v", weeks[52])
	}
	if monthWeeks[0] != time.January || monthWeeks[4] != time.February {
		t.Fatalf("unexpected month columns: %v", monthWeeks)
	}
}

func TestWeekGridPadsPartialFirstWeek(t *testing.T) {
	t.Parallel()
	// 2023 starts on a Sunday: six leading cells are outside the year and
	// absent days across the whole year read as zero.
	weeks, _ := domain.WeekGrid(2023, nil)
	if len(weeks) != 53 {
		t.Fatalf("expected 53 week columns, got %d", len(weeks))
	}
	for d := 0; d < 6; d++ {
		if weeks[0][d] != -1 {
			t.Fatalf("leading pad cell %d should be outside the year, got %d", d, weeks[0][d])
		}
	}
	if weeks[0][6] != 0 {
		t.Fatalf("Jan 1 with no finishes must read zero, got %d", weeks[0][6])
	}
	laidOut := 0
	for _, week := range weeks {
		for _, count := range week {
			if count >= 0 {
				laidOut++
			}
		}
	}
	if laidOut != 365 {
		t.Fatalf("2023 must lay out 365 days, got %d", laidOut)
	}
}
