package domain

import (
	"sort"
	"time"
)

// Session is one finished reading event, flattened from the library. Row and
// Segment identify where it came from in the export and break every ordering
// tie, which keeps the timeline, heatmap and month views deterministic and
// agreeing with each other.
type Session struct {
	BookID     string
	Title      string
	Author     string
	Row        int
	Segment    int
	Start      time.Time
	Finish     time.Time
	ReadNumber int // 1-based position among the book's finished sessions
	TotalReads int // finished sessions of the book across the whole library
}

// NumberRereads fills ReadNumber and TotalReads. The read number is counted
// over the whole library, not the target year, so a January reread of a book
// first read last December still shows as read #2.
func NumberRereads(sessions []Session) []Session {
	perBook := map[string][]int{}
	for i, session := range sessions {
		perBook[session.BookID] = append(perBook[session.BookID], i)
	}
	out := make([]Session, len(sessions))
	copy(out, sessions)
	for _, indexes := range perBook {
		sorted := make([]int, len(indexes))
		copy(sorted, indexes)
		sort.SliceStable(sorted, func(a, b int) bool {
			return out[sorted[a]].Finish.Before(out[sorted[b]].Finish)
		})
		for number, idx := range sorted {
			out[idx].ReadNumber = number + 1
			out[idx].TotalReads = len(indexes)
		}
	}
	return out
}

// FilterYear keeps sessions whose finish date falls in the target calendar
// year. Membership is decided by the finish date alone.
func FilterYear(sessions []Session, year int) []Session {
	out := make([]Session, 0, len(sessions))
	for _, session := range sessions {
		if session.Finish.Year() == year {
			out = append(out, session)
		}
	}
	return out
}

// Chronological sorts by finish date ascending; same-day finishes keep the
// export's row order so repeated runs never reshuffle.
func Chronological(sessions []Session) []Session {
	out := make([]Session, len(sessions))
	copy(out, sessions)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Finish.Equal(out[j].Finish) {
			return out[i].Finish.Before(out[j].Finish)
		}
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Segment < out[j].Segment
	})
	return out
}

// DayCounts counts sessions per finish day. Only the completion day counts
// as activity. Days without finishes are absent; consumers render them as
// zero across the whole year.
func DayCounts(sessions []Session) map[time.Time]int {
	counts := map[time.Time]int{}
	for _, session := range sessions {
		counts[session.Finish]++
	}
	return counts
}

// WeekGrid lays a year out in Monday-first week columns, one cell per day
// from Jan 1 through Dec 31, leap days included. Cells outside the year hold
// -1; days without finishes hold 0, so renderers never re-derive the
// calendar. The month map points each month at the week column holding its
// first day, for column labels.
func WeekGrid(year int, counts map[time.Time]int) ([][7]int, map[int]time.Month) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	lead := (int(start.Weekday()) + 6) % 7
	total := int(end.Sub(start).Hours() / 24)

	weeks := make([][7]int, (lead+total+6)/7)
	for w := range weeks {
		for d := range weeks[w] {
			weeks[w][d] = -1
		}
	}
	monthWeeks := map[int]time.Month{}
	for i := 0; i < total; i++ {
		date := start.AddDate(0, 0, i)
		idx := lead + i
		weeks[idx/7][idx%7] = counts[date]
		if date.Day() == 1 {
			monthWeeks[idx/7] = date.Month()
		}
	}
	return weeks, monthWeeks
}

// MonthBuckets groups sessions by finish month. All twelve buckets exist
// even when empty so grid consumers can render a fixed layout.
func MonthBuckets(sessions []Session) [12][]Session {
	var buckets [12][]Session
	for _, session := range Chronological(sessions) {
		month := int(session.Finish.Month()) - 1
		buckets[month] = append(buckets[month], session)
	}
	return buckets
}

type DayCount struct {
	Date  time.Time
	Count int
}

type Summary struct {
	Year             int
	TotalSessions    int
	UniqueBooks      int
	RereadBooks      int
	ActiveDays       int
	MaxPerDay        int
	AveragePerActive float64
	BusiestDays      []DayCount
}

const busiestDayLimit = 5

// Summarize computes the statistics block the heatmap report prints.
func Summarize(year int, sessions []Session) Summary {
	counts := DayCounts(sessions)
	summary := Summary{
		Year:          year,
		TotalSessions: len(sessions),
		ActiveDays:    len(counts),
	}

	books := map[string]int{}
	for _, session := range sessions {
		books[session.BookID]++
	}
	summary.UniqueBooks = len(books)
	for _, reads := range books {
		if reads > 1 {
			summary.RereadBooks++
		}
	}

	days := make([]DayCount, 0, len(counts))
	for date, count := range counts {
		days = append(days, DayCount{Date: date, Count: count})
		if count > summary.MaxPerDay {
			summary.MaxPerDay = count
		}
	}
	sort.Slice(days, func(i, j int) bool {
		if days[i].Count != days[j].Count {
			return days[i].Count > days[j].Count
		}
		return days[i].Date.Before(days[j].Date)
	})
	if len(days) > busiestDayLimit {
		days = days[:busiestDayLimit]
	}
	summary.BusiestDays = days

	if summary.ActiveDays > 0 {
		summary.AveragePerActive = float64(summary.TotalSessions) / float64(summary.ActiveDays)
	}
	return summary
}

// BookGenres carries one book's genre votes into the distribution.
type BookGenres struct {
	BookID string
	Genres map[string]int
}

type GenreCount struct {
	Genre string
	Votes int
	Books int
}

// GenreDistribution aggregates votes across books, most-voted first, name
// ascending on ties.
func GenreDistribution(books []BookGenres) []GenreCount {
	votes := map[string]int{}
	titles := map[string]int{}
	for _, book := range books {
		for genre, count := range book.Genres {
			votes[genre] += count
			titles[genre]++
		}
	}
	out := make([]GenreCount, 0, len(votes))
	for genre, total := range votes {
		out = append(out, GenreCount{Genre: genre, Votes: total, Books: titles[genre]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Votes != out[j].Votes {
			return out[i].Votes > out[j].Votes
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}
