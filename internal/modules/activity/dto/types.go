package dto

import "time"

type EntryOutput struct {
	BookID     string
	Title      string
	Author     string
	Row        int
	Start      time.Time
	Finish     time.Time
	ReadNumber int
	TotalReads int
}

type DayCountOutput struct {
	Date  time.Time
	Count int
}

type MonthOutput struct {
	Month   time.Month
	Entries []EntryOutput
}

// YearOutput carries all three projections at once so consumers cannot
// disagree on which sessions qualify. Days lists active days only, sorted;
// Months always has twelve entries.
type YearOutput struct {
	Year    int
	Entries []EntryOutput
	Days    []DayCountOutput
	Months  []MonthOutput
}

type SummaryOutput struct {
	Year             int
	TotalSessions    int
	UniqueBooks      int
	RereadBooks      int
	ActiveDays       int
	MaxPerDay        int
	AveragePerActive float64
	BusiestDays      []DayCountOutput
}

type GenreCountOutput struct {
	Genre string
	Votes int
	Books int
}
