package dto

import "time"

type SessionOutput struct {
	Segment int
	Start   time.Time
	Finish  time.Time
	Invalid bool
}

type BookOutput struct {
	ID       string
	Title    string
	Author   string
	Row      int
	Sessions []SessionOutput
	Genres   map[string]int
}

type DiagnosticOutput struct {
	Row     int
	BookID  string
	Title   string
	Segment int
	Kind    string
	Detail  string
}

type LoadOutput struct {
	Books       []BookOutput
	Diagnostics []DiagnosticOutput
}

type ReindexOutput struct {
	Books int
}
