package domain

import "time"

// CoverStatus is the result of resolving a book id to cover art. Missing is
// a first-class state so renderers can substitute a placeholder instead of
// failing.
type CoverStatus struct {
	BookID  string
	Present bool
	Path    string
}

// MissingCover is one line of the missing-covers report. FinishDate is the
// book's latest qualifying finish in the inspected year.
type MissingCover struct {
	BookID       string
	Title        string
	Author       string
	FinishDate   time.Time
	ExpectedPath string
}
