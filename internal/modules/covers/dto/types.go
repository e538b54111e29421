package dto

import "time"

type CoverStatusOutput struct {
	BookID  string
	Present bool
	Path    string
}

type MissingCoverOutput struct {
	BookID       string
	Title        string
	Author       string
	FinishDate   time.Time
	ExpectedPath string
}
