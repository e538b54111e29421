package domain

import (
	"errors"
	"fmt"
	"regexp"
)

// Format names an output encoding a renderer plugin can produce.
type Format string

const (
	FormatGIF        Format = "gif"
	FormatMP4        Format = "mp4"
	FormatStoryboard Format = "storyboard"
)

var (
	ErrRendererDisabled  = errors.New("renderer is disabled")
	ErrRendererNotFound  = errors.New("renderer not found")
	ErrChecksumMismatch  = errors.New("renderer checksum mismatch")
	ErrFormatUnsupported = errors.New("renderer format unsupported")
	ErrRenderTimeout     = errors.New("renderer timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one installed renderer binary. The host never runs a
// binary whose checksum does not match the manifest.
type Manifest struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Binary  string   `json:"binary"`
	SHA256  string   `json:"sha256"`
	Enabled bool     `json:"enabled"`
	Formats []Format `json:"formats"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("renderer name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("renderer version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("renderer binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("renderer sha256 must be lowercase 64-char hex")
	}
	if len(m.Formats) == 0 {
		return fmt.Errorf("renderer formats are required")
	}
	seen := map[Format]struct{}{}
	for _, format := range m.Formats {
		if err := format.Validate(); err != nil {
			return err
		}
		if _, ok := seen[format]; ok {
			return fmt.Errorf("duplicate format: %s", format)
		}
		seen[format] = struct{}{}
	}
	return nil
}

func (f Format) Validate() error {
	switch f {
	case FormatGIF, FormatMP4, FormatStoryboard:
		return nil
	default:
		return fmt.Errorf("unknown format: %s", f)
	}
}

func (m Manifest) HasFormat(format Format) bool {
	for _, f := range m.Formats {
		if f == format {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name    string
	Version string
	Formats []Format
}

// Frame is one finished book in the order it was read. CoverPath is empty
// when CoverMissing is set; renderers substitute their own placeholder.
type Frame struct {
	BookID       string
	Title        string
	Author       string
	FinishLabel  string
	ReadNumber   int
	TotalReads   int
	CoverPath    string
	CoverMissing bool
}

func (f Frame) Validate() error {
	if f.BookID == "" {
		return fmt.Errorf("frame book id is required")
	}
	if f.FinishLabel == "" {
		return fmt.Errorf("frame finish label is required")
	}
	if !f.CoverMissing && f.CoverPath == "" {
		return fmt.Errorf("frame cover path is required unless missing")
	}
	return nil
}

type RenderJob struct {
	Year         int
	Format       Format
	OutputPath   string
	FrameDelayMS int
	Frames       []Frame
}

func (j RenderJob) Validate() error {
	if j.Year <= 0 {
		return fmt.Errorf("render year is required")
	}
	if err := j.Format.Validate(); err != nil {
		return err
	}
	if j.OutputPath == "" {
		return fmt.Errorf("render output path is required")
	}
	if j.FrameDelayMS <= 0 {
		return fmt.Errorf("render frame delay must be positive")
	}
	if len(j.Frames) == 0 {
		return fmt.Errorf("render job has no frames")
	}
	for _, frame := range j.Frames {
		if err := frame.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type RenderResult struct {
	OutputPath string
	FrameCount int
	Log        string
}
