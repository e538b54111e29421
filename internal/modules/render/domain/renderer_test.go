package domain_test

import (
	"testing"

	"readlog/internal/modules/render/domain"
)

const goodSHA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		manifest  domain.Manifest
		shouldErr bool
	}{
		{name: "valid", manifest: domain.Manifest{Name: "r", Version: "1", Binary: "/tmp/r", SHA256: goodSHA, Enabled: true, Formats: []domain.Format{domain.FormatGIF}}, shouldErr: false},
		{name: "missing name", manifest: domain.Manifest{Version: "1", Binary: "/tmp/r", SHA256: goodSHA, Formats: []domain.Format{domain.FormatGIF}}, shouldErr: true},
		{name: "missing version", manifest: domain.Manifest{Name: "r", Binary: "/tmp/r", SHA256: goodSHA, Formats: []domain.Format{domain.FormatGIF}}, shouldErr: true},
		{name: "missing binary", manifest: domain.Manifest{Name: "r", Version: "1", SHA256: goodSHA, Formats: []domain.Format{domain.FormatGIF}}, shouldErr: true},
		{name: "bad sha", manifest: domain.Manifest{Name: "r", Version: "1", Binary: "/tmp/r", SHA256: "not-hex", Formats: []domain.Format{domain.FormatGIF}}, shouldErr: true},
		{name: "no formats", manifest: domain.Manifest{Name: "r", Version: "1", Binary: "/tmp/r", SHA256: goodSHA}, shouldErr: true},
		{name: "invalid format", manifest: domain.Manifest{Name: "r", Version: "1", Binary: "/tmp/r", SHA256: goodSHA, Formats: []domain.Format{"avi"}}, shouldErr: true},
		{name: "duplicate format", manifest: domain.Manifest{Name: "r", Version: "1", Binary: "/tmp/r", SHA256: goodSHA, Formats: []domain.Format{domain.FormatGIF, domain.FormatGIF}}, shouldErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.manifest.Validate()
			if tc.shouldErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.shouldErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestManifestHasFormat(t *testing.T) {
	t.Parallel()
	manifest := domain.Manifest{Formats: []domain.Format{domain.FormatGIF, domain.FormatStoryboard}}
	if !manifest.HasFormat(domain.FormatGIF) {
		t.Fatalf("expected gif format")
	}
	if manifest.HasFormat(domain.FormatMP4) {
		t.Fatalf("did not expect mp4 format")
	}
}

func TestRenderJobValidate(t *testing.T) {
	t.Parallel()
	frame := domain.Frame{BookID: "3", Title: "Piranesi", FinishLabel: "2025-03-10", CoverPath: "/covers/3.jpg"}
	good := domain.RenderJob{Year: 2025, Format: domain.FormatGIF, OutputPath: "/tmp/out.gif", FrameDelayMS: 800, Frames: []domain.Frame{frame}}
	if err := good.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	noFrames := good
	noFrames.Frames = nil
	if err := noFrames.Validate(); err == nil {
		t.Fatalf("expected error for empty job")
	}

	badDelay := good
	badDelay.FrameDelayMS = 0
	if err := badDelay.Validate(); err == nil {
		t.Fatalf("expected error for zero delay")
	}

	missingCover := frame
	missingCover.CoverPath = ""
	missingCover.CoverMissing = true
	if err := missingCover.Validate(); err != nil {
		t.Fatalf("missing cover frame should validate: %v", err)
	}
	missingCover.CoverMissing = false
	if err := missingCover.Validate(); err == nil {
		t.Fatalf("expected error for empty cover path")
	}
}
