package usecase_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"readlog/internal/modules/render/domain"
	"readlog/internal/modules/render/dto"
	"readlog/internal/modules/render/service"
	"readlog/internal/modules/render/usecase"
)

type fakeManifestStore struct {
	manifests []domain.Manifest
}

func (s fakeManifestStore) Load(context.Context) ([]domain.Manifest, error) {
	return s.manifests, nil
}

type fakeHost struct {
	lastJob *domain.RenderJob
}

func (h *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error { return nil }

func (h *fakeHost) GetMetadata(context.Context, domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: "slideshow", Version: "1", Formats: []domain.Format{domain.FormatGIF}}, nil
}

func (h *fakeHost) Render(_ context.Context, _ domain.Manifest, job domain.RenderJob) (domain.RenderResult, error) {
	h.lastJob = &job
	return domain.RenderResult{OutputPath: job.OutputPath, FrameCount: len(job.Frames), Log: "encoded"}, nil
}

type fakeFrameSource struct {
	frames []domain.Frame
}

func (s fakeFrameSource) Frames(context.Context, int) ([]domain.Frame, error) {
	return s.frames, nil
}

func sampleFrames() []domain.Frame {
	return []domain.Frame{
		{BookID: "1", Title: "The Dispossessed", Author: "Le Guin", FinishLabel: "2025-01-15", ReadNumber: 1, TotalReads: 1, CoverPath: "/covers/1.jpg"},
		{BookID: "3", Title: "Piranesi", Author: "Clarke", FinishLabel: "2025-03-10", ReadNumber: 2, TotalReads: 2, CoverMissing: true},
	}
}

func TestUsecaseListCheckAndRender(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t)
	host := &fakeHost{}
	uc := usecase.NewInteractor(service.NewRenderService(
		fakeManifestStore{manifests: []domain.Manifest{manifest}},
		host,
		fakeFrameSource{frames: sampleFrames()},
	))

	list, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "slideshow" {
		t.Fatalf("unexpected list: %+v", list)
	}

	checks, err := uc.Check(context.Background())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(checks) != 1 || !checks[0].ChecksumValid || !checks[0].LifecycleOK {
		t.Fatalf("unexpected check result: %+v", checks)
	}

	out, err := uc.Render(context.Background(), dto.RenderInput{
		Renderer:     "slideshow",
		Year:         2025,
		Format:       "gif",
		OutputPath:   filepath.Join(t.TempDir(), "2025.gif"),
		FrameDelayMS: 800,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.FrameCount != 2 {
		t.Fatalf("unexpected frame count: %d", out.FrameCount)
	}
	if host.lastJob == nil || host.lastJob.Year != 2025 || len(host.lastJob.Frames) != 2 {
		t.Fatalf("unexpected job: %+v", host.lastJob)
	}
	if host.lastJob.Frames[1].ReadNumber != 2 {
		t.Fatalf("read numbering lost in job: %+v", host.lastJob.Frames[1])
	}
}

func TestRenderRejectsDisabledAndUnsupported(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t)
	base := dto.RenderInput{Renderer: "slideshow", Year: 2025, Format: "gif", OutputPath: "/tmp/out.gif", FrameDelayMS: 800}

	disabled := manifest
	disabled.Enabled = false
	uc := usecase.NewInteractor(service.NewRenderService(
		fakeManifestStore{manifests: []domain.Manifest{disabled}}, &fakeHost{}, fakeFrameSource{frames: sampleFrames()},
	))
	if _, err := uc.Render(context.Background(), base); !errors.Is(err, domain.ErrRendererDisabled) {
		t.Fatalf("expected disabled error, got %v", err)
	}

	uc = usecase.NewInteractor(service.NewRenderService(
		fakeManifestStore{manifests: []domain.Manifest{manifest}}, &fakeHost{}, fakeFrameSource{frames: sampleFrames()},
	))
	mp4 := base
	mp4.Format = "mp4"
	if _, err := uc.Render(context.Background(), mp4); !errors.Is(err, domain.ErrFormatUnsupported) {
		t.Fatalf("expected format error, got %v", err)
	}

	absent := base
	absent.Renderer = "ghost"
	if _, err := uc.Render(context.Background(), absent); !errors.Is(err, domain.ErrRendererNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRenderRejectsChecksumMismatchAndEmptyYear(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t)
	tampered := manifest
	tampered.SHA256 = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	base := dto.RenderInput{Renderer: "slideshow", Year: 2025, Format: "gif", OutputPath: "/tmp/out.gif", FrameDelayMS: 800}

	uc := usecase.NewInteractor(service.NewRenderService(
		fakeManifestStore{manifests: []domain.Manifest{tampered}}, &fakeHost{}, fakeFrameSource{frames: sampleFrames()},
	))
	if _, err := uc.Render(context.Background(), base); !errors.Is(err, domain.ErrChecksumMismatch) {
		t.Fatalf("expected checksum error, got %v", err)
	}

	uc = usecase.NewInteractor(service.NewRenderService(
		fakeManifestStore{manifests: []domain.Manifest{manifest}}, &fakeHost{}, fakeFrameSource{},
	))
	if _, err := uc.Render(context.Background(), base); err == nil {
		t.Fatalf("expected error for year without frames")
	}
}

func manifestWithBinary(t *testing.T) domain.Manifest {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "renderer-bin")
	if err := os.WriteFile(binPath, []byte("binary"), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	hash := sha256.Sum256([]byte("binary"))
	return domain.Manifest{
		Name:    "slideshow",
		Version: "1",
		Binary:  binPath,
		SHA256:  hex.EncodeToString(hash[:]),
		Enabled: true,
		Formats: []domain.Format{domain.FormatGIF, domain.FormatStoryboard},
	}
}
