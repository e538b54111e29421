package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	renderout "readlog/internal/modules/render/adapter/out"
	"readlog/internal/modules/render/domain"
)

func TestGRPCHostIntegrationReferenceRenderer(t *testing.T) {
	binPath, checksum := buildReferenceRenderer(t)
	manifest := domain.Manifest{
		Name:    "reference",
		Version: "1.0.0",
		Binary:  binPath,
		SHA256:  checksum,
		Enabled: true,
		Formats: []domain.Format{domain.FormatStoryboard},
	}

	host := renderout.NewGRPCHost()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := host.CheckLifecycle(ctx, manifest); err != nil {
		t.Fatalf("check lifecycle: %v", err)
	}
	metadata, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if metadata.Name != "reference" {
		t.Fatalf("unexpected metadata name: %s", metadata.Name)
	}
	if len(metadata.Formats) == 0 || metadata.Formats[0] != domain.FormatStoryboard {
		t.Fatalf("unexpected formats: %v", metadata.Formats)
	}

	outputPath := filepath.Join(t.TempDir(), "2025.txt")
	result, err := host.Render(ctx, manifest, domain.RenderJob{
		Year:         2025,
		Format:       domain.FormatStoryboard,
		OutputPath:   outputPath,
		FrameDelayMS: 800,
		Frames: []domain.Frame{
			{BookID: "1", Title: "The Dispossessed", Author: "Le Guin", FinishLabel: "2025-01-15", ReadNumber: 1, TotalReads: 1, CoverPath: "/covers/1.jpg"},
			{BookID: "3", Title: "Piranesi", Author: "Clarke", FinishLabel: "2025-03-10", ReadNumber: 2, TotalReads: 2, CoverMissing: true},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result.FrameCount != 2 {
		t.Fatalf("expected two frames, got %d", result.FrameCount)
	}
	payload, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read storyboard: %v", err)
	}
	text := string(payload)
	if !strings.Contains(text, "Piranesi") || !strings.Contains(text, "(no cover)") {
		t.Fatalf("unexpected storyboard content:\n%s", text)
	}
}

func buildReferenceRenderer(t *testing.T) (string, string) {
	t.Helper()
	tmp := t.TempDir()
	binPath := filepath.Join(tmp, "reference-renderer")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/reference")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build reference renderer: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built renderer: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
