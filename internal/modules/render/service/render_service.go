package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"readlog/internal/modules/render/domain"
	"readlog/internal/modules/render/dto"
	renderout "readlog/internal/modules/render/port/out"
)

type RenderService struct {
	store  renderout.ManifestStore
	host   renderout.Host
	frames renderout.FrameSource
}

func NewRenderService(store renderout.ManifestStore, host renderout.Host, frames renderout.FrameSource) *RenderService {
	return &RenderService{store: store, host: host, frames: frames}
}

func (s *RenderService) List(ctx context.Context) ([]dto.RendererInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RendererInfo, 0, len(manifests))
	for _, m := range manifests {
		formats := make([]string, 0, len(m.Formats))
		for _, f := range m.Formats {
			formats = append(formats, string(f))
		}
		out = append(out, dto.RendererInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Binary: m.Binary, Formats: formats})
	}
	return out, nil
}

func (s *RenderService) Check(ctx context.Context) ([]dto.CheckResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.CheckResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.CheckResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *RenderService) Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	format := domain.Format(input.Format)
	manifest, err := s.getRunnableManifest(ctx, input.Renderer, format)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	frames, err := s.frames.Frames(ctx, input.Year)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	if len(frames) == 0 {
		return dto.RenderOutput{}, fmt.Errorf("no finished books in %d", input.Year)
	}
	job := domain.RenderJob{
		Year:         input.Year,
		Format:       format,
		OutputPath:   input.OutputPath,
		FrameDelayMS: input.FrameDelayMS,
		Frames:       frames,
	}
	if err := job.Validate(); err != nil {
		return dto.RenderOutput{}, err
	}
	result, err := s.host.Render(ctx, manifest, job)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	return dto.RenderOutput{
		Renderer:   input.Renderer,
		OutputPath: result.OutputPath,
		FrameCount: result.FrameCount,
		Log:        result.Log,
	}, nil
}

func (s *RenderService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate renderer name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *RenderService) getRunnableManifest(ctx context.Context, name string, format domain.Format) (domain.Manifest, error) {
	if err := format.Validate(); err != nil {
		return domain.Manifest{}, err
	}
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	manifest := domain.Manifest{}
	found := false
	for _, item := range manifests {
		if item.Name == name {
			manifest = item
			found = true
			break
		}
	}
	if !found {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrRendererNotFound, name)
	}
	if !manifest.Enabled {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrRendererDisabled, name)
	}
	if !manifest.HasFormat(format) {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrFormatUnsupported, format)
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	if s.host != nil {
		if err := s.host.CheckLifecycle(ctx, manifest); err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrRenderTimeout, name)
			}
			return domain.Manifest{}, err
		}
	}
	return manifest, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read renderer binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
