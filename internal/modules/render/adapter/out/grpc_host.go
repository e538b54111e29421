package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	rendererrpc "readlog/internal/modules/render/adapter/out/rpc"
	"readlog/internal/modules/render/domain"
	renderout "readlog/internal/modules/render/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	metadataCallTimeout = 5 * time.Second
	// Encoding a year of covers takes a while on slow disks.
	renderCallTimeout = 120 * time.Second
)

type GRPCHost struct{}

func NewGRPCHost() renderout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(ctx, manifest, defaultStartTimeout)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, metadataCallTimeout)
	defer cancel()
	if _, err := client.GetMetadata(callCtx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(ctx, manifest, defaultStartTimeout)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, metadataCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	formats := make([]domain.Format, 0, len(meta.Formats))
	for _, format := range meta.Formats {
		formats = append(formats, domain.Format(format))
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Formats: formats}, nil
}

func (h *GRPCHost) Render(ctx context.Context, manifest domain.Manifest, job domain.RenderJob) (domain.RenderResult, error) {
	client, closeFn, err := h.connect(ctx, manifest, defaultStartTimeout)
	if err != nil {
		return domain.RenderResult{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, renderCallTimeout)
	defer cancel()

	frames := make([]rendererrpc.Frame, 0, len(job.Frames))
	for _, frame := range job.Frames {
		frames = append(frames, rendererrpc.Frame{
			BookID:       frame.BookID,
			Title:        frame.Title,
			Author:       frame.Author,
			FinishLabel:  frame.FinishLabel,
			ReadNumber:   int32(frame.ReadNumber),
			TotalReads:   int32(frame.TotalReads),
			CoverPath:    frame.CoverPath,
			CoverMissing: frame.CoverMissing,
		})
	}
	response, err := client.Render(callCtx, &rendererrpc.RenderRequest{
		Year:         int32(job.Year),
		Format:       string(job.Format),
		OutputPath:   job.OutputPath,
		FrameDelayMS: int32(job.FrameDelayMS),
		Frames:       frames,
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.RenderResult{}, fmt.Errorf("%w: %s", domain.ErrRenderTimeout, manifest.Name)
		}
		return domain.RenderResult{}, fmt.Errorf("render: %w", err)
	}
	return domain.RenderResult{
		OutputPath: response.OutputPath,
		FrameCount: int(response.FrameCount),
		Log:        response.Log,
	}, nil
}

func (h *GRPCHost) connect(ctx context.Context, manifest domain.Manifest, startTimeout time.Duration) (rendererrpc.RendererClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  rendererrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          rendererrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     startTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start renderer client: %w", err)
	}
	raw, err := rpcClient.Dispense(rendererrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense renderer: %w", err)
	}
	typed, ok := raw.(rendererrpc.RendererClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("renderer rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
