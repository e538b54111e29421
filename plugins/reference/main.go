// Reference renderer. Writes a plain-text storyboard instead of a real
// animation so the host pipeline can be exercised without image tooling.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	rendererrpc "readlog/internal/modules/render/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *rendererrpc.Empty) (*rendererrpc.Metadata, error) {
	return &rendererrpc.Metadata{
		Name:    "reference",
		Version: "1.0.0",
		Formats: []string{"storyboard"},
	}, nil
}

func (s *server) Render(_ context.Context, in *rendererrpc.RenderRequest) (*rendererrpc.RenderResponse, error) {
	if in.Format != "storyboard" {
		return nil, fmt.Errorf("unsupported format: %s", in.Format)
	}
	if len(in.Frames) == 0 {
		return nil, fmt.Errorf("no frames to render")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "year %d, %d frames, %dms each\n", in.Year, len(in.Frames), in.FrameDelayMS)
	for i, frame := range in.Frames {
		cover := frame.CoverPath
		if frame.CoverMissing {
			cover = "(no cover)"
		}
		label := frame.Title
		if frame.TotalReads > 1 {
			label = fmt.Sprintf("%s (read %d of %d)", frame.Title, frame.ReadNumber, frame.TotalReads)
		}
		fmt.Fprintf(&b, "%3d  %s  %s by %s  %s\n", i+1, frame.FinishLabel, label, frame.Author, cover)
	}
	if err := os.WriteFile(in.OutputPath, []byte(b.String()), 0o644); err != nil {
		return nil, fmt.Errorf("write storyboard: %w", err)
	}
	return &rendererrpc.RenderResponse{
		OutputPath: in.OutputPath,
		FrameCount: int32(len(in.Frames)),
		Log:        fmt.Sprintf("wrote %d storyboard lines", len(in.Frames)),
	}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: rendererrpc.HandshakeConfig,
		Plugins:         rendererrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
