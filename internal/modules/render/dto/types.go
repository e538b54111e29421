package dto

type RendererInfo struct {
	Name    string
	Version string
	Enabled bool
	Binary  string
	Formats []string
}

type CheckResult struct {
	Name            string
	BinaryReachable bool
	ChecksumValid   bool
	LifecycleOK     bool
	Error           string
}

type RenderInput struct {
	Renderer     string
	Year         int
	Format       string
	OutputPath   string
	FrameDelayMS int
}

type RenderOutput struct {
	Renderer   string
	OutputPath string
	FrameCount int
	Log        string
}
