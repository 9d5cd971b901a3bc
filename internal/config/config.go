package config

import (
	"time"

	"github.com/AlverezYari/picamui/pkg/camera"
)

// Config carries the runtime settings. There is no configuration file:
// everything comes from defaults plus the single optional output-directory
// argument.
type Config struct {
	// OutputDir is the photo directory, created at startup if missing.
	OutputDir string
	// PhotoExt is the extension (with dot) used for captured files and for
	// the statistics scan.
	PhotoExt string
	// LogFile receives diagnostics; the terminal itself belongs to the
	// renderer.
	LogFile string
	// Still is the profile applied to the camera before starting.
	Still camera.Profile
	// DetectDelay makes the "detecting" phase visible to the operator. It
	// is a UX pause, not a correctness requirement.
	DetectDelay time.Duration
	// SettleDelay is the wait after the camera starts before it is
	// declared ready.
	SettleDelay time.Duration
}

// Default config
func Default() Config {
	return Config{
		OutputDir:   "photos",
		PhotoExt:    ".jpg",
		LogFile:     "picamui.log",
		Still:       camera.Profile{Width: 1280, Height: 720},
		DetectDelay: 500 * time.Millisecond,
		SettleDelay: 2 * time.Second,
	}
}

// FromArgs applies the optional positional output directory to the default
// config. Anything past the first argument is ignored.
func FromArgs(args []string) Config {
	cfg := Default()
	if len(args) > 0 && args[0] != "" {
		cfg.OutputDir = args[0]
	}
	return cfg
}
