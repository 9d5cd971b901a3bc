// internal/controller/controller.go

// Package controller owns the session model and drives the camera lifecycle,
// the single-flight capture protocol and the read-dispatch-render loop.
package controller

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/AlverezYari/picamui/internal/config"
	"github.com/AlverezYari/picamui/internal/render"
	"github.com/AlverezYari/picamui/internal/session"
	"github.com/AlverezYari/picamui/pkg/camera"
)

// State is the camera lifecycle phase. Ready is the only state that permits
// capture; Error is terminal for the run.
type State int

const (
	StateUninitialized State = iota
	StateDetecting
	StateConstructing
	StateConfiguring
	StateStarting
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateDetecting:
		return "detecting"
	case StateConstructing:
		return "constructing"
	case StateConfiguring:
		return "configuring"
	case StateStarting:
		return "starting"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Capture rejections. Overlapping requests are dropped, never queued.
var (
	ErrNotReady = errors.New("camera not ready")
	ErrBusy     = errors.New("capture already in progress")
)

// KeyReader is the input side of the loop; internal/input provides the
// concrete readers.
type KeyReader interface {
	ReadKey() (rune, error)
}

// ctrl-c arrives as 0x03 in raw mode.
const keyInterrupt = '\x03'

// Controller owns the session model. All mutation goes through it.
type Controller struct {
	cfg      config.Config
	model    *session.Model
	avail    camera.Availability
	cam      camera.Camera
	renderer render.Renderer
	log      *log.Logger
	state    State
	running  bool
}

// New builds a controller and materializes the photo directory.
func New(cfg config.Config, avail camera.Availability, r render.Renderer, logger *log.Logger) (*Controller, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", cfg.OutputDir, err)
	}
	return &Controller{
		cfg:      cfg,
		model:    session.New(cfg.OutputDir),
		avail:    avail,
		renderer: r,
		log:      logger,
	}, nil
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	return c.state
}

// InitializeCamera walks the lifecycle detect -> construct -> configure ->
// start, updating the status line and forcing a render before each blocking
// step so the operator sees progress. Any failure is fatal for the run: the
// state machine parks in StateError and capture stays disabled.
func (c *Controller) InitializeCamera() error {
	c.setPhase(StateDetecting, "Detecting camera...")
	time.Sleep(c.cfg.DetectDelay)

	if !c.avail.OK() {
		return c.fail(c.avail.Err)
	}

	c.setPhase(StateConstructing, "Opening camera...")
	cam, err := c.avail.Factory()
	if err != nil {
		return c.fail(err)
	}
	c.cam = cam

	c.setPhase(StateConfiguring, "Configuring camera...")
	if err := cam.Configure(c.cfg.Still); err != nil {
		return c.fail(err)
	}

	c.setPhase(StateStarting, "Starting camera...")
	if err := cam.Start(); err != nil {
		return c.fail(err)
	}
	time.Sleep(c.cfg.SettleDelay)

	c.state = StateReady
	c.model.CameraReady = true
	c.model.CameraStatus = "Ready"
	c.log.Printf("camera ready")
	return nil
}

// CapturePhoto runs one single-flight capture. A request arriving while the
// camera is not ready, or while another capture is in flight, is rejected
// with no side effects. The session ordinal is consumed before the capture
// call, so a failed capture leaves a gap in the filename sequence; that
// matches how the filenames have always been numbered and keeps them unique
// within a second.
func (c *Controller) CapturePhoto() error {
	if !c.model.CameraReady {
		return ErrNotReady
	}
	if c.model.IsCapturing {
		return ErrBusy
	}

	c.model.IsCapturing = true
	c.render()
	defer func() {
		c.model.IsCapturing = false
	}()

	c.model.SessionCount++
	name := fmt.Sprintf("photo_%s_%03d%s",
		time.Now().Format("20060102_150405"), c.model.SessionCount, c.cfg.PhotoExt)
	path := filepath.Join(c.cfg.OutputDir, name)

	if err := c.cam.Capture(path); err != nil {
		c.model.CameraStatus = "Capture failed: " + err.Error()
		c.log.Printf("capture %s failed: %v", name, err)
		return err
	}

	c.model.PushRecent(name)
	c.model.CameraStatus = "Ready"
	c.RefreshStats()
	c.log.Printf("captured %s", name)
	return nil
}

// RefreshStats recomputes the totals from the photo directory. This is a
// full rescan; a missing directory is the empty state, not an error. When
// two files share a modification time the winner follows directory order.
func (c *Controller) RefreshStats() {
	entries, err := os.ReadDir(c.cfg.OutputDir)
	if err != nil {
		c.model.TotalCount = 0
		c.model.LastPhoto = session.NoPhoto
		return
	}

	total := 0
	var lastName string
	var lastMod time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), c.cfg.PhotoExt) {
			continue
		}
		total++
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if lastName == "" || info.ModTime().After(lastMod) {
			lastName = entry.Name()
			lastMod = info.ModTime()
		}
	}

	c.model.TotalCount = total
	if lastName == "" {
		c.model.LastPhoto = session.NoPhoto
	} else {
		c.model.LastPhoto = lastName
	}
}

// HandleKey dispatches one control token, case-insensitively, and always
// redraws afterwards.
func (c *Controller) HandleKey(key rune) {
	switch unicode.ToLower(key) {
	case 'q', keyInterrupt:
		c.running = false
	case ' ':
		// Rejections and capture failures are non-fatal; the redraw
		// below shows the outcome either way.
		_ = c.CapturePhoto()
	case 'r':
		c.RefreshStats()
	}
	c.render()
}

// Run is the cooperative loop: seed the stats, paint once, then block on
// one key at a time until quit. The camera is stopped best effort on the
// way out.
func (c *Controller) Run(keys KeyReader) {
	c.running = true
	c.RefreshStats()
	c.render()

	for c.running {
		key, err := keys.ReadKey()
		if err != nil {
			c.log.Printf("input closed: %v", err)
			break
		}
		c.HandleKey(key)
	}

	c.Shutdown()
}

// Shutdown stops the camera if it was acquired. Stop errors are logged and
// otherwise suppressed; shutdown is never fatal.
func (c *Controller) Shutdown() {
	if c.cam == nil {
		return
	}
	if err := c.cam.Stop(); err != nil {
		c.log.Printf("camera stop: %v", err)
	}
	c.cam = nil
}

// setPhase records a lifecycle transition and forces a render so the
// intermediate state is visible.
func (c *Controller) setPhase(s State, status string) {
	c.state = s
	c.model.CameraStatus = status
	c.render()
}

// fail parks the state machine in StateError. Capture stays disabled for
// the rest of the run.
func (c *Controller) fail(err error) error {
	c.state = StateError
	c.model.CameraReady = false
	c.model.CameraStatus = "Error: " + err.Error()
	c.log.Printf("camera init failed: %v", err)
	c.render()
	return err
}

func (c *Controller) render() {
	if c.renderer == nil {
		return
	}
	c.renderer.Render(c.model.Snapshot())
}
