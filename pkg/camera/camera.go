// pkg/camera/camera.go
package camera

// Profile is the still-image configuration applied before Start.
type Profile struct {
	Width  int
	Height int
}

// Camera is the capability boundary to a single capture device. All calls
// are synchronous and all of them can fail; callers gate use behind a
// successful Configure/Start sequence.
type Camera interface {
	// Configure applies the still-image profile.
	Configure(p Profile) error
	// Start brings the sensor up. The first capture is only valid after
	// Start has returned.
	Start() error
	// Capture writes one still image to the given path.
	Capture(path string) error
	// Stop releases the device. Safe to call once after Start, whether or
	// not captures happened.
	Stop() error
}

// Factory constructs a camera once the capability has been probed.
type Factory func() (Camera, error)

// Availability is the typed result of the startup capability probe: either
// a factory for the detected device, or the reason none is usable.
type Availability struct {
	Factory Factory
	Err     error
}

// OK reports whether the capability was detected.
func (a Availability) OK() bool {
	return a.Err == nil
}
