// pkg/camera/webcam.go
package camera

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// defaultDevice is the built-in camera on most machines.
const defaultDevice = 0

// warmupFrames is how many frames Start discards so exposure and white
// balance settle before the first still.
const warmupFrames = 5

// Probe checks once at startup whether a capture device is present. It
// opens and immediately releases device 0; the returned factory re-opens it
// for the session.
func Probe() Availability {
	cap, err := gocv.OpenVideoCapture(defaultDevice)
	if err != nil {
		return Availability{Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	ok := cap.IsOpened()
	cap.Close()
	if !ok {
		return Availability{Err: fmt.Errorf("%w: device %d did not open", ErrUnavailable, defaultDevice)}
	}
	return Availability{Factory: func() (Camera, error) { return openWebcam(defaultDevice) }}
}

// Webcam drives a local capture device through gocv.
type Webcam struct {
	device int
	cap    *gocv.VideoCapture
}

func openWebcam(device int) (*Webcam, error) {
	cap, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, &OpError{Op: "construct", Err: err}
	}
	if !cap.IsOpened() {
		cap.Close()
		return nil, &OpError{Op: "construct", Err: fmt.Errorf("device %d is not open", device)}
	}
	return &Webcam{device: device, cap: cap}, nil
}

// Configure applies the still-image profile to the open device.
func (w *Webcam) Configure(p Profile) error {
	if w.cap == nil {
		return &OpError{Op: "configure", Err: errors.New("device is closed")}
	}
	w.cap.Set(gocv.VideoCaptureFrameWidth, float64(p.Width))
	w.cap.Set(gocv.VideoCaptureFrameHeight, float64(p.Height))
	return nil
}

// Start reads and discards a few frames so the sensor settles.
func (w *Webcam) Start() error {
	if w.cap == nil {
		return &OpError{Op: "start", Err: errors.New("device is closed")}
	}
	img := gocv.NewMat()
	defer img.Close()
	for i := 0; i < warmupFrames; i++ {
		if ok := w.cap.Read(&img); !ok {
			return &OpError{Op: "start", Err: fmt.Errorf("device %d stopped producing frames", w.device)}
		}
	}
	return nil
}

// Capture reads one frame and writes it to path. The image format follows
// the path extension.
func (w *Webcam) Capture(path string) error {
	if w.cap == nil {
		return &OpError{Op: "capture", Err: errors.New("device is closed")}
	}
	img := gocv.NewMat()
	defer img.Close()
	if ok := w.cap.Read(&img); !ok {
		return &OpError{Op: "capture", Err: fmt.Errorf("failed to read frame from device %d", w.device)}
	}
	if img.Empty() {
		return &OpError{Op: "capture", Err: errors.New("captured frame is empty")}
	}
	if ok := gocv.IMWrite(path, img); !ok {
		return &OpError{Op: "capture", Err: fmt.Errorf("failed to write %s", path)}
	}
	return nil
}

// Stop releases the device. Calling Stop twice is harmless.
func (w *Webcam) Stop() error {
	if w.cap == nil {
		return nil
	}
	err := w.cap.Close()
	w.cap = nil
	if err != nil {
		return &OpError{Op: "stop", Err: err}
	}
	return nil
}
