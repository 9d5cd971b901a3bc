// internal/session/model.go
package session

import "time"

// RecentLimit bounds the recent-photo ring.
const RecentLimit = 5

// NoPhoto is the sentinel shown when the photo directory is empty.
const NoPhoto = "none"

// Model is the single mutable session aggregate. It is owned exclusively by
// the capture controller; everything else sees it through Snapshot.
type Model struct {
	CameraReady  bool
	CameraStatus string
	SessionCount int
	TotalCount   int
	LastPhoto    string
	RecentPhotos []string
	OutputDir    string
	IsCapturing  bool
	StartedAt    time.Time
}

// New returns a Model with initial state for the given photo directory.
func New(outputDir string) *Model {
	return &Model{
		CameraStatus: "Initializing...",
		LastPhoto:    NoPhoto,
		RecentPhotos: make([]string, 0, RecentLimit),
		OutputDir:    outputDir,
		StartedAt:    time.Now(),
	}
}

// PushRecent appends a filename to the recent ring, evicting the oldest
// entry once the ring holds RecentLimit names.
func (m *Model) PushRecent(name string) {
	m.RecentPhotos = append(m.RecentPhotos, name)
	if len(m.RecentPhotos) > RecentLimit {
		m.RecentPhotos = m.RecentPhotos[1:]
	}
}

// Snapshot is the read-only view handed to renderers.
type Snapshot struct {
	CameraReady  bool
	CameraStatus string
	SessionCount int
	TotalCount   int
	LastPhoto    string
	RecentPhotos []string
	OutputDir    string
	IsCapturing  bool
	StartedAt    time.Time
}

// Snapshot copies the current state. The recent ring is cloned so renderers
// never alias controller-owned storage.
func (m *Model) Snapshot() Snapshot {
	recent := make([]string, len(m.RecentPhotos))
	copy(recent, m.RecentPhotos)
	return Snapshot{
		CameraReady:  m.CameraReady,
		CameraStatus: m.CameraStatus,
		SessionCount: m.SessionCount,
		TotalCount:   m.TotalCount,
		LastPhoto:    m.LastPhoto,
		RecentPhotos: recent,
		OutputDir:    m.OutputDir,
		IsCapturing:  m.IsCapturing,
		StartedAt:    m.StartedAt,
	}
}
