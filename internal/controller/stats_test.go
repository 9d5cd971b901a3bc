package controller

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AlverezYari/picamui/pkg/camera"
)

// writePhoto creates a photo file with a fixed modification time.
func writePhoto(t *testing.T, dir, name string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("jpeg"), 0644); err != nil {
		t.Fatalf("WriteFile %s: %v", name, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Chtimes %s: %v", name, err)
	}
}

func TestRefreshStats_EmptyDirectory(t *testing.T) {
	ctrl, _ := newTestController(t, camera.Availability{Err: camera.ErrUnavailable})

	ctrl.RefreshStats()
	if ctrl.model.TotalCount != 0 {
		t.Errorf("total = %d, want 0", ctrl.model.TotalCount)
	}
	if ctrl.model.LastPhoto != "none" {
		t.Errorf("last photo = %q, want none", ctrl.model.LastPhoto)
	}
}

func TestRefreshStats_LatestByModTime(t *testing.T) {
	ctrl, _ := newTestController(t, camera.Availability{Err: camera.ErrUnavailable})
	dir := ctrl.cfg.OutputDir
	base := time.Now().Add(-time.Hour)

	writePhoto(t, dir, "photo_20260830_100000_001.jpg", base)
	writePhoto(t, dir, "photo_20260830_100200_003.jpg", base.Add(2*time.Minute))
	writePhoto(t, dir, "photo_20260830_100100_002.jpg", base.Add(time.Minute))

	ctrl.RefreshStats()
	if ctrl.model.TotalCount != 3 {
		t.Errorf("total = %d, want 3", ctrl.model.TotalCount)
	}
	if ctrl.model.LastPhoto != "photo_20260830_100200_003.jpg" {
		t.Errorf("last photo = %q, want the newest by mtime", ctrl.model.LastPhoto)
	}
}

func TestRefreshStats_IgnoresOtherFiles(t *testing.T) {
	ctrl, _ := newTestController(t, camera.Availability{Err: camera.ErrUnavailable})
	dir := ctrl.cfg.OutputDir
	now := time.Now()

	writePhoto(t, dir, "photo_20260830_100000_001.jpg", now.Add(-time.Minute))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "thumbs.jpg"), 0755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	ctrl.RefreshStats()
	if ctrl.model.TotalCount != 1 {
		t.Errorf("total = %d, want 1 (non-photos and directories ignored)", ctrl.model.TotalCount)
	}
	if ctrl.model.LastPhoto != "photo_20260830_100000_001.jpg" {
		t.Errorf("last photo = %q", ctrl.model.LastPhoto)
	}
}

func TestRefreshStats_Idempotent(t *testing.T) {
	ctrl, _ := newTestController(t, camera.Availability{Err: camera.ErrUnavailable})
	dir := ctrl.cfg.OutputDir
	base := time.Now().Add(-time.Hour)
	writePhoto(t, dir, "photo_20260830_100000_001.jpg", base)
	writePhoto(t, dir, "photo_20260830_100500_002.jpg", base.Add(5*time.Minute))

	ctrl.RefreshStats()
	total, last := ctrl.model.TotalCount, ctrl.model.LastPhoto

	ctrl.RefreshStats()
	if ctrl.model.TotalCount != total || ctrl.model.LastPhoto != last {
		t.Errorf("second refresh changed results: total %d->%d, last %q->%q",
			total, ctrl.model.TotalCount, last, ctrl.model.LastPhoto)
	}
}

func TestRefreshStats_CaseInsensitiveExtension(t *testing.T) {
	ctrl, _ := newTestController(t, camera.Availability{Err: camera.ErrUnavailable})
	writePhoto(t, ctrl.cfg.OutputDir, "IMG_0001.JPG", time.Now())

	ctrl.RefreshStats()
	if ctrl.model.TotalCount != 1 {
		t.Errorf("total = %d, want 1 (.JPG counts)", ctrl.model.TotalCount)
	}
}
