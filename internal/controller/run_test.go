package controller

import (
	"errors"
	"testing"
)

func TestHandleKey_QuitTokens(t *testing.T) {
	for _, key := range []rune{'q', 'Q', keyInterrupt} {
		ctrl, _ := initReady(t, available(&fakeCamera{}))
		ctrl.running = true
		ctrl.HandleKey(key)
		if ctrl.running {
			t.Errorf("key %q should clear the running flag", key)
		}
	}
}

func TestHandleKey_CaseInsensitiveRefresh(t *testing.T) {
	ctrl, _ := initReady(t, available(&fakeCamera{}))
	if err := ctrl.CapturePhoto(); err != nil {
		t.Fatalf("CapturePhoto: %v", err)
	}
	ctrl.model.TotalCount = 0 // stale on purpose

	ctrl.HandleKey('R')
	if ctrl.model.TotalCount != 1 {
		t.Errorf("total = %d, want 1 after refresh", ctrl.model.TotalCount)
	}
}

func TestHandleKey_UnknownKeyStillRenders(t *testing.T) {
	ctrl, rend := initReady(t, available(&fakeCamera{}))
	before := len(rend.frames)

	ctrl.HandleKey('x')
	if len(rend.frames) != before+1 {
		t.Errorf("renders = %d, want %d (loop redraws after every token)", len(rend.frames), before+1)
	}
	if ctrl.model.SessionCount != 0 {
		t.Errorf("unknown key must not capture, session count = %d", ctrl.model.SessionCount)
	}
}

func TestRun_CaptureRefreshQuit(t *testing.T) {
	cam := &fakeCamera{}
	ctrl, _ := initReady(t, available(cam))

	ctrl.Run(&scriptedKeys{keys: []rune{' ', 'r', 'q'}})

	if ctrl.model.SessionCount != 1 {
		t.Errorf("session count = %d, want 1", ctrl.model.SessionCount)
	}
	if ctrl.model.TotalCount != 1 {
		t.Errorf("total count = %d, want 1", ctrl.model.TotalCount)
	}
	if cam.stops != 1 {
		t.Errorf("stop called %d times, want exactly 1", cam.stops)
	}
}

func TestRun_ExitsOnInputError(t *testing.T) {
	cam := &fakeCamera{}
	ctrl, _ := initReady(t, available(cam))

	// Empty script: first read reports EOF and the loop must wind down.
	ctrl.Run(&scriptedKeys{})
	if cam.stops != 1 {
		t.Errorf("stop called %d times, want 1", cam.stops)
	}
}

func TestRun_StopErrorSuppressed(t *testing.T) {
	cam := &fakeCamera{stopErr: errors.New("device wedged")}
	ctrl, _ := initReady(t, available(cam))

	// Must return normally despite the stop failure.
	ctrl.Run(&scriptedKeys{keys: []rune{'q'}})
	if cam.stops != 1 {
		t.Errorf("stop called %d times, want 1", cam.stops)
	}
}

func TestShutdown_WithoutCamera(t *testing.T) {
	ctrl, _ := newTestController(t, available(&fakeCamera{}))
	// Camera never acquired; shutdown is a no-op.
	ctrl.Shutdown()
}
