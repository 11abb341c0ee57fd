package scenetree

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
	"pgregory.net/rapid"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(0, 0, Rect{Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.Scrolling() {
		t.Error("new camera is scrolling")
	}
}

func TestCameraCenterMapsToViewportCenter(t *testing.T) {
	cam := NewCamera(100, 50, Rect{Width: 800, Height: 600})
	sx, sy := cam.WorldToScreen(100, 50)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(100,50) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraZoomScalesDistances(t *testing.T) {
	cam := NewCamera(0, 0, Rect{Width: 800, Height: 600})
	cam.ZoomBy(1)
	sx1, _ := cam.WorldToScreen(1, 0)
	sx0, _ := cam.WorldToScreen(0, 0)
	if !approxEqual(sx1-sx0, 2.0, epsilon) {
		t.Errorf("screen distance = %f, want 2.0", sx1-sx0)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cam := NewCamera(
			rapid.Float64Range(-1000, 1000).Draw(t, "camX"),
			rapid.Float64Range(-1000, 1000).Draw(t, "camY"),
			Rect{Width: 1280, Height: 800},
		)
		cam.ZoomBy(rapid.Float64Range(-1, 1).Draw(t, "zoom"))
		wx := rapid.Float64Range(-5000, 5000).Draw(t, "wx")
		wy := rapid.Float64Range(-5000, 5000).Draw(t, "wy")

		sx, sy := cam.WorldToScreen(wx, wy)
		gx, gy := cam.ScreenToWorld(sx, sy)
		if !approxEqual(gx, wx, 1e-6) || !approxEqual(gy, wy, 1e-6) {
			t.Fatalf("round trip (%v,%v) -> (%v,%v)", wx, wy, gx, gy)
		}
	})
}

func TestCameraZoomClamped(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cam := NewCamera(0, 0, Rect{Width: 100, Height: 100})
		steps := rapid.SliceOf(rapid.Float64Range(-10, 10)).Draw(t, "steps")
		for _, d := range steps {
			cam.ZoomBy(d)
			if cam.Zoom < MinZoom || cam.Zoom > MaxZoom {
				t.Fatalf("zoom %v escaped [%v, %v]", cam.Zoom, MinZoom, MaxZoom)
			}
		}
	})
}

func TestClampZoom(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{0.05, MinZoom},
		{-3, MinZoom},
		{5, MaxZoom},
		{math.Inf(1), MaxZoom},
		{math.NaN(), MinZoom},
	}
	for _, tt := range tests {
		if got := clampZoom(tt.in); got != tt.want {
			t.Errorf("clampZoom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCameraPanScreenDividesByZoom(t *testing.T) {
	cam := NewCamera(100, 100, Rect{Width: 800, Height: 600})
	cam.ZoomBy(1) // zoom 2
	cam.PanScreen(20, -10)
	if !approxEqual(cam.X, 90, epsilon) || !approxEqual(cam.Y, 105, epsilon) {
		t.Errorf("camera = (%v, %v), want (90, 105)", cam.X, cam.Y)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(0, 0, Rect{Width: 800, Height: 600})
	cam.ScrollTo(100, 200, 0.5, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("Scrolling() = false after ScrollTo")
	}
	cam.update(0.25)
	if !approxEqual(cam.X, 50, 1e-3) || !approxEqual(cam.Y, 100, 1e-3) {
		t.Errorf("midway = (%v, %v), want (50, 100)", cam.X, cam.Y)
	}
	cam.update(0.3)
	if cam.Scrolling() {
		t.Error("still scrolling after duration")
	}
	if !approxEqual(cam.X, 100, 1e-3) || !approxEqual(cam.Y, 200, 1e-3) {
		t.Errorf("end = (%v, %v), want (100, 200)", cam.X, cam.Y)
	}
	sx, sy := cam.WorldToScreen(100, 200)
	if !approxEqual(sx, 400, 1e-3) || !approxEqual(sy, 300, 1e-3) {
		t.Errorf("target on screen at (%v, %v), want viewport center", sx, sy)
	}
}

func TestCameraPanCancelsScroll(t *testing.T) {
	cam := NewCamera(0, 0, Rect{Width: 800, Height: 600})
	cam.ScrollTo(100, 100, 1, ease.Linear)
	cam.PanScreen(5, 5)
	if cam.Scrolling() {
		t.Error("PanScreen did not cancel the scroll")
	}
}

func TestCameraSetViewport(t *testing.T) {
	cam := NewCamera(0, 0, Rect{Width: 800, Height: 600})
	cam.SetViewport(Rect{Width: 400, Height: 200})
	sx, sy := cam.WorldToScreen(0, 0)
	if !approxEqual(sx, 200, epsilon) || !approxEqual(sy, 100, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%v, %v), want (200, 100)", sx, sy)
	}
}
