package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNewFitsWorld(t *testing.T) {
	cam := New(800, 600, 1600, 800)

	// min(800/1600, 600/800)
	if !near(cam.MinZoom, 0.5) || cam.Zoom != cam.MinZoom {
		t.Errorf("zoom = %v (min %v), want 0.5", cam.Zoom, cam.MinZoom)
	}
	if cam.X != 800 || cam.Y != 400 {
		t.Errorf("centre = (%v, %v), want (800, 400)", cam.X, cam.Y)
	}
	sx, sy := cam.WorldToScreen(800, 400)
	if !near(sx, 400) || !near(sy, 300) {
		t.Errorf("world centre at screen (%v, %v), want (400, 300)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 1280, 720)
	cam.SetZoom(2)
	cam.X, cam.Y = 100, 650

	for _, p := range []Point{{640, 360}, {10, 10}, {1270, 700}} {
		wx, wy := cam.ScreenToWorld(p.X, p.Y)
		if wx < 0 || wx >= cam.WorldW || wy < 0 || wy >= cam.WorldH {
			t.Errorf("(%v, %v) mapped outside the world: (%v, %v)", p.X, p.Y, wx, wy)
		}
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, p.X) || !near(sy, p.Y) {
			t.Errorf("roundtrip (%v, %v) -> (%v, %v) -> (%v, %v)", p.X, p.Y, wx, wy, sx, sy)
		}
	}
}

func TestWorldToScreenTakesShortWay(t *testing.T) {
	cam := New(1280, 720, 1280, 720)
	cam.SetZoom(2)
	cam.X = 50

	// 1250 is 80 units left of the centre across the seam.
	sx, _ := cam.WorldToScreen(1250, cam.Y)
	if !near(sx, 640-160) {
		t.Errorf("sx = %v, want %v", sx, 640-160)
	}
}

func TestPanWraps(t *testing.T) {
	cam := New(1280, 720, 1280, 720)
	cam.X = 100
	cam.Pan(-200, 0)
	if !near(cam.X, 1180) {
		t.Errorf("X = %v, want 1180", cam.X)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 1280, 720)
	cam.SetZoom(0.1)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("zoom = %v, want min %v", cam.Zoom, cam.MinZoom)
	}
	cam.SetZoom(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("zoom = %v, want max %v", cam.Zoom, cam.MaxZoom)
	}
}

func TestZoomAtKeepsCursorPoint(t *testing.T) {
	cam := New(1280, 720, 1280, 720)
	wx, wy := cam.ScreenToWorld(300, 200)
	cam.ZoomAt(2, 300, 200)

	if cam.Zoom != 2 {
		t.Fatalf("zoom = %v, want 2", cam.Zoom)
	}
	gx, gy := cam.ScreenToWorld(300, 200)
	if !near(gx, wx) || !near(gy, wy) {
		t.Errorf("point under cursor moved from (%v, %v) to (%v, %v)", wx, wy, gx, gy)
	}
}

func TestCopiesAtSeam(t *testing.T) {
	cam := New(1280, 720, 1280, 720)

	tests := []struct {
		name   string
		x, y   float32
		copies int
	}{
		{"middle", 640, 360, 1},
		{"left edge", 2, 360, 2},
		{"bottom edge", 640, 718, 2},
		{"corner", 2, 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(cam.Copies(tt.x, tt.y, 5)); got != tt.copies {
				t.Errorf("copies = %d, want %d", got, tt.copies)
			}
		})
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(1)

	// View spans (640, 360) to (1920, 1080).
	if !cam.IsVisible(1280, 720, 10) {
		t.Error("centre should be visible")
	}
	if cam.IsVisible(2400, 1300, 10) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(600, 720, 100) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestFollowConverges(t *testing.T) {
	cam := New(1280, 720, 1280, 720)
	for i := 0; i < 200; i++ {
		cam.Follow(10, 20)
	}
	if !near(cam.X, 10) || !near(cam.Y, 20) {
		t.Errorf("centre = (%v, %v), want (10, 20)", cam.X, cam.Y)
	}
}
