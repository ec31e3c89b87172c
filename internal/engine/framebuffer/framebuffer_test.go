package framebuffer

import "testing"

func TestClampSize(t *testing.T) {
	tests := []struct {
		w, h         int32
		wantW, wantH int32
	}{
		{1080, 720, 1080, 720},
		{0, 720, 1, 720},
		{640, -5, 640, 1},
		{0, 0, 1, 1},
	}
	for _, tt := range tests {
		w, h := clampSize(tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("clampSize(%d, %d) = %d, %d; want %d, %d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}
