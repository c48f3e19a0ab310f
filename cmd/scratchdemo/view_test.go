package main

import (
	"image"
	"testing"
)

func TestCardArea(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		cols, rows int
		want       image.Rectangle
	}{
		{"centered", 80, 25, 30, 15, image.Rect(25, 5, 55, 20)},
		{"odd remainder", 81, 26, 30, 15, image.Rect(25, 5, 55, 20)},
		{"larger than screen", 20, 10, 30, 15, image.Rect(0, 0, 30, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cardArea(tt.w, tt.h, tt.cols, tt.rows); got != tt.want {
				t.Errorf("cardArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if got := clampInt(-3, 0, 9); got != 0 {
		t.Errorf("clampInt(-3) = %d", got)
	}
	if got := clampInt(12, 0, 9); got != 9 {
		t.Errorf("clampInt(12) = %d", got)
	}
	if got := clampInt(4, 0, 9); got != 4 {
		t.Errorf("clampInt(4) = %d", got)
	}
}
