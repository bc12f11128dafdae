package utils

import "testing"

func TestPointInRect(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{name: "点在矩形内部", px: 50, py: 50, want: true},
		{name: "点在矩形外部（右侧）", px: 150, py: 50, want: false},
		{name: "点在矩形外部（下方）", px: 50, py: 150, want: false},
		{name: "点在矩形外部（左侧）", px: -10, py: 50, want: false},
		{name: "点在矩形外部（上方）", px: 50, py: -10, want: false},
		{name: "点在左上角（边界）", px: 0, py: 0, want: true},
		{name: "点在右下角（边界）", px: 100, py: 100, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.px, tt.py, 0, 0, 100, 100); got != tt.want {
				t.Errorf("PointInRect(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}
