package locus

import "testing"

func TestAnchorOffset(t *testing.T) {
	const w, h = 40, 10

	tests := []struct {
		name   string
		anchor Anchor
		want   ScreenPoint
	}{
		{
			name:   "top left is identity",
			anchor: AnchorTopLeft,
			want:   SPt(0, 0),
		},
		{
			name:   "top center",
			anchor: AnchorTopCenter,
			want:   SPt(-20, 0),
		},
		{
			name:   "center",
			anchor: AnchorCenter,
			want:   SPt(-20, -5),
		},
		{
			name:   "bottom center",
			anchor: AnchorBottomCenter,
			want:   SPt(-20, -10),
		},
		{
			name:   "left middle",
			anchor: AnchorLeftMiddle,
			want:   SPt(0, -5),
		},
		{
			name:   "right middle",
			anchor: AnchorRightMiddle,
			want:   SPt(-40, -5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnchorOffset(tt.anchor, w, h); got != tt.want {
				t.Errorf("AnchorOffset(%+v) = %v, want %v", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestSizeOrDefault(t *testing.T) {
	if got := (TextStyle{}).SizeOrDefault(); got != DefaultTextSize {
		t.Errorf("zero style size = %v, want %v", got, DefaultTextSize)
	}
	if got := (TextStyle{Size: 9}).SizeOrDefault(); got != 9 {
		t.Errorf("explicit size = %v, want 9", got)
	}
}
