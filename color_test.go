package locus

import "testing"

func absDiff32(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}

func colorClose(a, b RGBA, tol float32) bool {
	return absDiff32(a.R, b.R) <= tol &&
		absDiff32(a.G, b.G) <= tol &&
		absDiff32(a.B, b.B) <= tol &&
		absDiff32(a.A, b.A) <= tol
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{
			name: "opaque red",
			hex:  "#ff0000",
			want: RGBA{1, 0, 0, 1},
		},
		{
			name: "no hash prefix",
			hex:  "00ff00",
			want: RGBA{0, 1, 0, 1},
		},
		{
			name: "short form",
			hex:  "#37a",
			want: RGBA{0x33 / 255.0, 0x77 / 255.0, 0xaa / 255.0, 1},
		},
		{
			name: "with alpha",
			hex:  "#00000080",
			want: RGBA{0, 0, 0, 128 / 255.0},
		},
		{
			name: "matplotlib blue",
			hex:  "#1f77b4",
			want: RGBA{31 / 255.0, 119 / 255.0, 180 / 255.0, 1},
		},
		{
			name: "invalid length falls back to black",
			hex:  "#12345",
			want: RGBA{0, 0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorClose(got, tt.want, 1e-3) {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Black.Lerp(White, 0.5); !colorClose(got, RGBA{0.5, 0.5, 0.5, 1}, 1e-6) {
		t.Errorf("Black.Lerp(White, 0.5) = %v, want mid gray", got)
	}
	if got := Red.Lerp(Blue, 0); got != Red {
		t.Errorf("Lerp at t=0 = %v, want %v", got, Red)
	}
	if got := Red.Lerp(Blue, 1); got != Blue {
		t.Errorf("Lerp at t=1 = %v, want %v", got, Blue)
	}
}

func TestWithAlpha(t *testing.T) {
	got := Red.WithAlpha(0.3)
	want := RGBA{1, 0, 0, 0.3}
	if got != want {
		t.Errorf("Red.WithAlpha(0.3) = %v, want %v", got, want)
	}
}

func TestOr(t *testing.T) {
	def := Hex("#1f77b4")
	if got := (RGBA{}).Or(def); got != def {
		t.Errorf("zero.Or(def) = %v, want %v", got, def)
	}
	if got := Red.Or(def); got != Red {
		t.Errorf("Red.Or(def) = %v, want %v", got, Red)
	}
}

func TestFromColorRoundtrip(t *testing.T) {
	original := RGBA{0.8, 0.3, 0.5, 0.9}
	roundtripped := FromColor(original.Color())
	// One byte of quantization each way.
	if !colorClose(original, roundtripped, 1.5/255) {
		t.Errorf("roundtrip: %v -> %v", original, roundtripped)
	}
}

func TestPaletteColorWraps(t *testing.T) {
	p := Palette{Red, Green, Blue}
	tests := []struct {
		name string
		i    int
		want RGBA
	}{
		{name: "first", i: 0, want: Red},
		{name: "last", i: 2, want: Blue},
		{name: "wraps forward", i: 3, want: Red},
		{name: "wraps twice", i: 7, want: Green},
		{name: "wraps negative", i: -1, want: Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Color(tt.i); got != tt.want {
				t.Errorf("Color(%d) = %v, want %v", tt.i, got, tt.want)
			}
		})
	}

	if got := (Palette{}).Color(5); got != Black {
		t.Errorf("empty palette Color = %v, want black", got)
	}
}

func TestPaletteRamp(t *testing.T) {
	p := Palette{Red, Green, Blue}

	if got := p.Ramp(0); !colorClose(got, Red, 1e-3) {
		t.Errorf("Ramp(0) = %v, want %v", got, Red)
	}
	if got := p.Ramp(1); !colorClose(got, Blue, 1e-3) {
		t.Errorf("Ramp(1) = %v, want %v", got, Blue)
	}
	if got := p.Ramp(-0.5); !colorClose(got, Red, 1e-3) {
		t.Errorf("Ramp clamps low: got %v, want %v", got, Red)
	}
	if got := p.Ramp(1.5); !colorClose(got, Blue, 1e-3) {
		t.Errorf("Ramp clamps high: got %v, want %v", got, Blue)
	}

	mid := p.Ramp(0.25)
	if colorClose(mid, Red, 1e-3) || colorClose(mid, Green, 1e-3) {
		t.Errorf("Ramp(0.25) = %v, want a blend between %v and %v", mid, Red, Green)
	}
	for _, v := range []float32{mid.R, mid.G, mid.B, mid.A} {
		if v < 0 || v > 1 {
			t.Errorf("Ramp(0.25) = %v, components escaped [0, 1]", mid)
		}
	}

	single := Palette{Red}
	if got := single.Ramp(0.7); got != Red {
		t.Errorf("single color Ramp = %v, want %v", got, Red)
	}
	if got := (Palette{}).Ramp(0.5); got != Black {
		t.Errorf("empty palette Ramp = %v, want black", got)
	}
}
