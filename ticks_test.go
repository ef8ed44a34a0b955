package locus

import (
	"strconv"
	"strings"
	"testing"

	"github.com/chewxy/math32"
)

func TestLinearTicksExact(t *testing.T) {
	tests := []struct {
		name       string
		min, max   float32
		spec       TickSpec
		wantStep   float32
		wantValues []float32
		wantLabels []string
	}{
		{
			name:       "integer span",
			min:        0,
			max:        10,
			spec:       TickSpec{MaxTicks: 11},
			wantStep:   1,
			wantValues: []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			wantLabels: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
		},
		{
			name:       "fractional step",
			min:        -1,
			max:        1,
			spec:       TickSpec{MaxTicks: 5},
			wantStep:   0.5,
			wantValues: []float32{-1, -0.5, 0, 0.5, 1},
			wantLabels: []string{"-1", "-0.5", "0", "0.5", "1"},
		},
		{
			name:       "swapped bounds",
			min:        10,
			max:        0,
			spec:       TickSpec{MaxTicks: 11},
			wantStep:   1,
			wantValues: []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			wantLabels: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
		},
		{
			name:       "explicit step override",
			min:        0,
			max:        10,
			spec:       TickSpec{MaxTicks: 11, Step: 2.5},
			wantStep:   2.5,
			wantValues: []float32{0, 2.5, 5, 7.5, 10},
			wantLabels: []string{"0", "2", "5", "8", "10"},
		},
		{
			name:       "degenerate range widens",
			min:        5,
			max:        5,
			spec:       TickSpec{MaxTicks: 5},
			wantStep:   0.5,
			wantValues: []float32{4, 4.5, 5, 5.5, 6},
			wantLabels: []string{"4", "4.5", "5", "5.5", "6"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateTicks(tt.min, tt.max, tt.spec)
			if got.Step != tt.wantStep {
				t.Errorf("Step = %v, want %v", got.Step, tt.wantStep)
			}
			if len(got.Ticks) != len(tt.wantValues) {
				t.Fatalf("got %d ticks, want %d", len(got.Ticks), len(tt.wantValues))
			}
			for i, tk := range got.Ticks {
				if math32.Abs(tk.Value-tt.wantValues[i]) > 1e-5 {
					t.Errorf("tick %d value = %v, want %v", i, tk.Value, tt.wantValues[i])
				}
				if tk.Label != tt.wantLabels[i] {
					t.Errorf("tick %d label = %q, want %q", i, tk.Label, tt.wantLabels[i])
				}
				if !tk.Major {
					t.Errorf("tick %d is minor, linear ticks are all major", i)
				}
			}
		})
	}
}

func TestLinearTickProperties(t *testing.T) {
	ranges := []struct {
		name     string
		min, max float32
		maxTicks int
	}{
		{"small fractions", 0.001, 0.0234, 8},
		{"negative span", -512, -1, 15},
		{"mixed sign", -3.7, 19.2, 15},
		{"wide span", -1e5, 3e6, 10},
	}
	for _, tt := range ranges {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateTicks(tt.min, tt.max, TickSpec{MaxTicks: tt.maxTicks})
			if len(got.Ticks) < 2 {
				t.Fatalf("got %d ticks, want at least 2", len(got.Ticks))
			}
			for i, tk := range got.Ticks {
				if i > 0 {
					dv := tk.Value - got.Ticks[i-1].Value
					if math32.Abs(dv-got.Step) > 1e-3*got.Step {
						t.Errorf("tick spacing %v at %d, want %v", dv, i, got.Step)
					}
				}
				if tk.Label == "-0" {
					t.Errorf("tick %d label is %q", i, tk.Label)
				}
				if strings.HasSuffix(tk.Label, ".") {
					t.Errorf("tick %d label %q has a dangling point", i, tk.Label)
				}
				if strings.Contains(tk.Label, ".") && strings.HasSuffix(tk.Label, "0") {
					t.Errorf("tick %d label %q has trailing zeros", i, tk.Label)
				}
				parsed, err := strconv.ParseFloat(tk.Label, 32)
				if err != nil {
					t.Fatalf("tick %d label %q does not parse: %v", i, tk.Label, err)
				}
				if math32.Abs(float32(parsed)-tk.Value) > got.Step/2+1e-6 {
					t.Errorf("tick %d label %q parses to %v, value is %v",
						i, tk.Label, parsed, tk.Value)
				}
			}
		})
	}
}

func TestGenerateTicksNonFinite(t *testing.T) {
	if got := GenerateTicks(math32.NaN(), 10, TickSpec{}); len(got.Ticks) != 0 {
		t.Errorf("NaN bound produced %d ticks, want 0", len(got.Ticks))
	}
	if got := GenerateTicks(0, math32.Inf(1), TickSpec{}); len(got.Ticks) != 0 {
		t.Errorf("infinite bound produced %d ticks, want 0", len(got.Ticks))
	}
}

func TestLogTicks(t *testing.T) {
	got := GenerateTicks(1, 1000, TickSpec{Scale: Log{Base: 10}})
	wantLabels := []string{"1", "10", "100"}
	if len(got.Ticks) != len(wantLabels) {
		t.Fatalf("got %d ticks, want %d", len(got.Ticks), len(wantLabels))
	}
	if got.Step != 0 {
		t.Errorf("log scale Step = %v, want 0", got.Step)
	}
	for i, tk := range got.Ticks {
		if tk.Label != wantLabels[i] {
			t.Errorf("tick %d label = %q, want %q", i, tk.Label, wantLabels[i])
		}
		if !tk.Major {
			t.Errorf("tick %d is minor, want major", i)
		}
	}
}

func TestLogTicksProperties(t *testing.T) {
	const base = 10
	lo, hi := float32(0.004), float32(5000)
	got := GenerateTicks(lo, hi, TickSpec{Scale: Log{Base: base, IncludeMinor: true}})
	if len(got.Ticks) == 0 {
		t.Fatal("no ticks generated")
	}
	logBase := math32.Log(base)
	for i, tk := range got.Ticks {
		if tk.Value < lo || tk.Value >= hi {
			t.Errorf("tick %d value %v outside [%v, %v)", i, tk.Value, lo, hi)
		}
		if i > 0 && tk.Value <= got.Ticks[i-1].Value {
			t.Errorf("ticks not ascending at %d: %v then %v", i, got.Ticks[i-1].Value, tk.Value)
		}
		if tk.Major {
			e := math32.Log(tk.Value) / logBase
			if math32.Abs(e-math32.Round(e)) > 1e-3 {
				t.Errorf("major tick %v is not a power of %v", tk.Value, float32(base))
			}
		}
	}
	minors := 0
	for _, tk := range got.Ticks {
		if !tk.Major {
			minors++
		}
	}
	if minors == 0 {
		t.Error("IncludeMinor produced no minor ticks for base 10")
	}
}

func TestLogTicksSmallBaseHasNoMinors(t *testing.T) {
	got := GenerateTicks(1, 100, TickSpec{Scale: Log{Base: 2.5, IncludeMinor: true}})
	for i, tk := range got.Ticks {
		if !tk.Major {
			t.Errorf("tick %d is minor, base below 3 has no minor ticks", i)
		}
	}
}

func TestLogTicksInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		min, max float32
		scale    Log
	}{
		{"base one", 1, 100, Log{Base: 1}},
		{"base below one", 1, 100, Log{Base: 0.5}},
		{"non-positive high", -10, 0, Log{Base: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateTicks(tt.min, tt.max, TickSpec{Scale: tt.scale})
			if len(got.Ticks) != 0 {
				t.Errorf("got %d ticks, want 0", len(got.Ticks))
			}
		})
	}
}

func TestLogTickLabels(t *testing.T) {
	got := GenerateTicks(9e-5, 0.05, TickSpec{Scale: Log{Base: 10}})
	wantLabels := []string{"1e-4", "1e-3", "0.01"}
	if len(got.Ticks) != len(wantLabels) {
		t.Fatalf("got %d ticks, want %d", len(got.Ticks), len(wantLabels))
	}
	for i, tk := range got.Ticks {
		if tk.Label != wantLabels[i] {
			t.Errorf("tick %d label = %q, want %q", i, tk.Label, wantLabels[i])
		}
	}

	got = GenerateTicks(1000, 1e6, TickSpec{Scale: Log{Base: 10}})
	wantLabels = []string{"1e3", "1e4", "1e5"}
	if len(got.Ticks) != len(wantLabels) {
		t.Fatalf("got %d ticks, want %d", len(got.Ticks), len(wantLabels))
	}
	for i, tk := range got.Ticks {
		if tk.Label != wantLabels[i] {
			t.Errorf("tick %d label = %q, want %q", i, tk.Label, wantLabels[i])
		}
	}
}

func TestSymLogTicks(t *testing.T) {
	got := GenerateTicks(-100, 100, TickSpec{
		Scale:    SymLog{Base: 10, LinThreshold: 10},
		MaxTicks: 15,
	})
	wantValues := []float32{-10, -5, 0, 5, 10}
	wantMajor := []bool{true, false, true, false, true}
	if len(got.Ticks) != len(wantValues) {
		t.Fatalf("got %d ticks, want %d", len(got.Ticks), len(wantValues))
	}
	for i, tk := range got.Ticks {
		if math32.Abs(tk.Value-wantValues[i]) > 1e-5 {
			t.Errorf("tick %d value = %v, want %v", i, tk.Value, wantValues[i])
		}
		if tk.Major != wantMajor[i] {
			t.Errorf("tick %d major = %v, want %v", i, tk.Major, wantMajor[i])
		}
	}
}

func TestSymLogInsideThreshold(t *testing.T) {
	got := GenerateTicks(-5, 5, TickSpec{
		Scale:    SymLog{Base: 10, LinThreshold: 10},
		MaxTicks: 15,
	})
	majors := 0
	for i, tk := range got.Ticks {
		if math32.Abs(tk.Value) > 10 {
			t.Errorf("tick %d value %v beyond the linear threshold, wings expected empty",
				i, tk.Value)
		}
		if tk.Major {
			majors++
			if math32.Abs(tk.Value) > epsilon {
				t.Errorf("major tick at %v, only zero is major inside the threshold", tk.Value)
			}
		}
	}
	if majors != 1 {
		t.Errorf("got %d major ticks, want 1 (zero)", majors)
	}
}

func TestSymLogOrderedWithoutDuplicates(t *testing.T) {
	ranges := []struct {
		name     string
		min, max float32
	}{
		{"wide symmetric", -1e4, 1e4},
		{"positive heavy", -20, 1e5},
		{"negative heavy", -1e5, 3},
	}
	for _, tt := range ranges {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateTicks(tt.min, tt.max, TickSpec{
				Scale:    SymLog{Base: 10, LinThreshold: 10, IncludeMinor: true},
				MaxTicks: 15,
			})
			if len(got.Ticks) == 0 {
				t.Fatal("no ticks generated")
			}
			for i := 1; i < len(got.Ticks); i++ {
				dv := got.Ticks[i].Value - got.Ticks[i-1].Value
				if dv < 1e-6 {
					t.Errorf("ticks %d and %d too close: %v then %v",
						i-1, i, got.Ticks[i-1].Value, got.Ticks[i].Value)
				}
			}
		})
	}
}

func TestSymLogInvalidInput(t *testing.T) {
	if got := GenerateTicks(-10, 10, TickSpec{Scale: SymLog{Base: 1, LinThreshold: 10}}); len(got.Ticks) != 0 {
		t.Errorf("base 1 produced %d ticks, want 0", len(got.Ticks))
	}
	if got := GenerateTicks(-10, 10, TickSpec{Scale: SymLog{Base: 10, LinThreshold: 0.5}}); len(got.Ticks) != 0 {
		t.Errorf("threshold below 1 produced %d ticks, want 0", len(got.Ticks))
	}
}

func TestSymLogNegativeWingLabels(t *testing.T) {
	got := GenerateTicks(-1e4, 1e4, TickSpec{
		Scale:    SymLog{Base: 10, LinThreshold: 10},
		MaxTicks: 15,
	})
	for _, tk := range got.Ticks {
		if tk.Value < -10-epsilon {
			if !strings.HasPrefix(tk.Label, "-") {
				t.Errorf("negative wing tick %v has label %q without sign", tk.Value, tk.Label)
			}
		}
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		name     string
		v        float32
		decimals int
		want     string
	}{
		{"integer", 42, 0, "42"},
		{"trims zeros", 1.5, 3, "1.5"},
		{"trims point", 2, 2, "2"},
		{"negative zero", -0.0001, 2, "0"},
		{"keeps needed digits", 0.25, 2, "0.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTick(tt.v, tt.decimals); got != tt.want {
				t.Errorf("formatTick(%v, %d) = %q, want %q", tt.v, tt.decimals, got, tt.want)
			}
		})
	}
}
