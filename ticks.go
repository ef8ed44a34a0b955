package locus

import (
	"sort"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Tick is a single axis tick: a data-space value with its rendered label.
// Minor ticks carry the same fields but are drawn smaller.
type Tick struct {
	Value float32
	Label string
	Major bool
}

// Scale selects the tick generation policy for an axis. The three
// implementations are Linear, Log and SymLog; the interface is closed.
type Scale interface {
	isScale()
}

// Linear places evenly spaced ticks at multiples of a nice step.
type Linear struct{}

func (Linear) isScale() {}

// Log places major ticks at integer powers of Base. With IncludeMinor set
// and an integral part of at least 3, intermediate multiples within each
// decade are emitted as minor ticks.
type Log struct {
	Base         float32
	IncludeMinor bool
}

func (Log) isScale() {}

// SymLog is a symmetric log scale: linear inside [-LinThreshold,
// +LinThreshold] and logarithmic outside, which keeps zero and
// negative values representable. Base must exceed 1 and LinThreshold must
// be at least 1, otherwise no ticks are produced.
type SymLog struct {
	Base         float32
	LinThreshold float32
	IncludeMinor bool
}

func (SymLog) isScale() {}

// TickSpec configures tick generation. The zero value asks for an
// automatic linear scale. Step, when positive and finite, forces the
// linear separation instead of the computed nice step; the tick range is
// still derived from the automatic step first, so the forced separation
// subdivides or coarsens the same span.
type TickSpec struct {
	Scale    Scale
	MaxTicks int
	Step     float32
}

// TickSet is the result of tick generation. Step is the realized linear
// separation; log and symmetric log scales report a Step of zero.
type TickSet struct {
	Step  float32
	Ticks []Tick
}

// GenerateTicks produces the ticks covering [min, max] under spec. Swapped
// bounds are reordered; non-finite bounds yield an empty set.
func GenerateTicks(min, max float32, spec TickSpec) TickSet {
	if !isFinite(min) || !isFinite(max) {
		return TickSet{}
	}
	if max < min {
		min, max = max, min
	}
	maxTicks := spec.MaxTicks
	if maxTicks <= 0 {
		maxTicks = DefaultAxisTicks
	}
	switch s := spec.Scale.(type) {
	case Log:
		return TickSet{Ticks: logTicks(min, max, s.Base, s.IncludeMinor)}
	case SymLog:
		return TickSet{Ticks: symlogTicks(min, max, s, maxTicks)}
	default:
		return linearTicks(min, max, maxTicks, spec.Step)
	}
}

// linearSpacing chooses the nice step and snapped bounds for a linear
// scale: the step is the nice rounding of the span divided by the tick
// count, and the bounds snap outward to multiples of it. A degenerate span
// is widened to two units before fitting.
func linearSpacing(lo, hi float32, maxTicks int) (valMin, valMax, step float32) {
	if hi < lo {
		lo, hi = hi, lo
	}
	if math32.Abs(hi-lo) < epsilon {
		lo, hi = lo-1, hi+1
	}
	n := maxTicks
	if n < 2 {
		n = 2
	}
	step = NiceNumber(math32.Max((hi-lo)/float32(n-1), epsilon), true)
	valMin = math32.Floor(lo/step) * step
	valMax = math32.Ceil(hi/step) * step
	return valMin, valMax, step
}

// linearTicks emits ticks at every multiple of the step between the
// snapped bounds. A positive finite override replaces the step after the
// bounds are fixed.
func linearTicks(lo, hi float32, maxTicks int, override float32) TickSet {
	valMin, valMax, step := linearSpacing(lo, hi, maxTicks)
	if override > 0 && !math32.IsInf(override, 0) {
		step = override
	}

	k0 := int(math32.Round(valMin / step))
	k1 := int(math32.Round(valMax / step))
	decimals := decimalsForStep(step)

	ticks := make([]Tick, 0, k1-k0+1)
	for k := k0; k <= k1; k++ {
		v := float32(k) * step
		// Multiplying a negative index by the step can leave a tiny
		// residue where zero belongs; snap it so the label reads "0".
		if math32.Abs(v) < 1e-7*math32.Max(step, 1) {
			v = 0
		}
		ticks = append(ticks, Tick{Value: v, Label: formatTick(v, decimals), Major: true})
	}
	return TickSet{Step: step, Ticks: ticks}
}

// decimalsForStep returns how many fractional digits a label needs to
// distinguish consecutive multiples of step.
func decimalsForStep(step float32) int {
	if step >= 1 {
		return 0
	}
	return int(-math32.Floor(math32.Log10(step)))
}

// formatTick renders a tick value with the given number of decimals,
// trimming trailing zeros and a dangling decimal point. Negative zero is
// normalized to "0".
func formatTick(v float32, decimals int) string {
	s := strconv.FormatFloat(float64(v), 'f', decimals, 32)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// logTicks emits ticks for a log scale over [lo, hi). The lower bound is
// clamped to the smallest positive normal float before taking logarithms,
// but filtering uses the raw lo so a negative or zero bound still admits
// the small positive decades. Base must exceed 1 and hi must be positive.
func logTicks(lo, hi, base float32, includeMinor bool) []Tick {
	if base <= 1 || hi <= 0 {
		return nil
	}
	loPos := math32.Max(lo, minPositive)
	logBase := math32.Log(base)
	e0 := int(math32.Floor(math32.Log(loPos) / logBase))
	e1 := int(math32.Ceil(math32.Log(hi) / logBase))

	var ticks []Tick
	for e := e0; e <= e1; e++ {
		v := math32.Pow(base, float32(e))
		if v >= lo && v < hi {
			ticks = append(ticks, Tick{Value: v, Label: formatLogLabel(v), Major: true})
		}
		if !includeMinor || math32.Floor(base) < 3 || e == e1 {
			continue
		}
		for m := float32(2); m < math32.Floor(base); m++ {
			mv := m * v
			if mv >= lo && mv < hi {
				ticks = append(ticks, Tick{Value: mv, Label: formatLogLabel(mv), Major: false})
			}
		}
	}
	return ticks
}

// symlogTicks combines a linear core over [-t, t] with log wings beyond
// it. Core ticks are minor except zero and the hinge values; wing ticks
// keep their log majorness. The merged set is sorted and deduplicated
// where the zones meet.
func symlogTicks(lo, hi float32, s SymLog, maxTicks int) []Tick {
	if s.Base <= 1 || s.LinThreshold < 1 {
		return nil
	}
	t := s.LinThreshold

	var ticks []Tick
	coreLo := math32.Max(lo, -t)
	coreHi := math32.Min(hi, t)
	if coreLo <= coreHi {
		n := maxTicks
		if n < 3 {
			n = 3
		}
		if n > 7 {
			n = 7
		}
		for _, tk := range linearTicks(coreLo, coreHi, n, 0).Ticks {
			tk.Major = math32.Abs(tk.Value) < epsilon ||
				math32.Abs(math32.Abs(tk.Value)-t) < epsilon
			ticks = append(ticks, tk)
		}
	}
	if hi > t {
		ticks = append(ticks, logTicks(t, hi, s.Base, s.IncludeMinor)...)
	}
	if lo < -t {
		for _, tk := range logTicks(t, -lo, s.Base, s.IncludeMinor) {
			tk.Value = -tk.Value
			if tk.Label != "" {
				tk.Label = "-" + tk.Label
			}
			ticks = append(ticks, tk)
		}
	}

	sort.SliceStable(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	out := ticks[:0]
	for i, tk := range ticks {
		if i > 0 && math32.Abs(tk.Value-out[len(out)-1].Value) < 1e-6 {
			continue
		}
		out = append(out, tk)
	}
	return out
}

// formatLogLabel renders a log tick label: plain decimal notation for
// moderate magnitudes, compact scientific notation ("1e3", "2.5e-4")
// otherwise.
func formatLogLabel(v float32) string {
	if v >= 0.01 && v < 1000 {
		return formatTick(v, 6)
	}
	s := strconv.FormatFloat(float64(v), 'e', -1, 32)
	mant, exp, _ := strings.Cut(s, "e")
	exp = strings.TrimPrefix(exp, "+")
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimPrefix(exp, "-"), "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mant + "e" + exp
}

// isFinite reports whether f is neither NaN nor infinite.
func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
