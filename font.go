package locus

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontOnce sync.Once
	fontTTF  *opentype.Font
	fontErr  error

	faceMu sync.Mutex
	faces  = map[float32]font.Face{}
)

// chartFace returns a cached face of the built-in font at the given
// size. The font is parsed on first use.
func chartFace(size float32) (font.Face, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fontErr
	}

	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(fontTTF, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	faces[size] = f
	return f, nil
}

// MeasureString returns the extent of s at the given size in the
// built-in font. Every backend measures through it so layout decisions
// agree across render targets.
func MeasureString(s string, size float32) (width, height float32) {
	face, err := chartFace(size)
	if err != nil {
		return 0, 0
	}
	adv := font.MeasureString(face, s)
	m := face.Metrics()
	return float32(adv) / 64, float32(m.Ascent+m.Descent) / 64
}
