package textmeasure

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const defaultDPI = 72

// Font wraps a TrueType font for pixel-accurate width/height measurement,
// adapted from the teacher's internal/render.Font. Drawing and stroke
// helpers are dropped: this package only ever needs to answer "how big is
// this text", never to paint it.
type Font struct {
	tt     *truetype.Font
	sizePt float64
	dpi    float64
}

// LoadFont loads a .ttf file from disk at the given point size.
func LoadFont(path string, sizePt float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(data, sizePt)
}

// LoadFontFromBytes parses a TrueType font from memory, for embedded fonts.
func LoadFontFromBytes(data []byte, sizePt float64) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	f := &Font{tt: ttf, dpi: defaultDPI}
	return f.SetFontSizePt(sizePt), nil
}

// MustLoadFont loads a .ttf font from disk and panics on error, for static
// initialization at package level.
func MustLoadFont(path string, sizePt float64) *Font {
	f, err := LoadFont(path, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// MustLoadFontFromBytes parses a TrueType font from bytes and panics on
// error, for use with go:embed.
func MustLoadFontFromBytes(data []byte, sizePt float64) *Font {
	f, err := LoadFontFromBytes(data, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// SetDPI sets the font's DPI scaling. Defaults to 72 if <= 0.
func (f *Font) SetDPI(dpi float64) *Font {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	f.dpi = dpi
	return f
}

// SetFontSizePt sets the font size in points (1pt = 1/72 inch).
func (f *Font) SetFontSizePt(pt float64) *Font {
	if pt <= 0 {
		pt = 0.01
	}
	f.sizePt = pt
	return f
}

// HeightPt returns the font size in points.
func (f *Font) HeightPt() float64 { return f.sizePt }

// HeightPx returns the font size converted to pixels for the current DPI.
func (f *Font) HeightPx() float64 { return f.sizePt * f.dpi / 72.0 }

func (f *Font) cacheKey() string {
	return fmt.Sprintf("%p_%.3f_%.1f", f.tt, f.sizePt, f.dpi)
}

// face returns a truetype.Face configured with the current size and DPI,
// reusing a cached instance when available.
func (f *Font) face() font.Face {
	key := f.cacheKey()
	if face, ok := defaultFaceCache.get(key); ok {
		return face
	}
	face := truetype.NewFace(f.tt, &truetype.Options{
		Size:    f.sizePt,
		DPI:     f.dpi,
		Hinting: font.HintingNone,
	})
	defaultFaceCache.put(key, face)
	return face
}

// AscentPx returns the ascent (baseline to top) in pixels.
func (f *Font) AscentPx() float64 {
	m := f.face().Metrics()
	return unfix(m.Ascent)
}

// DescentPx returns the descent (baseline to bottom) in pixels.
func (f *Font) DescentPx() float64 {
	m := f.face().Metrics()
	return unfix(m.Descent)
}

// LineHeightPx returns the total line height (ascent + descent + leading)
// in pixels.
func (f *Font) LineHeightPx() float64 {
	m := f.face().Metrics()
	return unfix(m.Height)
}

// MeasureString measures the pixel width and line height of a single-line
// string. Height is always the font's line height, independent of s.
func (f *Font) MeasureString(s string) (w, h float64) {
	h = f.LineHeightPx()
	if s == "" {
		return 0, h
	}
	adv := font.MeasureString(f.face(), s)
	w = unfix(adv)
	return w, h
}
