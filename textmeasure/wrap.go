package textmeasure

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// WrapMode selects how a line of text that exceeds maxWidth is broken,
// mirroring the teacher's instructions.Text WrapMode.
type WrapMode int

const (
	// WrapByWord breaks lines at whitespace boundaries; a single word wider
	// than the line is split at grapheme-cluster boundaries.
	WrapByWord WrapMode = iota
	// WrapBySymbol breaks lines at grapheme-cluster level, optionally
	// inserting a hyphenation symbol at a word boundary.
	WrapBySymbol
)

// wrapText splits text into lines that each fit within maxWidth under
// font, using mode. maxWidth <= 0 disables wrapping (single line per
// paragraph). Adapted from the teacher's wrapTextScaled, with per-line
// scaling and the maxLines/ellipsis truncation removed: a measurement
// callback has no rendering budget to enforce, only a size to report.
func wrapText(text string, font *Font, maxWidth float64, mode WrapMode, wrapSymbol string) []string {
	text = normalizeNewlines(text)
	if maxWidth <= 0 {
		return strings.Split(text, "\n")
	}
	if wrapSymbol == "" {
		wrapSymbol = "-"
	}

	var out []string
	for _, p := range strings.Split(text, "\n") {
		if p == "" {
			out = append(out, "")
			continue
		}
		if mode == WrapBySymbol {
			out = append(out, wrapParagraphBySymbols(p, font, maxWidth, wrapSymbol)...)
		} else {
			out = append(out, wrapParagraphByWords(p, font, maxWidth, wrapSymbol)...)
		}
	}
	return out
}

func measureCached(cache map[string]float64, f *Font, s string) float64 {
	if s == "" {
		return 0
	}
	if w, ok := cache[s]; ok {
		return w
	}
	w, _ := f.MeasureString(s)
	if math.IsNaN(w) || w < 0 {
		w = 0
	}
	cache[s] = w
	return w
}

// wrapParagraphByWords wraps a paragraph at word boundaries, falling back
// to a progressive grapheme split for any single word wider than
// maxWidth.
func wrapParagraphByWords(p string, font *Font, maxWidth float64, wrapSymbol string) []string {
	words := splitWordsPreserveNBSP(p)
	if len(words) == 0 {
		return []string{""}
	}

	cache := make(map[string]float64)
	var lines []string

	i := 0
	for i < len(words) {
		if measureCached(cache, font, words[i]) > maxWidth {
			lines = append(lines, splitLongTokenProgressive(words[i], font, maxWidth, wrapSymbol, cache)...)
			i++
			continue
		}

		rem := words[i:]
		wW := make([]float64, len(rem))
		for k := range rem {
			wW[k] = measureCached(cache, font, rem[k])
		}
		spaceW := measureCached(cache, font, " ")
		pref := make([]float64, len(rem)+1)
		for k := 1; k <= len(rem); k++ {
			pref[k] = pref[k-1] + wW[k-1]
			if k > 1 {
				pref[k] += spaceW
			}
		}
		widthOf := func(a, b int) float64 {
			if a >= b {
				return 0
			}
			return pref[b] - pref[a]
		}

		lo, hi := 1, len(rem)
		for lo <= hi {
			mid := (lo + hi) >> 1
			if widthOf(0, mid) <= maxWidth {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		count := hi
		if count < 1 {
			count = 1
		}
		lines = append(lines, strings.Join(rem[:count], " "))
		i += count
	}

	return lines
}

// wrapParagraphBySymbols wraps a paragraph by grapheme clusters, inserting
// wrapSymbol at a break inside a word boundary when it still fits.
func wrapParagraphBySymbols(p string, font *Font, maxWidth float64, wrapSymbol string) []string {
	clusters, offs := splitGraphemes(p)
	if len(clusters) == 0 {
		return []string{""}
	}

	cache := make(map[string]float64)
	var lines []string

	start := 0
	for start < len(clusters) {
		lo, hi := start+1, len(clusters)
		best := start
		for lo <= hi {
			mid := (lo + hi) >> 1
			cand := p[offs[start]:offs[mid]]
			if measureCached(cache, font, cand) <= maxWidth {
				best = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}

		end := best
		if end == start {
			end = start + 1
		}
		line := p[offs[start]:offs[end]]

		if end < len(clusters) && wrapSymbol != "" {
			prevLast := lastBaseRune(line)
			nextFirst := firstBaseRune(clusters[end])
			if isWordBaseRune(prevLast) && isWordBaseRune(nextFirst) {
				if measureCached(cache, font, line+wrapSymbol) > maxWidth && end > start+1 {
					end--
					line = p[offs[start]:offs[end]]
				}
				if measureCached(cache, font, line+wrapSymbol) <= maxWidth {
					line += wrapSymbol
				}
			}
		}

		lines = append(lines, trimRightSpacesNBSP(line))
		start = end
	}

	return lines
}

// splitLongTokenProgressive splits a single overlong token into
// grapheme-sized chunks that each fit under maxWidth.
func splitLongTokenProgressive(token string, font *Font, maxWidth float64, wrapSymbol string, cache map[string]float64) []string {
	var out []string
	if token == "" {
		return out
	}

	clusters, offs := splitGraphemes(token)
	start := 0
	for start < len(clusters) {
		if measureCached(cache, font, token[offs[start]:offs[start+1]]) > maxWidth {
			out = append(out, token[offs[start]:offs[start+1]])
			start++
			continue
		}

		lo, hi := start+1, len(clusters)
		best := start + 1
		for lo <= hi {
			mid := (lo + hi) >> 1
			cand := token[offs[start]:offs[mid]]
			needSuffix := mid < len(clusters)
			if needSuffix && wrapSymbol != "" {
				prevLast := lastBaseRune(cand)
				nextFirst := firstBaseRune(clusters[mid])
				if isWordBaseRune(prevLast) && isWordBaseRune(nextFirst) {
					cand += wrapSymbol
				}
			}
			if measureCached(cache, font, cand) <= maxWidth {
				best = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}

		end := best
		line := token[offs[start]:offs[end]]
		if end < len(clusters) && wrapSymbol != "" {
			prevLast := lastBaseRune(line)
			nextFirst := firstBaseRune(clusters[end])
			if isWordBaseRune(prevLast) && isWordBaseRune(nextFirst) && measureCached(cache, font, line+wrapSymbol) <= maxWidth {
				line += wrapSymbol
			}
		}

		out = append(out, line)
		start = end
	}

	return out
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

func splitGraphemes(s string) (clusters []string, offsets []int) {
	g := uniseg.NewGraphemes(s)
	offsets = append(offsets, 0)
	for g.Next() {
		cl := g.Str()
		clusters = append(clusters, cl)
		offsets = append(offsets, offsets[len(offsets)-1]+len(cl))
	}
	return clusters, offsets
}

func splitWordsPreserveNBSP(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := -1
	for i, r := range s {
		sep := r == ' ' || r == '\t'
		if sep {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

func isWordBaseRune(r rune) bool {
	if r <= 0 {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func lastBaseRune(s string) rune {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[:len(s)-1]
			continue
		}
		if !(unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Cf, r)) {
			return r
		}
		s = s[:len(s)-size]
	}
	return -1
}

func firstBaseRune(s string) rune {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[size:]
			continue
		}
		if !(unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Cf, r)) {
			return r
		}
		s = s[size:]
	}
	return -1
}

func trimRightSpacesNBSP(s string) string {
	s = strings.TrimRight(s, " ")
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if r == ' ' || r == ' ' {
			s = s[:len(s)-size]
			continue
		}
		break
	}
	return s
}
