// Package query normalizes user-entered search text before it is sent to the
// dictionary service.
package query

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Folder trims leading and trailing whitespace and collapses every internal
// whitespace run into a single ASCII space.
type Folder struct {
	started bool
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (f *Folder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(c) {
			if f.started {
				f.pending = true
			}
			nSrc += size
			continue
		}

		need := utf8.RuneLen(c)
		if f.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.pending {
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		f.started = true
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *Folder) Reset() {
	*f = Folder{}
}

// Normalize returns s with its whitespace folded.
func Normalize(s string) string {
	out, _, err := transform.String(&Folder{}, s)
	if err != nil {
		return s
	}
	return out
}

// IsBlank reports whether s contains nothing but whitespace.
func IsBlank(s string) bool {
	return Normalize(s) == ""
}
