package compact

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
)

// TextProps is the text block of a node, 24 bytes. The font family is
// present as a hash only: good for change detection and font instance
// keying, useless for reading the family back, which always goes
// through the slow path.
type TextProps struct {
	TextColor      uint32
	_              [4]uint8
	FontFamilyHash uint64
	LineHeight     int16
	LetterSpacing  int16
	WordSpacing    int16
	TextIndent     int16
}

// DefaultTextProps returns the encoding of a node nobody styled. The
// spacings are zero, their initial value; color and hash are unset;
// line height misses to the slow path, where `normal` lives as the
// number 1.2.
func DefaultTextProps() TextProps {
	return TextProps{LineHeight: I16Sentinel}
}

// FNV-1a, written out so that hashing a family list neither allocates
// nor drags in a hash state object. Hash 0 is reserved for "unset".
const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

// FontHash hashes a font family list with FNV-1a. A zero result is
// remapped to 1, so 0 always means "no font family".
func FontHash(families string) uint64 {
	h := fnvOffset
	for i := 0; i < len(families); i++ {
		h ^= uint64(families[i])
		h *= fnvPrime
	}
	if h == 0 {
		return 1
	}
	return h
}

// BuildText encodes the text block of one node. Slots of properties
// the lookup does not report keep their default encoding.
func BuildText(lookup LookupFunc) TextProps {
	p := DefaultTextProps()
	if v, ok := lookup(style.PropColor); ok {
		p.TextColor = encodeColor(v)
	}
	if v, ok := lookup(style.PropFontFamily); ok {
		if fam, isText := v.AsText(); isText {
			p.FontFamilyHash = FontHash(fam)
		}
	}
	if v, ok := lookup(style.PropLineHeight); ok {
		p.LineHeight = encodeLineHeight(v)
	}
	deci := func(prop style.PropertyID, slot *int16) {
		if v, ok := lookup(prop); ok {
			*slot = EncodeDeciPx(v)
		}
	}
	deci(style.PropLetterSpacing, &p.LetterSpacing)
	deci(style.PropWordSpacing, &p.WordSpacing)
	deci(style.PropTextIndent, &p.TextIndent)
	return p
}

// get answers a text property from the encoded slots. ok false is a
// cache miss; font-family in particular always misses.
func (p *TextProps) get(prop style.PropertyID) (css.Value, bool) {
	switch prop {
	case style.PropColor:
		return decodeColor(p.TextColor)
	case style.PropLineHeight:
		return decodeLineHeight(p.LineHeight)
	case style.PropLetterSpacing:
		return DecodeDeciPx(p.LetterSpacing)
	case style.PropWordSpacing:
		return DecodeDeciPx(p.WordSpacing)
	case style.PropTextIndent:
		return DecodeDeciPx(p.TextIndent)
	}
	return css.Value{}, false
}
