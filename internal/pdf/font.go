package pdf

import (
	"unicode/utf16"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"golang.org/x/text/encoding/charmap"
)

// font decodes the strings shown with one page font resource.
type font struct {
	codeLen   int
	toUnicode *cmap
	encoding  *charmap.Charmap
}

// decode maps the character codes of raw to text. Codes the ToUnicode map
// does not cover fall back to the font encoding, or to the code value itself
// for two byte fonts, whose CIDs are Unicode for Identity-H UTF-8 fonts.
func (f *font) decode(raw []byte) string {
	n := f.codeLen
	if n < 1 {
		n = 1
	}
	runes := make([]rune, 0, len(raw)/n)
	for i := 0; i+n <= len(raw); i += n {
		var code uint32
		for _, b := range raw[i : i+n] {
			code = code<<8 | uint32(b)
		}
		if mapped, ok := f.toUnicode.lookup(code); ok {
			runes = append(runes, mapped...)
			continue
		}
		switch {
		case n > 1:
			if code != 0 {
				runes = append(runes, rune(code))
			}
		case f.encoding != nil:
			runes = append(runes, f.encoding.DecodeByte(byte(code)))
		default:
			runes = append(runes, rune(code))
		}
	}
	return string(runes)
}

// pageFonts loads the fonts named in a page's resource dictionary.
func pageFonts(ctx *model.Context, resources types.Dict) map[string]*font {
	fonts := make(map[string]*font)
	if resources == nil {
		return fonts
	}
	obj, found := resources.Find("Font")
	if !found {
		return fonts
	}
	fontDicts, err := ctx.DereferenceDict(obj)
	if err != nil || fontDicts == nil {
		return fonts
	}
	for name, ref := range fontDicts {
		d, err := ctx.DereferenceDict(ref)
		if err != nil || d == nil {
			continue
		}
		fonts[name] = loadFont(ctx, d)
	}
	return fonts
}

func loadFont(ctx *model.Context, d types.Dict) *font {
	f := &font{codeLen: 1, encoding: charmap.Windows1252}
	if subtype := d.NameEntry("Subtype"); subtype != nil && *subtype == "Type0" {
		f.codeLen = 2
		f.encoding = nil
	}
	if enc := d.NameEntry("Encoding"); enc != nil && *enc == "MacRomanEncoding" {
		f.encoding = charmap.Macintosh
	}

	obj, found := d.Find("ToUnicode")
	if !found {
		return f
	}
	sd, _, err := ctx.DereferenceStreamDict(obj)
	if err != nil || sd == nil {
		return f
	}
	if err := sd.Decode(); err != nil {
		return f
	}
	f.toUnicode = parseCMap(sd.Content)
	if f.toUnicode.codeLen > 0 {
		f.codeLen = f.toUnicode.codeLen
	}
	return f
}

type cmapRange struct {
	lo, hi uint32
	start  []rune
	array  [][]rune
}

// cmap is the bfchar and bfrange content of a ToUnicode CMap.
type cmap struct {
	codeLen int
	chars   map[uint32][]rune
	ranges  []cmapRange
}

func (m *cmap) lookup(code uint32) ([]rune, bool) {
	if m == nil {
		return nil, false
	}
	if r, ok := m.chars[code]; ok {
		return r, true
	}
	for _, rg := range m.ranges {
		if code < rg.lo || code > rg.hi {
			continue
		}
		offset := code - rg.lo
		if rg.array != nil {
			if int(offset) < len(rg.array) {
				return rg.array[offset], true
			}
			return nil, false
		}
		if len(rg.start) == 0 {
			return nil, false
		}
		out := append([]rune(nil), rg.start...)
		out[len(out)-1] += rune(offset)
		return out, true
	}
	return nil, false
}

// parseCMap reads the codespace, bfchar and bfrange sections of a CMap
// stream with the content stream tokenizer.
func parseCMap(data []byte) *cmap {
	m := &cmap{chars: make(map[uint32][]rune)}
	s := &scanner{data: data}
	var toks []token
	for {
		tok, ok := s.next()
		if !ok {
			break
		}
		if tok.kind != tokenOperator {
			toks = append(toks, tok)
			continue
		}
		switch tok.op {
		case "endcodespacerange":
			for i := 0; i+1 < len(toks); i += 2 {
				if n := len(toks[i].operand.str); toks[i].operand.isString && n > m.codeLen {
					m.codeLen = n
				}
			}
		case "endbfchar":
			for i := 0; i+1 < len(toks); i += 2 {
				src, dst := toks[i].operand, toks[i+1].operand
				if !src.isString || !dst.isString {
					continue
				}
				m.chars[codeOf(src.str)] = utf16Runes(dst.str)
			}
		case "endbfrange":
			m.ranges = append(m.ranges, bfRanges(toks)...)
		}
		toks = toks[:0]
	}
	return m
}

func bfRanges(toks []token) []cmapRange {
	var out []cmapRange
	for i := 0; i+2 < len(toks); {
		lo, hi := toks[i].operand, toks[i+1].operand
		if !lo.isString || !hi.isString {
			i++
			continue
		}
		rg := cmapRange{lo: codeOf(lo.str), hi: codeOf(hi.str)}
		i += 2
		if toks[i].kind == tokenArray && toks[i].op == "[" {
			rg.array = [][]rune{}
			for i++; i < len(toks) && toks[i].kind != tokenArray; i++ {
				rg.array = append(rg.array, utf16Runes(toks[i].operand.str))
			}
			i++
		} else {
			rg.start = utf16Runes(toks[i].operand.str)
			i++
		}
		if rg.hi >= rg.lo {
			out = append(out, rg)
		}
	}
	return out
}

func codeOf(b []byte) uint32 {
	var code uint32
	for _, c := range b {
		code = code<<8 | uint32(c)
	}
	return code
}

// utf16Runes decodes a big-endian UTF-16 CMap destination string.
func utf16Runes(b []byte) []rune {
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
	}
	if len(b)%2 == 1 {
		units = append(units, uint16(b[len(b)-1]))
	}
	return utf16.Decode(units)
}
