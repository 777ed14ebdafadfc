package pdf

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	// TJ offsets below this (in thousandths of text space) are read as a word gap.
	tjSpaceThreshold = -200
	defaultFontSize  = 12
)

// textLayout groups shown strings into lines by their baseline. Strings on
// the same baseline join into one line, separated by a space when a text
// positioning operator moved forward between them. A new baseline or a T*,
// ' or " starts a new line.
type textLayout struct {
	out  strings.Builder
	line strings.Builder

	fonts    map[string]*font
	font     *font
	fontSize float64

	// text line matrix origin and scale
	lineX, lineY float64
	scale        float64
	leading      float64

	moved  bool    // positioned since the last shown string
	lineAt float64 // baseline of the buffered line
	lastX  float64 // line origin of the last shown string
}

func (l *textLayout) beginText() {
	l.lineX, l.lineY, l.scale = 0, 0, 1
}

func (l *textLayout) moveLine(tx, ty float64) {
	l.lineX += tx * l.scale
	l.lineY += ty * l.scale
	l.moved = true
}

func (l *textLayout) setMatrix(ops []operand) {
	if len(ops) != 6 {
		return
	}
	l.scale = math.Hypot(ops[0].num, ops[1].num)
	if l.scale == 0 {
		l.scale = 1
	}
	l.lineX, l.lineY = ops[4].num, ops[5].num
	l.moved = true
}

func (l *textLayout) nextLine() {
	l.moveLine(0, -l.leading)
	l.flush()
}

func (l *textLayout) em() float64 {
	size := l.fontSize
	if size <= 0 {
		size = defaultFontSize
	}
	return size * l.scale
}

func (l *textLayout) flush() {
	text := strings.TrimRight(l.line.String(), " ")
	l.line.Reset()
	if strings.TrimSpace(text) == "" {
		return
	}
	l.out.WriteString(text)
	l.out.WriteByte('\n')
}

func (l *textLayout) write(s string) {
	if s == "" {
		return
	}
	if l.line.Len() > 0 {
		switch {
		case math.Abs(l.lineY-l.lineAt) > l.em()/2:
			l.flush()
		case l.moved && l.lineX > l.lastX && !strings.HasSuffix(l.line.String(), " ") && !strings.HasPrefix(s, " "):
			l.line.WriteByte(' ')
		}
	}
	l.lineAt, l.lastX = l.lineY, l.lineX
	l.moved = false
	l.line.WriteString(s)
}

func (l *textLayout) show(ops []operand) {
	for _, op := range ops {
		switch {
		case op.isString:
			l.write(l.decode(op.str))
		case op.num < tjSpaceThreshold && l.line.Len() > 0 && !strings.HasSuffix(l.line.String(), " "):
			l.line.WriteByte(' ')
		}
	}
}

func (l *textLayout) decode(raw []byte) string {
	if l.font == nil {
		return decodeText(raw)
	}
	return l.font.decode(raw)
}

// contentText pulls the shown text out of a decoded page content stream,
// decoding strings through the named page fonts. fonts may be nil.
func contentText(data []byte, fonts map[string]*font) string {
	s := &scanner{data: data}
	l := &textLayout{fonts: fonts, scale: 1}
	var operands []operand

	for {
		tok, ok := s.next()
		if !ok {
			break
		}
		switch tok.kind {
		case tokenArray:
			continue
		case tokenOperand:
			operands = append(operands, tok.operand)
			continue
		}

		switch tok.op {
		case "BT":
			l.beginText()
		case "Tf":
			if len(operands) == 2 {
				l.font = l.fonts[operands[0].name]
				l.fontSize = math.Abs(operands[1].num)
			}
		case "TL":
			if len(operands) == 1 {
				l.leading = operands[0].num
			}
		case "Td", "TD":
			if len(operands) == 2 {
				if tok.op == "TD" {
					l.leading = -operands[1].num
				}
				l.moveLine(operands[0].num, operands[1].num)
			}
		case "Tm":
			l.setMatrix(operands)
		case "T*":
			l.nextLine()
		case "Tj", "TJ":
			l.show(operands)
		case "'":
			l.nextLine()
			l.show(operands)
		case "\"":
			l.nextLine()
			if len(operands) == 3 {
				l.show(operands[2:])
			}
		case "BI":
			s.skipInlineImage()
		}
		operands = operands[:0]
	}
	l.flush()
	return l.out.String()
}

// decodeText converts a PDF string shown without a known font to UTF-8.
// Text written with standard fonts is WinAnsi encoded; UTF-16 strings carry
// a byte order mark.
func decodeText(raw []byte) string {
	if len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF {
		return string(utf16Runes(raw[2:]))
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

type tokenKind int

const (
	tokenOperand tokenKind = iota
	tokenOperator
	tokenArray
)

type operand struct {
	isString bool
	str      []byte
	num      float64
	name     string
}

type token struct {
	kind    tokenKind
	op      string
	operand operand
}

type scanner struct {
	data []byte
	pos  int
}

func isWhite(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f' || c == 0
}

func isDelim(c byte) bool {
	return strings.IndexByte("()<>[]{}/%", c) >= 0
}

func (s *scanner) next() (token, bool) {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		switch {
		case isWhite(c):
			s.pos++
		case c == '%':
			for s.pos < len(s.data) && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
				s.pos++
			}
		case c == '(':
			s.pos++
			return token{kind: tokenOperand, operand: operand{isString: true, str: s.literal()}}, true
		case c == '<' && s.pos+1 < len(s.data) && s.data[s.pos+1] == '<':
			s.pos += 2
		case c == '>' && s.pos+1 < len(s.data) && s.data[s.pos+1] == '>':
			s.pos += 2
		case c == '<':
			s.pos++
			return token{kind: tokenOperand, operand: operand{isString: true, str: s.hex()}}, true
		case c == '[' || c == ']':
			s.pos++
			return token{kind: tokenArray, op: string(c)}, true
		case c == '{' || c == '}' || c == '>':
			s.pos++
		case c == '/':
			s.pos++
			return token{kind: tokenOperand, operand: operand{name: s.word()}}, true
		default:
			w := s.word()
			if w == "" {
				s.pos++
				continue
			}
			if n, err := strconv.ParseFloat(w, 64); err == nil {
				return token{kind: tokenOperand, operand: operand{num: n}}, true
			}
			return token{kind: tokenOperator, op: w}, true
		}
	}
	return token{}, false
}

func (s *scanner) word() string {
	start := s.pos
	for s.pos < len(s.data) && !isWhite(s.data[s.pos]) && !isDelim(s.data[s.pos]) {
		s.pos++
	}
	return string(s.data[start:s.pos])
}

// literal reads a (string) body; the opening parenthesis is already consumed.
func (s *scanner) literal() []byte {
	var out []byte
	depth := 1
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		switch c {
		case '(':
			depth++
			out = append(out, c)
		case ')':
			depth--
			if depth == 0 {
				return out
			}
			out = append(out, c)
		case '\\':
			if s.pos >= len(s.data) {
				return out
			}
			e := s.data[s.pos]
			s.pos++
			switch e {
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'b':
				out = append(out, '\b')
			case 'f':
				out = append(out, '\f')
			case '\r':
				if s.pos < len(s.data) && s.data[s.pos] == '\n' {
					s.pos++
				}
			case '\n':
			default:
				if e >= '0' && e <= '7' {
					val := int(e - '0')
					for i := 0; i < 2 && s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '7'; i++ {
						val = val*8 + int(s.data[s.pos]-'0')
						s.pos++
					}
					out = append(out, byte(val))
				} else {
					out = append(out, e)
				}
			}
		default:
			out = append(out, c)
		}
	}
	return out
}

// hex reads a <hex string> body; the opening bracket is already consumed.
func (s *scanner) hex() []byte {
	var digits []byte
	for s.pos < len(s.data) && s.data[s.pos] != '>' {
		if c := s.data[s.pos]; !isWhite(c) {
			digits = append(digits, c)
		}
		s.pos++
	}
	s.pos++
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		v, err := strconv.ParseUint(string(digits[i:i+2]), 16, 8)
		if err != nil {
			return out
		}
		out = append(out, byte(v))
	}
	return out
}

func (s *scanner) skipInlineImage() {
	for s.pos+1 < len(s.data) {
		if s.data[s.pos] == 'E' && s.data[s.pos+1] == 'I' &&
			(s.pos == 0 || isWhite(s.data[s.pos-1])) &&
			(s.pos+2 >= len(s.data) || isWhite(s.data[s.pos+2])) {
			s.pos += 2
			return
		}
		s.pos++
	}
	s.pos = len(s.data)
}
