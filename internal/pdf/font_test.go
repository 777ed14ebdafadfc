package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const identityCMap = "/CIDInit /ProcSet findresource begin\n12 dict begin\nbegincmap\n" +
	"/CIDSystemInfo\n<</Registry (Adobe)\n/Ordering (UCS)\n/Supplement 0\n>> def\n" +
	"/CMapName /Adobe-Identity-UCS def\n/CMapType 2 def\n" +
	"1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n" +
	"1 beginbfrange\n<0000> <FFFF> <0000>\nendbfrange\n" +
	"endcmap\nCMapName currentdict /CMap defineresource pop\nend\nend"

func TestParseCMap(t *testing.T) {
	cm := parseCMap([]byte("1 begincodespacerange <0000> <FFFF> endcodespacerange\n" +
		"2 beginbfchar\n<0003> <0020>\n<0011> <00E7>\nendbfchar\n" +
		"2 beginbfrange\n<0024> <0026> <0041>\n<0030> <0031> [<00C1> <0066006C>]\nendbfrange"))

	assert.Equal(t, 2, cm.codeLen)

	tests := []struct {
		code uint32
		want string
		ok   bool
	}{
		{code: 0x03, want: " ", ok: true},
		{code: 0x11, want: "ç", ok: true},
		{code: 0x24, want: "A", ok: true},
		{code: 0x26, want: "C", ok: true},
		{code: 0x30, want: "Á", ok: true},
		{code: 0x31, want: "fl", ok: true},
		{code: 0x27, ok: false},
	}
	for _, tt := range tests {
		got, ok := cm.lookup(tt.code)
		assert.Equal(t, tt.ok, ok, "code %#x", tt.code)
		assert.Equal(t, tt.want, string(got), "code %#x", tt.code)
	}
}

func TestParseCMapIdentityRange(t *testing.T) {
	cm := parseCMap([]byte(identityCMap))

	require.Len(t, cm.ranges, 1)
	got, ok := cm.lookup(0x00E3)
	require.True(t, ok)
	assert.Equal(t, "ã", string(got))
}

func TestFontDecode(t *testing.T) {
	subset := parseCMap([]byte("1 begincodespacerange <00> <FF> endcodespacerange\n" +
		"3 beginbfchar <01> <0042> <02> <006F> <03> <006C> endbfchar"))

	tests := []struct {
		name string
		font *font
		raw  []byte
		want string
	}{
		{
			name: "identity-H without ToUnicode",
			font: &font{codeLen: 2},
			raw:  []byte{0x00, 'P', 0x00, 'u', 0x00, 'd', 0x00, 'i', 0x00, 'm'},
			want: "Pudim",
		},
		{
			name: "subset font with ToUnicode",
			font: &font{codeLen: 1, toUnicode: subset, encoding: charmap.Windows1252},
			raw:  []byte{0x01, 0x02, 0x03, 0x02},
			want: "Bolo",
		},
		{
			name: "simple font falls back to its encoding",
			font: &font{codeLen: 1, encoding: charmap.Macintosh},
			raw:  []byte{'S', 'a', 'l', 0x8B, 'o'},
			want: "Salão",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.font.decode(tt.raw))
		})
	}
}
