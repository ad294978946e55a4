package charset

import (
	"sort"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// The double-byte translation tables are generated data, and x/text
// already carries authoritative copies inside its CJK codecs. Each
// table here is materialised once at init by sweeping the relevant
// byte pairs through the x/text decoder for the encoding that carries
// the set (EUC-JP for JIS X 0208/0212, EUC-KR/UHC for KS X 1001 and
// CP949, GBK for GB2312, Big5 for Big5). The transcoding hot path then
// works on flat arrays and performs no allocation.

type dbcsPair struct {
	r    rune
	code uint16
}

type dbcsTable struct {
	rows, cols int
	toUni      []uint32
	fromUni    []dbcsPair // sorted by rune; first (lowest) code wins
}

func (t *dbcsTable) toUnicode(r, c int) uint32 {
	if r < 0 || r >= t.rows || c < 0 || c >= t.cols {
		return errorSentinel
	}
	return t.toUni[r*t.cols+c]
}

func (t *dbcsTable) fromUnicode(u rune, r, c *int) bool {
	if u < 0 || u == utf8.RuneError {
		return false
	}
	i := sort.Search(len(t.fromUni), func(i int) bool {
		return t.fromUni[i].r >= u
	})
	if i >= len(t.fromUni) || t.fromUni[i].r != u {
		return false
	}
	*r = int(t.fromUni[i].code) / t.cols
	*c = int(t.fromUni[i].code) % t.cols
	return true
}

// buildDBCS sweeps every (row, col) cell through dec. seq fills buf
// with the byte sequence encoding the cell and returns its length, or
// 0 to skip the cell.
func buildDBCS(rows, cols int, e encoding.Encoding,
	seq func(r, c int, buf []byte) int) *dbcsTable {

	t := &dbcsTable{rows: rows, cols: cols, toUni: make([]uint32, rows*cols)}
	dec := e.NewDecoder()
	seen := make(map[rune]bool)
	var src [4]byte
	var dst [8]byte
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := r*cols + c
			t.toUni[cell] = errorSentinel
			n := seq(r, c, src[:])
			if n == 0 {
				continue
			}
			dec.Reset()
			nDst, nSrc, err := dec.Transform(dst[:], src[:n], true)
			if err != nil || nSrc != n {
				continue
			}
			u, size := utf8.DecodeRune(dst[:nDst])
			if size != nDst || u == utf8.RuneError {
				continue
			}
			t.toUni[cell] = uint32(u)
			if !seen[u] {
				seen[u] = true
				t.fromUni = append(t.fromUni, dbcsPair{r: u, code: uint16(cell)})
			}
		}
	}
	sort.Slice(t.fromUni, func(i, j int) bool {
		return t.fromUni[i].r < t.fromUni[j].r
	})
	return t
}

var (
	jisx0208Table *dbcsTable
	jisx0212Table *dbcsTable
	ksx1001Table  *dbcsTable
	cp949Table    *dbcsTable
	gb2312Table   *dbcsTable
	big5Table     *dbcsTable
)

func init() {
	jisx0208Table = buildDBCS(94, 94, japanese.EUCJP, func(r, c int, buf []byte) int {
		buf[0], buf[1] = byte(0xA1+r), byte(0xA1+c)
		return 2
	})
	jisx0212Table = buildDBCS(94, 94, japanese.EUCJP, func(r, c int, buf []byte) int {
		buf[0], buf[1], buf[2] = 0x8F, byte(0xA1+r), byte(0xA1+c)
		return 3
	})
	ksx1001Table = buildDBCS(94, 94, korean.EUCKR, func(r, c int, buf []byte) int {
		buf[0], buf[1] = byte(0xA1+r), byte(0xA1+c)
		return 2
	})
	// CP949 is addressed as (lead-0x80, trail-0x40); row 0 is unused.
	cp949Table = buildDBCS(127, 192, korean.EUCKR, func(r, c int, buf []byte) int {
		if r == 0 || r+0x80 > 0xFE || c+0x40 > 0xFF {
			return 0
		}
		buf[0], buf[1] = byte(0x80+r), byte(0x40+c)
		return 2
	})
	gb2312Table = buildDBCS(94, 94, simplifiedchinese.GBK, func(r, c int, buf []byte) int {
		buf[0], buf[1] = byte(0xA1+r), byte(0xA1+c)
		return 2
	})
	// Big5 is addressed as a 94x191 grid (lead-0xA1, trail-0x40) with
	// the 0x7F-0xA0 trail gap left undefined.
	big5Table = buildDBCS(94, 191, traditionalchinese.Big5, func(r, c int, buf []byte) int {
		trail := 0x40 + c
		if trail > 0x7E && trail < 0xA1 {
			return 0
		}
		buf[0], buf[1] = byte(0xA1+r), byte(trail)
		return 2
	})
}

func jisx0208ToUnicode(r, c int) uint32     { return jisx0208Table.toUnicode(r, c) }
func unicodeToJISX0208(u rune, r, c *int) bool { return jisx0208Table.fromUnicode(u, r, c) }
func jisx0212ToUnicode(r, c int) uint32     { return jisx0212Table.toUnicode(r, c) }
func unicodeToJISX0212(u rune, r, c *int) bool { return jisx0212Table.fromUnicode(u, r, c) }
func ksx1001ToUnicode(r, c int) uint32      { return ksx1001Table.toUnicode(r, c) }
func unicodeToKSX1001(u rune, r, c *int) bool  { return ksx1001Table.fromUnicode(u, r, c) }
func cp949ToUnicode(r, c int) uint32        { return cp949Table.toUnicode(r, c) }
func unicodeToCP949(u rune, r, c *int) bool    { return cp949Table.fromUnicode(u, r, c) }
func gb2312ToUnicode(r, c int) uint32       { return gb2312Table.toUnicode(r, c) }
func unicodeToGB2312(u rune, r, c *int) bool   { return gb2312Table.fromUnicode(u, r, c) }
func big5ToUnicode(r, c int) uint32         { return big5Table.toUnicode(r, c) }
func unicodeToBig5(u rune, r, c *int) bool     { return big5Table.fromUnicode(u, r, c) }

// CNS 11643. The generated plane tables are not bundled; planes 1 and 2
// are derived through the Big5 correspondence of RFC 1922: Big5 level-1
// hanzi map to plane 1 rows 36 up, the Big5 symbol area to the leading
// plane-1 rows, and Big5 level-2 hanzi to plane 2. Planes 3-7 are
// unmapped. Plane numbers are 0-based here.
const (
	big5Level1Hanzi = 5401 // A4 40 .. C6 7E
	big5Level2Hanzi = 7652 // C9 40 .. F9 D5
	big5SymbolArea  = 3 * 157
)

// big5Compress folds the 0x7F-0xA0 trail gap out of a Big5 column
// index, giving 157 cells per row; big5Expand is its inverse.
func big5Compress(c int) int {
	switch {
	case c < 63:
		return c
	case c >= 97:
		return c - 34
	default:
		return -1
	}
}

func big5Expand(c int) int {
	if c >= 63 {
		return c + 34
	}
	return c
}

func cns11643ToUnicode(p, r, c int) uint32 {
	if r < 0 || r >= 94 || c < 0 || c >= 94 {
		return errorSentinel
	}
	switch p {
	case 0:
		if r >= 35 {
			s := (r-35)*94 + c
			if s >= big5Level1Hanzi {
				return errorSentinel
			}
			return big5ToUnicode(3+s/157, big5Expand(s%157))
		}
		s := r*94 + c
		if s >= big5SymbolArea {
			return errorSentinel
		}
		return big5ToUnicode(s/157, big5Expand(s%157))
	case 1:
		s := r*94 + c
		if s >= big5Level2Hanzi {
			return errorSentinel
		}
		return big5ToUnicode(40+s/157, big5Expand(s%157))
	default:
		return errorSentinel
	}
}

func unicodeToCNS11643(u rune, p, r, c *int) bool {
	var br, bc int
	if !unicodeToBig5(u, &br, &bc) {
		return false
	}
	bc = big5Compress(bc)
	if bc < 0 {
		return false
	}
	switch {
	case br < 3:
		s := br*157 + bc
		*p, *r, *c = 0, s/94, s%94
	case br < 40:
		s := (br-3)*157 + bc
		if s >= big5Level1Hanzi {
			return false
		}
		*p, *r, *c = 0, 35+s/94, s%94
	default:
		s := (br-40)*157 + bc
		if s >= big5Level2Hanzi {
			return false
		}
		*p, *r, *c = 1, s/94, s%94
	}
	return true
}
