package charset

import (
	"sort"

	"golang.org/x/text/encoding/charmap"
)

// The single-byte translation tables are generated data. Rather than
// bundling another copy of the unicode.org mapping files, the tables
// for every set that golang.org/x/text ships are materialised once at
// init from x/text's charmap package; the handful of sets x/text lacks
// are kept as hand-maintained tables below.

func newSBCSData(forward *[256]uint32) *sbcsData {
	sd := &sbcsData{sbcs2ucs: *forward}
	for b := 0; b < 256; b++ {
		if sd.sbcs2ucs[b] != errorSentinel {
			sd.ucs2sbcs[sd.nvalid] = byte(b)
			sd.nvalid++
		}
	}
	valid := sd.ucs2sbcs[:sd.nvalid]
	sort.Slice(valid, func(i, j int) bool {
		return sd.sbcs2ucs[valid[i]] < sd.sbcs2ucs[valid[j]]
	})
	return sd
}

// sbcsFromCharmap derives a forward table from an x/text charmap.
// Charmap.DecodeByte reports undefined positions as U+FFFD, which no
// single-byte set in x/text uses as a real mapping.
func sbcsFromCharmap(cm *charmap.Charmap) *[256]uint32 {
	var fwd [256]uint32
	for b := 0; b < 256; b++ {
		r := cm.DecodeByte(byte(b))
		if r == '�' {
			fwd[b] = errorSentinel
		} else {
			fwd[b] = uint32(r)
		}
	}
	return &fwd
}

// asciiForward returns identity for 0x00-0x7F and undefined above.
func asciiForward() *[256]uint32 {
	var fwd [256]uint32
	for b := 0; b < 256; b++ {
		if b < 0x80 {
			fwd[b] = uint32(b)
		} else {
			fwd[b] = errorSentinel
		}
	}
	return &fwd
}

// latin1Forward returns the identity table (ISO 8859-1).
func latin1Forward() *[256]uint32 {
	var fwd [256]uint32
	for b := 0; b < 256; b++ {
		fwd[b] = uint32(b)
	}
	return &fwd
}

func override(fwd *[256]uint32, ovr map[byte]rune) *[256]uint32 {
	for b, r := range ovr {
		if r == -1 {
			fwd[b] = errorSentinel
		} else {
			fwd[b] = uint32(r)
		}
	}
	return fwd
}

// decGraphicsGlyphs is the DEC Special Graphics repertoire designated
// by final byte '0', as invoked into positions 0x5F-0x7E.
var decGraphicsGlyphs = [32]rune{
	0x00A0, // 0x5F  blank
	0x25C6, 0x2592, 0x2409, 0x240C, 0x240D, 0x240A, 0x00B0, 0x00B1,
	0x2424, 0x240B, 0x2518, 0x2510, 0x250C, 0x2514, 0x253C, 0x23BA,
	0x23BB, 0x2500, 0x23BC, 0x23BD, 0x251C, 0x2524, 0x2534, 0x252C,
	0x2502, 0x2264, 0x2265, 0x03C0, 0x2260, 0x00A3, 0x00B7,
}

func decGraphicsForward() *[256]uint32 {
	fwd := asciiForward()
	for i, r := range decGraphicsGlyphs {
		fwd[0x5F+i] = uint32(r)
	}
	return fwd
}

// iso8859_1X11Forward is ISO 8859-1 with the VT100 line-drawing glyphs
// occupying the C0 positions, as X11 terminal fonts encode them.
func iso8859_1X11Forward() *[256]uint32 {
	fwd := latin1Forward()
	for i := 1; i < 0x20; i++ {
		fwd[i] = uint32(decGraphicsGlyphs[i])
	}
	return fwd
}

func bs4730Forward() *[256]uint32 {
	return override(asciiForward(), map[byte]rune{
		0x23: 0x00A3, // pound sign
		0x7E: 0x203E, // overline
	})
}

func jisx0201Forward() *[256]uint32 {
	fwd := override(asciiForward(), map[byte]rune{
		0x5C: 0x00A5, // yen sign
		0x7E: 0x203E, // overline
	})
	for b := 0xA1; b <= 0xDF; b++ {
		fwd[b] = uint32(b) + (0xFF61 - 0xA1) // halfwidth katakana
	}
	return fwd
}

// iso8859_11Forward: TIS-620 repertoire with ISO C1 controls.
// Windows-874 shares the A1-FF half but fills C1 with typography.
func iso8859_11Forward() *[256]uint32 {
	win := sbcsFromCharmap(charmap.Windows874)
	fwd := latin1Forward()
	for b := 0xA1; b <= 0xFF; b++ {
		fwd[b] = win[b]
	}
	return fwd
}

func koi8ruForward() *[256]uint32 {
	return override(sbcsFromCharmap(charmap.KOI8U), map[byte]rune{
		0xAE: 0x045E, // cyrillic short u
		0xBE: 0x040E,
	})
}

func decMCSForward() *[256]uint32 {
	return override(latin1Forward(), map[byte]rune{
		0xA0: -1, 0xA4: -1, 0xA6: -1,
		0xA8: 0x00A4,
		0xAC: -1, 0xAD: -1, 0xAE: -1, 0xAF: -1,
		0xB4: -1, 0xB8: -1, 0xBE: -1,
		0xD0: -1,
		0xD7: 0x0152,
		0xDD: 0x0178,
		0xDE: -1,
		0xF0: -1,
		0xF7: 0x0153,
		0xFD: 0x00FF,
		0xFE: -1, 0xFF: -1,
	})
}

func hpRoman8Forward() *[256]uint32 {
	fwd := asciiForward()
	high := [96]rune{
		-1, 0x00C0, 0x00C2, 0x00C8, 0x00CA, 0x00CB, 0x00CE, 0x00CF,
		0x00B4, 0x02CB, 0x02C6, 0x00A8, 0x02DC, 0x00D9, 0x00DB, 0x20A4,
		0x00AF, 0x00DD, 0x00FD, 0x00B0, 0x00C7, 0x00E7, 0x00D1, 0x00F1,
		0x00A1, 0x00BF, 0x00A4, 0x00A3, 0x00A5, 0x00A7, 0x0192, 0x00A2,
		0x00E2, 0x00EA, 0x00F4, 0x00FB, 0x00E1, 0x00E9, 0x00F3, 0x00FA,
		0x00E0, 0x00E8, 0x00F2, 0x00F9, 0x00E4, 0x00EB, 0x00F6, 0x00FC,
		0x00C5, 0x00EE, 0x00D8, 0x00C6, 0x00E5, 0x00ED, 0x00F8, 0x00E6,
		0x00C4, 0x00EC, 0x00D6, 0x00DC, 0x00C9, 0x00EF, 0x00DF, 0x00D4,
		0x00C1, 0x00C3, 0x00E3, 0x00D0, 0x00F0, 0x00CD, 0x00CC, 0x00D3,
		0x00D2, 0x00D5, 0x00F5, 0x0160, 0x0161, 0x00DA, 0x0178, 0x00FF,
		0x00DE, 0x00FE, 0x00B7, 0x00B5, 0x00B6, 0x00BE, 0x2014, 0x00BC,
		0x00BD, 0x00AA, 0x00BA, 0x00AB, 0x25A0, 0x00BB, 0x00B1, -1,
	}
	for i, r := range high {
		if r == -1 {
			fwd[0xA0+i] = errorSentinel
		} else {
			fwd[0xA0+i] = uint32(r)
		}
	}
	return fwd
}

// visciiForward: VISCII 1.1 (RFC 1456).
func visciiForward() *[256]uint32 {
	fwd := asciiForward()
	override(fwd, map[byte]rune{
		0x02: 0x1EB2, 0x05: 0x1EB4, 0x06: 0x1EAA,
		0x14: 0x1EF6, 0x19: 0x1EF8, 0x1E: 0x1EF4,
	})
	high := [128]rune{
		0x1EA0, 0x1EAE, 0x1EB0, 0x1EB6, 0x1EA4, 0x1EA6, 0x1EA8, 0x1EAC,
		0x1EBC, 0x1EB8, 0x1EBE, 0x1EC0, 0x1EC2, 0x1EC4, 0x1EC6, 0x1ED0,
		0x1ED2, 0x1ED4, 0x1ED6, 0x1ED8, 0x1EE2, 0x1EDA, 0x1EDC, 0x1EDE,
		0x1ECA, 0x1ECE, 0x1ECC, 0x1EC8, 0x1EE6, 0x0168, 0x1EE4, 0x1EF2,
		0x00D5, 0x1EAF, 0x1EB1, 0x1EB7, 0x1EA5, 0x1EA7, 0x1EA9, 0x1EAD,
		0x1EBD, 0x1EB9, 0x1EBF, 0x1EC1, 0x1EC3, 0x1EC5, 0x1EC7, 0x1ED1,
		0x1ED3, 0x1ED5, 0x1ED7, 0x1EE0, 0x01A0, 0x1ED9, 0x1EDD, 0x1EDF,
		0x1ECB, 0x1EF8, 0x1EE8, 0x1EEA, 0x1EEC, 0x01A1, 0x1EDB, 0x01AF,
		0x00C0, 0x00C1, 0x00C2, 0x00C3, 0x1EA2, 0x0102, 0x1EB3, 0x1EB5,
		0x00C8, 0x00C9, 0x00CA, 0x1EBA, 0x00CC, 0x00CD, 0x0128, 0x1EF3,
		0x0110, 0x1EE9, 0x00D2, 0x00D3, 0x00D4, 0x1EA1, 0x1EF7, 0x1EEB,
		0x1EED, 0x00D9, 0x00DA, 0x1EF9, 0x1EF5, 0x00DD, 0x1EE1, 0x01B0,
		0x00E0, 0x00E1, 0x00E2, 0x00E3, 0x1EA3, 0x0103, 0x1EEF, 0x1EAB,
		0x00E8, 0x00E9, 0x00EA, 0x1EBB, 0x00EC, 0x00ED, 0x0129, 0x1EC9,
		0x0111, 0x1EF1, 0x00F2, 0x00F3, 0x00F4, 0x00F5, 0x1ECF, 0x1ECD,
		0x1EE5, 0x00F9, 0x00FA, 0x0169, 0x1EE7, 0x00FD, 0x1EE3, 0x1EEE,
	}
	for i, r := range high {
		fwd[0x80+i] = uint32(r)
	}
	return fwd
}

// pdfDocForward: PDFDocEncoding (PDF spec appendix D).
func pdfDocForward() *[256]uint32 {
	return override(latin1Forward(), map[byte]rune{
		0x18: 0x02D8, 0x19: 0x02C7, 0x1A: 0x02C6, 0x1B: 0x02D9,
		0x1C: 0x02DD, 0x1D: 0x02DB, 0x1E: 0x02DA, 0x1F: 0x02DC,
		0x7F: -1,
		0x80: 0x2022, 0x81: 0x2020, 0x82: 0x2021, 0x83: 0x2026,
		0x84: 0x2014, 0x85: 0x2013, 0x86: 0x0192, 0x87: 0x2044,
		0x88: 0x2039, 0x89: 0x203A, 0x8A: 0x2212, 0x8B: 0x2030,
		0x8C: 0x201E, 0x8D: 0x201C, 0x8E: 0x201D, 0x8F: 0x2018,
		0x90: 0x2019, 0x91: 0x201A, 0x92: 0x2122, 0x93: 0xFB01,
		0x94: 0xFB02, 0x95: 0x0141, 0x96: 0x0152, 0x97: 0x0160,
		0x98: 0x0178, 0x99: 0x017D, 0x9A: 0x0131, 0x9B: 0x0142,
		0x9C: 0x0153, 0x9D: 0x0161, 0x9E: 0x017E, 0x9F: -1,
		0xA0: 0x20AC, 0xAD: -1,
	})
}

// psStdForward: Adobe PostScript StandardEncoding.
func psStdForward() *[256]uint32 {
	var fwd [256]uint32
	for b := 0; b < 256; b++ {
		fwd[b] = errorSentinel
	}
	for b := 0x20; b <= 0x7E; b++ {
		fwd[b] = uint32(b)
	}
	return override(&fwd, map[byte]rune{
		0x27: 0x2019, 0x60: 0x2018,
		0xA1: 0x00A1, 0xA2: 0x00A2, 0xA3: 0x00A3, 0xA4: 0x2044,
		0xA5: 0x00A5, 0xA6: 0x0192, 0xA7: 0x00A7, 0xA8: 0x00A4,
		0xA9: 0x0027, 0xAA: 0x201C, 0xAB: 0x00AB, 0xAC: 0x2039,
		0xAD: 0x203A, 0xAE: 0xFB01, 0xAF: 0xFB02,
		0xB1: 0x2013, 0xB2: 0x2020, 0xB3: 0x2021, 0xB4: 0x00B7,
		0xB6: 0x00B6, 0xB7: 0x2022, 0xB8: 0x201A, 0xB9: 0x201E,
		0xBA: 0x201D, 0xBB: 0x00BB, 0xBC: 0x2026, 0xBD: 0x2030,
		0xBF: 0x00BF,
		0xC1: 0x0060, 0xC2: 0x00B4, 0xC3: 0x02C6, 0xC4: 0x02DC,
		0xC5: 0x00AF, 0xC6: 0x02D8, 0xC7: 0x02D9, 0xC8: 0x00A8,
		0xCA: 0x02DA, 0xCB: 0x00B8, 0xCD: 0x02DD, 0xCE: 0x02DB,
		0xCF: 0x02C7, 0xD0: 0x2014,
		0xE1: 0x00C6, 0xE3: 0x00AA, 0xE8: 0x0141, 0xE9: 0x00D8,
		0xEA: 0x0152, 0xEB: 0x00BA,
		0xF1: 0x00E6, 0xF5: 0x0131, 0xF8: 0x0142, 0xF9: 0x00F8,
		0xFA: 0x0153, 0xFB: 0x00DF,
	})
}

// Mac script tables. x/text carries Roman and Cyrillic; the pre-euro
// "(old)" variants differ only in the currency-sign position, and
// Ukrainian is the Cyrillic layout with Ghe-with-upturn.
func macRomanOldForward() *[256]uint32 {
	return override(sbcsFromCharmap(charmap.Macintosh), map[byte]rune{
		0xDB: 0x00A4,
	})
}

func macCyrillicOldForward() *[256]uint32 {
	return override(sbcsFromCharmap(charmap.MacintoshCyrillic), map[byte]rune{
		0xFF: 0x00A4,
	})
}

func macUkraineForward() *[256]uint32 {
	return override(sbcsFromCharmap(charmap.MacintoshCyrillic), map[byte]rune{
		0xA2: 0x0490,
		0xB6: 0x0491,
		0xFF: 0x00A4,
	})
}

// Shared tables needed by the ISO 2022 machinery as well as the
// standalone SBCS codecs. These are plain variable initialisers so
// that other initialisation (the ISO 2022 subcharset table in
// particular) can depend on them.
var (
	sbcsdataASCII       = newSBCSData(asciiForward())
	sbcsdataBS4730      = newSBCSData(bs4730Forward())
	sbcsdataJISX0201    = newSBCSData(jisx0201Forward())
	sbcsdataDECMCS      = newSBCSData(decMCSForward())
	sbcsdataDECGraphics = newSBCSData(decGraphicsForward())

	// Indexed by part number; parts 0 and 12 unused.
	sbcsdataISO8859 = func() (t [17]*sbcsData) {
		parts := map[int]*charmap.Charmap{
			1: charmap.ISO8859_1, 2: charmap.ISO8859_2, 3: charmap.ISO8859_3,
			4: charmap.ISO8859_4, 5: charmap.ISO8859_5, 6: charmap.ISO8859_6,
			7: charmap.ISO8859_7, 8: charmap.ISO8859_8, 9: charmap.ISO8859_9,
			10: charmap.ISO8859_10, 13: charmap.ISO8859_13,
			14: charmap.ISO8859_14, 15: charmap.ISO8859_15,
			16: charmap.ISO8859_16,
		}
		for part, cm := range parts {
			t[part] = newSBCSData(sbcsFromCharmap(cm))
		}
		t[11] = newSBCSData(iso8859_11Forward())
		return t
	}()
)

func init() {
	register := func(cs Set, sd *sbcsData) {
		registerSpec(&spec{cs: cs, read: readSBCS, write: writeSBCS, data: sd})
	}

	register(ASCII, sbcsdataASCII)
	register(BS4730, sbcsdataBS4730)
	register(JISX0201, sbcsdataJISX0201)
	register(DECMCS, sbcsdataDECMCS)
	register(DECGraphics, sbcsdataDECGraphics)

	isoSets := []Set{
		0: None, 1: ISO8859_1, 2: ISO8859_2, 3: ISO8859_3, 4: ISO8859_4,
		5: ISO8859_5, 6: ISO8859_6, 7: ISO8859_7, 8: ISO8859_8,
		9: ISO8859_9, 10: ISO8859_10, 11: ISO8859_11, 13: ISO8859_13,
		14: ISO8859_14, 15: ISO8859_15, 16: ISO8859_16,
	}
	for part, cs := range isoSets {
		if cs != None {
			register(cs, sbcsdataISO8859[part])
		}
	}
	register(ISO8859_1X11, newSBCSData(iso8859_1X11Forward()))

	register(CP437, newSBCSData(sbcsFromCharmap(charmap.CodePage437)))
	register(CP850, newSBCSData(sbcsFromCharmap(charmap.CodePage850)))
	register(CP866, newSBCSData(sbcsFromCharmap(charmap.CodePage866)))
	register(CP1250, newSBCSData(sbcsFromCharmap(charmap.Windows1250)))
	register(CP1251, newSBCSData(sbcsFromCharmap(charmap.Windows1251)))
	register(CP1252, newSBCSData(sbcsFromCharmap(charmap.Windows1252)))
	register(CP1253, newSBCSData(sbcsFromCharmap(charmap.Windows1253)))
	register(CP1254, newSBCSData(sbcsFromCharmap(charmap.Windows1254)))
	register(CP1255, newSBCSData(sbcsFromCharmap(charmap.Windows1255)))
	register(CP1256, newSBCSData(sbcsFromCharmap(charmap.Windows1256)))
	register(CP1257, newSBCSData(sbcsFromCharmap(charmap.Windows1257)))
	register(CP1258, newSBCSData(sbcsFromCharmap(charmap.Windows1258)))

	register(KOI8R, newSBCSData(sbcsFromCharmap(charmap.KOI8R)))
	register(KOI8U, newSBCSData(sbcsFromCharmap(charmap.KOI8U)))
	register(KOI8RU, newSBCSData(koi8ruForward()))

	register(MacRoman, newSBCSData(sbcsFromCharmap(charmap.Macintosh)))
	register(MacRomanOld, newSBCSData(macRomanOldForward()))
	register(MacCyrillic, newSBCSData(sbcsFromCharmap(charmap.MacintoshCyrillic)))
	register(MacCyrillicOld, newSBCSData(macCyrillicOldForward()))
	register(MacUkraine, newSBCSData(macUkraineForward()))

	register(VISCII, newSBCSData(visciiForward()))
	register(HPRoman8, newSBCSData(hpRoman8Forward()))
	register(PDFDoc, newSBCSData(pdfDocForward()))
	register(PSStandard, newSBCSData(psStdForward()))
}
