package charset

import "strings"

// The library's own set of plausibly legible character-set names. The
// first name listed for a charset is canonical and is what String and
// CanonicalName(Local, ...) return; the rest are other ways people
// plausibly refer to it. Enumeration misses some charsets, marked by
// the inEnum flag, which are duplicates or aliases of advertised ones.

type localEntry struct {
	name   string
	cs     Set
	inEnum bool
}

var localEncodings = []localEntry{
	{"<UNKNOWN>", None, false},
	{"ASCII", ASCII, true},
	{"BS 4730", BS4730, true},
	{"ISO-8859-1", ISO8859_1, true},
	{"ISO-8859-1 with X11 line drawing", ISO8859_1X11, false},
	{"ISO-8859-2", ISO8859_2, true},
	{"ISO-8859-3", ISO8859_3, true},
	{"ISO-8859-4", ISO8859_4, true},
	{"ISO-8859-5", ISO8859_5, true},
	{"ISO-8859-6", ISO8859_6, true},
	{"ISO-8859-7", ISO8859_7, true},
	{"ISO-8859-8", ISO8859_8, true},
	{"ISO-8859-9", ISO8859_9, true},
	{"ISO-8859-10", ISO8859_10, true},
	{"ISO-8859-11", ISO8859_11, true},
	{"ISO-8859-13", ISO8859_13, true},
	{"ISO-8859-14", ISO8859_14, true},
	{"ISO-8859-15", ISO8859_15, true},
	{"ISO-8859-16", ISO8859_16, true},
	{"CP437", CP437, true},
	{"CP850", CP850, true},
	{"CP866", CP866, true},
	{"CP1250", CP1250, true},
	{"Win1250", CP1250, false},
	{"CP1251", CP1251, true},
	{"Win1251", CP1251, false},
	{"CP1252", CP1252, true},
	{"Win1252", CP1252, false},
	{"CP1253", CP1253, true},
	{"Win1253", CP1253, false},
	{"CP1254", CP1254, true},
	{"Win1254", CP1254, false},
	{"CP1255", CP1255, true},
	{"Win1255", CP1255, false},
	{"CP1256", CP1256, true},
	{"Win1256", CP1256, false},
	{"CP1257", CP1257, true},
	{"Win1257", CP1257, false},
	{"CP1258", CP1258, true},
	{"Win1258", CP1258, false},
	{"KOI8-R", KOI8R, true},
	{"KOI8-U", KOI8U, true},
	{"KOI8-RU", KOI8RU, true},
	{"JIS X 0201", JISX0201, true},
	{"JIS-X-0201", JISX0201, false},
	{"JIS_X_0201", JISX0201, false},
	{"JISX0201", JISX0201, false},
	{"Mac Roman", MacRoman, true},
	{"Mac Turkish", MacTurkish, true},
	{"Mac Croatian", MacCroatian, true},
	{"Mac Iceland", MacIceland, true},
	{"Mac Romanian", MacRomanian, true},
	{"Mac Greek", MacGreek, true},
	{"Mac Cyrillic", MacCyrillic, true},
	{"Mac Thai", MacThai, true},
	{"Mac Centeuro", MacCenteuro, true},
	{"Mac Symbol", MacSymbol, true},
	{"Mac Dingbats", MacDingbats, true},
	{"Mac Roman (old)", MacRomanOld, false},
	{"Mac Croatian (old)", MacCroatianOld, false},
	{"Mac Iceland (old)", MacIcelandOld, false},
	{"Mac Romanian (old)", MacRomanianOld, false},
	{"Mac Greek (old)", MacGreekOld, false},
	{"Mac Cyrillic (old)", MacCyrillicOld, false},
	{"Mac Ukraine", MacUkraine, true},
	{"Mac VT100", MacVT100, true},
	{"Mac VT100 (old)", MacVT100Old, false},
	{"VISCII", VISCII, true},
	{"HP ROMAN8", HPRoman8, true},
	{"DEC MCS", DECMCS, true},
	{"DEC graphics", DECGraphics, true},
	{"DEC-graphics", DECGraphics, false},
	{"DECgraphics", DECGraphics, false},
	{"UTF-8", UTF8, true},
	{"UTF-7", UTF7, true},
	{"UTF-7-conservative", UTF7Conservative, false},
	{"EUC-CN", EUCCN, true},
	{"EUC-KR", EUCKR, true},
	{"EUC-JP", EUCJP, true},
	{"EUC-TW", EUCTW, true},
	{"ISO-2022-JP", ISO2022JP, true},
	{"ISO-2022-KR", ISO2022KR, true},
	{"Big5", Big5, true},
	{"Shift-JIS", ShiftJIS, true},
	{"HZ", HZ, true},
	{"UTF-16BE", UTF16BE, true},
	{"UTF-16LE", UTF16LE, true},
	{"UTF-16", UTF16, true},
	{"CP949", CP949, true},
	{"PDFDocEncoding", PDFDoc, true},
	{"StandardEncoding", PSStandard, true},
	{"COMPOUND_TEXT", CompoundText, true},
	{"COMPOUND-TEXT", CompoundText, false},
	{"COMPOUND TEXT", CompoundText, false},
	{"COMPOUNDTEXT", CompoundText, false},
	{"CTEXT", CompoundText, false},
	{"ISO-2022", ISO2022, true},
	{"ISO2022", ISO2022, false},
}

func lookupLocal(name string) Set {
	for _, e := range localEncodings {
		if strings.EqualFold(e.name, name) {
			return e.cs
		}
	}
	return None
}

func canonicalLocal(cs Set) string {
	for _, e := range localEncodings {
		if e.cs == cs {
			return e.name
		}
	}
	return ""
}

// Enumerate returns the nth advertised charset, or None when n runs
// off the end of the list. Aliased identifiers and charsets without a
// codec in this build are skipped.
func Enumerate(n int) Set {
	for _, e := range localEncodings {
		if e.inEnum && Exists(e.cs) {
			if n == 0 {
				return e.cs
			}
			n--
		}
	}
	return None
}
