package charset

// GNU Emacs coding system symbols, derived from running
// M-x list-coding-systems in Emacs 21.3. Where multiple names map to
// one charset the first is canonical.

var emacsEncodings = []nameEntry{
	{"us-ascii", ASCII},
	{"iso-latin-9", ISO8859_15},
	{"iso-8859-15", ISO8859_15},
	{"latin-9", ISO8859_15},
	{"latin-0", ISO8859_15},
	{"iso-latin-1", ISO8859_1},
	{"iso-8859-1", ISO8859_1},
	{"latin-1", ISO8859_1},
	{"iso-latin-2", ISO8859_2},
	{"iso-8859-2", ISO8859_2},
	{"latin-2", ISO8859_2},
	{"iso-latin-3", ISO8859_3},
	{"iso-8859-3", ISO8859_3},
	{"latin-3", ISO8859_3},
	{"iso-latin-4", ISO8859_4},
	{"iso-8859-4", ISO8859_4},
	{"latin-4", ISO8859_4},
	{"cyrillic-iso-8bit", ISO8859_5},
	{"iso-8859-5", ISO8859_5},
	{"greek-iso-8bit", ISO8859_7},
	{"iso-8859-7", ISO8859_7},
	{"hebrew-iso-8bit", ISO8859_8},
	{"iso-8859-8", ISO8859_8},
	{"iso-8859-8-e", ISO8859_8},
	{"iso-8859-8-i", ISO8859_8},
	{"iso-latin-5", ISO8859_9},
	{"iso-8859-9", ISO8859_9},
	{"latin-5", ISO8859_9},
	{"chinese-big5", Big5},
	{"big5", Big5},
	{"cn-big5", Big5},
	{"cp437", CP437},
	{"cp850", CP850},
	{"cp866", CP866},
	{"cp1250", CP1250},
	{"cp1251", CP1251},
	{"cp1253", CP1253},
	{"cp1257", CP1257},
	{"japanese-iso-8bit", EUCJP},
	{"euc-japan-1990", EUCJP},
	{"euc-japan", EUCJP},
	{"euc-jp", EUCJP},
	{"iso-2022-jp", ISO2022JP},
	{"junet", ISO2022JP},
	{"korean-iso-8bit", EUCKR},
	{"euc-kr", EUCKR},
	{"euc-korea", EUCKR},
	{"iso-2022-kr", ISO2022KR},
	{"korean-iso-7bit-lock", ISO2022KR},
	{"mac-roman", MacRoman},
	{"cyrillic-koi8", KOI8R},
	{"koi8-r", KOI8R},
	{"koi8", KOI8R},
	{"japanese-shift-jis", ShiftJIS},
	{"shift_jis", ShiftJIS},
	{"sjis", ShiftJIS},
	{"thai-tis620", ISO8859_11},
	{"th-tis620", ISO8859_11},
	{"tis620", ISO8859_11},
	{"tis-620", ISO8859_11},
	{"mule-utf-16-be", UTF16BE},
	{"utf-16-be", UTF16BE},
	{"mule-utf-16-le", UTF16LE},
	{"utf-16-le", UTF16LE},
	{"mule-utf-8", UTF8},
	{"utf-8", UTF8},
	{"vietnamese-viscii", VISCII},
	{"viscii", VISCII},
	{"iso-latin-8", ISO8859_14},
	{"iso-8859-14", ISO8859_14},
	{"latin-8", ISO8859_14},
	{"compound-text", CompoundText},
	{"x-ctext", CompoundText},
	{"ctext", CompoundText},
	{"chinese-hz", HZ},
	{"hz-gb-2312", HZ},
	{"hz", HZ},
}
