package charset

// X11 font encoding names (the CHARSET_REGISTRY-CHARSET_ENCODING tail
// of an XLFD). Where multiple names map to one charset the first is
// canonical.

var x11Encodings = []nameEntry{
	{"iso8859-1", ISO8859_1},
	{"iso8859-2", ISO8859_2},
	{"iso8859-3", ISO8859_3},
	{"iso8859-4", ISO8859_4},
	{"iso8859-5", ISO8859_5},
	{"iso8859-6", ISO8859_6},
	{"iso8859-7", ISO8859_7},
	{"iso8859-8", ISO8859_8},
	{"iso8859-9", ISO8859_9},
	{"iso8859-10", ISO8859_10},
	{"iso8859-11", ISO8859_11},
	{"iso8859-13", ISO8859_13},
	{"iso8859-14", ISO8859_14},
	{"iso8859-15", ISO8859_15},
	{"iso8859-16", ISO8859_16},
	{"koi8-r", KOI8R},
	{"koi8-u", KOI8U},
	{"koi8-ru", KOI8RU},
	{"jisx0201.1976-0", JISX0201},
	{"ibm-cp437", CP437},
	{"ibm-cp850", CP850},
	{"ibm-cp866", CP866},
	{"microsoft-cp1250", CP1250},
	{"microsoft-cp1251", CP1251},
	{"microsoft-cp1252", CP1252},
	{"microsoft-cp1253", CP1253},
	{"microsoft-cp1254", CP1254},
	{"microsoft-cp1255", CP1255},
	{"microsoft-cp1256", CP1256},
	{"microsoft-cp1257", CP1257},
	{"microsoft-cp1258", CP1258},
	{"mac-roman", MacRoman},
	{"viscii1.1-1", VISCII},
	{"hp-roman8", HPRoman8},
	{"dec-dectech", DECGraphics},
	{"big5-0", Big5},
	{"big5.eten-0", Big5},
	{"gb2312.1980-0", EUCCN},
	{"ksc5601.1987-0", CP949},
	{"jisx0208.1983-0", EUCJP},
	{"utf8-0", UTF8},
	{"iso10646-1", UTF16},
}
