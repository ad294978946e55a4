package charset

// MIME standard character-set names, largely from the IANA registry at
// http://www.iana.org/assignments/character-sets. Where several names
// map to one charset the first is canonical. A few names not in the
// registry but seen in the wild in real mail are included too.

var mimeEncodings = []nameEntry{
	{"US-ASCII", ASCII},
	{"ANSI_X3.4-1968", ASCII},
	{"iso-ir-6", ASCII},
	{"ANSI_X3.4-1986", ASCII},
	{"ISO_646.irv:1991", ASCII},
	{"ASCII", ASCII},
	{"ISO646-US", ASCII},
	{"us", ASCII},
	{"IBM367", ASCII},
	{"cp367", ASCII},
	{"csASCII", ASCII},
	{"646", ASCII}, // wild

	{"BS_4730", BS4730},
	{"iso-ir-4", BS4730},
	{"ISO646-GB", BS4730},
	{"gb", BS4730},
	{"uk", BS4730},
	{"csISO4UnitedKingdom", BS4730},

	{"ISO-8859-1", ISO8859_1},
	{"ISO8859-1", ISO8859_1}, // wild
	{"iso-ir-100", ISO8859_1},
	{"ISO_8859-1", ISO8859_1},
	{"ISO_8859-1:1987", ISO8859_1},
	{"latin1", ISO8859_1},
	{"l1", ISO8859_1},
	{"IBM819", ISO8859_1},
	{"CP819", ISO8859_1},
	{"csISOLatin1", ISO8859_1},

	{"ISO-8859-2", ISO8859_2},
	{"ISO8859-2", ISO8859_2}, // wild
	{"ISO_8859-2:1987", ISO8859_2},
	{"iso-ir-101", ISO8859_2},
	{"ISO_8859-2", ISO8859_2},
	{"latin2", ISO8859_2},
	{"l2", ISO8859_2},
	{"csISOLatin2", ISO8859_2},

	{"ISO-8859-3", ISO8859_3},
	{"ISO8859-3", ISO8859_3}, // wild
	{"ISO_8859-3:1988", ISO8859_3},
	{"iso-ir-109", ISO8859_3},
	{"ISO_8859-3", ISO8859_3},
	{"latin3", ISO8859_3},
	{"l3", ISO8859_3},
	{"csISOLatin3", ISO8859_3},

	{"ISO-8859-4", ISO8859_4},
	{"ISO8859-4", ISO8859_4}, // wild
	{"ISO_8859-4:1988", ISO8859_4},
	{"iso-ir-110", ISO8859_4},
	{"ISO_8859-4", ISO8859_4},
	{"latin4", ISO8859_4},
	{"l4", ISO8859_4},
	{"csISOLatin4", ISO8859_4},

	{"ISO-8859-5", ISO8859_5},
	{"ISO8859-5", ISO8859_5}, // wild
	{"ISO_8859-5:1988", ISO8859_5},
	{"iso-ir-144", ISO8859_5},
	{"ISO_8859-5", ISO8859_5},
	{"cyrillic", ISO8859_5},
	{"csISOLatinCyrillic", ISO8859_5},

	{"ISO-8859-6", ISO8859_6},
	{"ISO8859-6", ISO8859_6}, // wild
	{"ISO_8859-6:1987", ISO8859_6},
	{"iso-ir-127", ISO8859_6},
	{"ISO_8859-6", ISO8859_6},
	{"ECMA-114", ISO8859_6},
	{"ASMO-708", ISO8859_6},
	{"arabic", ISO8859_6},
	{"csISOLatinArabic", ISO8859_6},

	{"ISO-8859-7", ISO8859_7},
	{"ISO8859-7", ISO8859_7}, // wild
	{"ISO_8859-7:1987", ISO8859_7},
	{"iso-ir-126", ISO8859_7},
	{"ISO_8859-7", ISO8859_7},
	{"ELOT_928", ISO8859_7},
	{"ECMA-118", ISO8859_7},
	{"greek", ISO8859_7},
	{"greek8", ISO8859_7},
	{"csISOLatinGreek", ISO8859_7},

	{"ISO-8859-8", ISO8859_8},
	{"ISO8859-8", ISO8859_8}, // wild
	{"ISO_8859-8:1988", ISO8859_8},
	{"iso-ir-138", ISO8859_8},
	{"ISO_8859-8", ISO8859_8},
	{"hebrew", ISO8859_8},
	{"csISOLatinHebrew", ISO8859_8},

	{"ISO-8859-9", ISO8859_9},
	{"ISO8859-9", ISO8859_9}, // wild
	{"ISO_8859-9:1989", ISO8859_9},
	{"iso-ir-148", ISO8859_9},
	{"ISO_8859-9", ISO8859_9},
	{"latin5", ISO8859_9},
	{"l5", ISO8859_9},
	{"csISOLatin5", ISO8859_9},

	{"ISO-8859-10", ISO8859_10},
	{"ISO8859-10", ISO8859_10}, // wild
	{"iso-ir-157", ISO8859_10},
	{"l6", ISO8859_10},
	{"ISO_8859-10:1992", ISO8859_10},
	{"csISOLatin6", ISO8859_10},
	{"latin6", ISO8859_10},

	{"TIS-620", ISO8859_11},

	{"ISO-8859-13", ISO8859_13},
	{"ISO8859-13", ISO8859_13}, // wild

	{"ISO-8859-14", ISO8859_14},
	{"ISO8859-14", ISO8859_14}, // wild
	{"iso-ir-199", ISO8859_14},
	{"ISO_8859-14:1998", ISO8859_14},
	{"ISO_8859-14", ISO8859_14},
	{"latin8", ISO8859_14},
	{"iso-celtic", ISO8859_14},
	{"l8", ISO8859_14},

	{"ISO-8859-15", ISO8859_15},
	{"ISO8859-15", ISO8859_15}, // wild
	{"ISO_8859-15", ISO8859_15},
	{"Latin-9", ISO8859_15},

	{"ISO-8859-16", ISO8859_16},
	{"ISO8859-16", ISO8859_16}, // wild
	{"iso-ir-226", ISO8859_16},
	{"ISO_8859-16", ISO8859_16},
	{"ISO_8859-16:2001", ISO8859_16},
	{"latin10", ISO8859_16},
	{"l10", ISO8859_16},

	{"IBM437", CP437},
	{"cp437", CP437},
	{"437", CP437},
	{"csPC8CodePage437", CP437},

	{"IBM850", CP850},
	{"cp850", CP850},
	{"850", CP850},
	{"csPC850Multilingual", CP850},

	{"IBM866", CP866},
	{"cp866", CP866},
	{"866", CP866},
	{"csIBM866", CP866},

	{"windows-1250", CP1250},
	{"win-1250", CP1250}, // wild
	{"windows-1251", CP1251},
	{"win-1251", CP1251}, // wild
	{"windows-1252", CP1252},
	{"win-1252", CP1252}, // wild
	{"windows-1253", CP1253},
	{"win-1253", CP1253}, // wild
	{"windows-1254", CP1254},
	{"win-1254", CP1254}, // wild
	{"windows-1255", CP1255},
	{"win-1255", CP1255}, // wild
	{"windows-1256", CP1256},
	{"win-1256", CP1256}, // wild
	{"windows-1257", CP1257},
	{"win-1257", CP1257}, // wild
	{"windows-1258", CP1258},
	{"win-1258", CP1258}, // wild

	{"KOI8-R", KOI8R},
	{"csKOI8R", KOI8R},
	{"KOI8-U", KOI8U},
	{"KOI8-RU", KOI8RU}, // wild

	{"JIS_X0201", JISX0201},
	{"X0201", JISX0201},
	{"csHalfWidthKatakana", JISX0201},

	{"macintosh", MacRomanOld},
	{"mac", MacRomanOld},
	{"csMacintosh", MacRomanOld},

	{"VISCII", VISCII},
	{"csVISCII", VISCII},

	{"hp-roman8", HPRoman8},
	{"roman8", HPRoman8},
	{"r8", HPRoman8},
	{"csHPRoman8", HPRoman8},

	{"DEC-MCS", DECMCS},
	{"dec", DECMCS},
	{"csDECMCS", DECMCS},

	{"UTF-8", UTF8},

	{"UTF-7", UTF7},
	{"UNICODE-1-1-UTF-7", UTF7},
	{"csUnicode11UTF7", UTF7},

	// The EUC-CN encoding is known to MIME by the name of its
	// underlying character set.
	{"GB2312", EUCCN},
	{"csGB2312", EUCCN},

	{"EUC-KR", EUCKR},
	{"csEUCKR", EUCKR},

	{"EUC-JP", EUCJP},
	{"csEUCPkdFmtJapanese", EUCJP},
	{"Extended_UNIX_Code_Packed_Format_for_Japanese", EUCJP},

	{"ISO-2022-JP", ISO2022JP},
	{"csISO2022JP", ISO2022JP},

	{"ISO-2022-KR", ISO2022KR},
	{"csISO2022KR", ISO2022KR},

	{"Big5", Big5},
	{"csBig5", Big5},
	{"Big-5", Big5},       // wild
	{"ChineseBig5", Big5}, // wild

	{"Shift_JIS", ShiftJIS},
	{"MS_Kanji", ShiftJIS},
	{"csShiftJIS", ShiftJIS},

	{"HZ-GB-2312", HZ},

	{"UTF-16BE", UTF16BE},
	{"UTF-16LE", UTF16LE},
	{"UTF-16", UTF16},

	// Rumour has it that the KSC 5601 encoding is a subset of
	// Microsoft CP949, and MS products tend to announce CP949 as
	// KSC 5601 in much the same way they announce CP1252 as its
	// subset ISO 8859-1, so KSC 5601 maps to CP949 here.
	{"KS_C_5601-1987", CP949},
	{"iso-ir-149", CP949},
	{"KS_C_5601-1989", CP949},
	{"KSC_5601", CP949},
	{"korean", CP949},
	{"csKSC56011987", CP949},
	{"KSC5601", CP949}, // wild
}
