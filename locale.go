package charset

import (
	"os"
	"strings"
)

// langinfoCodeset is a hook for platforms that can report the locale
// codeset directly (nl_langinfo(CODESET) or equivalent); it returns ""
// when unavailable. The default implementation consults the CODESET
// environment variable, which some wrappers set.
var langinfoCodeset = func() string {
	return os.Getenv("CODESET")
}

// FromLocale tries very hard to figure out the charset identifier
// corresponding to the current locale: the platform codeset first, then
// heuristics over LC_ALL, LC_CTYPE and LANG (adapted from Markus Kuhn's
// public-domain nl_langinfo(CODESET) emulation). It returns ASCII when
// none of those variables is set or the locale is C or POSIX, and
// ISO8859_1 for a locale the heuristics do not recognise, so it always
// returns a valid charset.
func FromLocale() Set {
	if csname := langinfoCodeset(); csname != "" {
		if cs, err := LookupName(Local, csname); err == nil {
			return cs
		}
	}

	var l string
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if l = os.Getenv(v); l != "" {
			break
		}
	}
	if l == "" {
		return ASCII
	}

	// Standardised locales.
	if l == "C" || l == "POSIX" {
		return ASCII
	}
	// Encoding name fragments.
	if strings.Contains(l, "UTF") || strings.Contains(l, "utf") {
		return UTF8
	}
	if i := strings.Index(l, "8859-"); i >= 0 {
		digits := l[i+5:]
		n := 0
		for n < len(digits) && n < 2 && digits[n] >= '0' && digits[n] <= '9' {
			n++
		}
		if n > 0 {
			if cs, err := LookupName(Local, "ISO-8859-"+digits[:n]); err == nil {
				return cs
			}
		}
	}
	if strings.Contains(l, "KOI8-RU") {
		return KOI8RU
	}
	if strings.Contains(l, "KOI8-R") {
		return KOI8R
	}
	if strings.Contains(l, "KOI8-U") {
		return KOI8U
	}
	if strings.Contains(l, "2312") {
		return EUCCN
	}
	if strings.Contains(l, "Big5") || strings.Contains(l, "BIG5") {
		return Big5
	}
	if strings.Contains(l, "Shift_JIS") || strings.Contains(l, "SJIS") {
		return ShiftJIS
	}
	// Conclusive modifier.
	if strings.Contains(l, "euro") {
		return ISO8859_15
	}
	// Language (and perhaps country) codes.
	switch {
	case strings.Contains(l, "zh_TW"):
		return Big5
	case strings.Contains(l, "zh"):
		return EUCCN
	case strings.Contains(l, "ja"):
		return EUCJP
	case strings.Contains(l, "ko"):
		return EUCKR
	case strings.Contains(l, "ru"):
		return KOI8R
	case strings.Contains(l, "uk"):
		return KOI8U
	case strings.Contains(l, "pl"), strings.Contains(l, "hr"),
		strings.Contains(l, "hu"), strings.Contains(l, "cs"),
		strings.Contains(l, "sk"), strings.Contains(l, "sl"):
		return ISO8859_2
	case strings.Contains(l, "eo"), strings.Contains(l, "mt"):
		return ISO8859_3
	case strings.Contains(l, "el"):
		return ISO8859_7
	case strings.Contains(l, "he"):
		return ISO8859_8
	case strings.Contains(l, "tr"):
		return ISO8859_9
	case strings.Contains(l, "lt"):
		return ISO8859_13
	case strings.Contains(l, "cy"):
		return ISO8859_14
	case strings.Contains(l, "ro"):
		return ISO8859_2 // or ISO-8859-16
	case strings.Contains(l, "am"), strings.Contains(l, "vi"):
		return UTF8
	}
	return ISO8859_1
}
