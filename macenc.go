package charset

import "strings"

// Mac OS script and region codes, as found in classic resource forks
// and font records.
const (
	macScriptRoman    = 0
	macScriptCyrillic = 7
	macScriptGreek    = 6
	macScriptThai     = 21
	macScriptCenteuro = 29

	macRegionIceland = 21
	macRegionTurkey  = 24
	macRegionCroatia = 68
	macRegionRomania = 39
	macRegionUkraine = 62
)

// macVersionEuro is the system version (8.5) from which Apple moved
// the currency-sign position to the euro sign.
const macVersionEuro = 0x0850

// FromMacOS deduces a charset from a Mac OS script/region pair, the
// running system version, and optionally a font name for the special
// cases (the Symbol and Dingbats fonts, and VT100 terminal fonts).
// It returns None if the script is not one we have a mapping for.
func FromMacOS(script, region, sysvers int, fontname string) Set {
	old := sysvers < macVersionEuro

	switch {
	case strings.EqualFold(fontname, "Symbol"):
		return MacSymbol
	case strings.EqualFold(fontname, "Zapf Dingbats"):
		return MacDingbats
	case strings.EqualFold(fontname, "VT100"):
		if old {
			return MacVT100Old
		}
		return MacVT100
	}

	switch script {
	case macScriptRoman:
		switch region {
		case macRegionIceland:
			if old {
				return MacIcelandOld
			}
			return MacIceland
		case macRegionTurkey:
			return MacTurkish
		case macRegionCroatia:
			if old {
				return MacCroatianOld
			}
			return MacCroatian
		case macRegionRomania:
			if old {
				return MacRomanianOld
			}
			return MacRomanian
		default:
			if old {
				return MacRomanOld
			}
			return MacRoman
		}
	case macScriptCyrillic:
		if region == macRegionUkraine {
			return MacUkraine
		}
		if old {
			return MacCyrillicOld
		}
		return MacCyrillic
	case macScriptGreek:
		if old {
			return MacGreekOld
		}
		return MacGreek
	case macScriptThai:
		return MacThai
	case macScriptCenteuro:
		return MacCenteuro
	}
	return None
}
