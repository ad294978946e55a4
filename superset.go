package charset

// Upgrade promotes a charset identifier to a superset charset which is
// often confused with it. People whose software reports its output as
// ASCII or ISO 8859-1 frequently turn out to be using CP1252 quote
// characters, so treating those labels as CP1252 parses no genuinely
// correct text wrongly; likewise ISO 8859-4 / CP1254 and EUC-KR /
// CP949. The idea is not to record all superset relations, only the
// labels used in practice to mean something bigger.
func Upgrade(cs Set) Set {
	switch cs {
	case ASCII, ISO8859_1:
		return CP1252
	case ISO8859_4:
		return CP1254
	case EUCKR:
		return CP949
	default:
		return cs
	}
}

// ContainsASCII reports whether cs is a vaguely sensible superset of
// ASCII. It is false for 7-bit stateful formats such as HZ and UTF-7.
func ContainsASCII(cs Set) bool {
	return cs != HZ && cs != UTF7 && cs != UTF7Conservative
}
