package charset

import "strings"

// Namespace selects which family of character-set names to use for
// lookup and canonicalisation.
type Namespace int

const (
	Local Namespace = iota // this library's own plausibly legible names
	MIME                   // IANA/MIME charset names
	X11                    // X11 font encoding names
	Emacs                  // GNU Emacs coding system symbols
)

type nameEntry struct {
	name string
	cs   Set
}

// lookupIn finds name in a registry, case-insensitively.
func lookupIn(table []nameEntry, name string) Set {
	for _, e := range table {
		if strings.EqualFold(e.name, name) {
			return e.cs
		}
	}
	return None
}

// canonicalIn returns the first (canonical) name registered for cs.
func canonicalIn(table []nameEntry, cs Set) string {
	for _, e := range table {
		if e.cs == cs {
			return e.name
		}
	}
	return ""
}

// LookupName resolves a character-set name in the given namespace.
// The Local namespace additionally accepts any MIME, X11 or Emacs
// spelling, to maximise the number of ways a supported charset can be
// selected.
func LookupName(ns Namespace, name string) (Set, error) {
	var cs Set
	switch ns {
	case MIME:
		cs = lookupIn(mimeEncodings, name)
	case X11:
		cs = lookupIn(x11Encodings, name)
	case Emacs:
		cs = lookupIn(emacsEncodings, name)
	case Local:
		if cs = lookupIn(mimeEncodings, name); cs == None {
			if cs = lookupIn(x11Encodings, name); cs == None {
				if cs = lookupIn(emacsEncodings, name); cs == None {
					cs = lookupLocal(name)
				}
			}
		}
	}
	if cs == None {
		return None, ErrUnknownCharset
	}
	return cs, nil
}

// CanonicalName returns the canonical name of cs in the given
// namespace, or "" if the namespace has no name for it.
func CanonicalName(ns Namespace, cs Set) string {
	switch ns {
	case MIME:
		return canonicalIn(mimeEncodings, cs)
	case X11:
		return canonicalIn(x11Encodings, cs)
	case Emacs:
		return canonicalIn(emacsEncodings, cs)
	default:
		return canonicalLocal(cs)
	}
}
