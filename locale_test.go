package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromLocale(t *testing.T) {
	restore := langinfoCodeset
	defer func() { langinfoCodeset = restore }()
	langinfoCodeset = func() string { return "" }

	setenv := func(l string) {
		t.Setenv("LC_ALL", l)
		t.Setenv("LC_CTYPE", "")
		t.Setenv("LANG", "")
	}

	tests := []struct {
		locale string
		want   Set
	}{
		{"C", ASCII},
		{"POSIX", ASCII},
		{"en_US.UTF-8", UTF8},
		{"de_DE.ISO-8859-15", ISO8859_15},
		{"de_DE.8859-1", ISO8859_1},
		{"ru_RU.KOI8-R", KOI8R},
		{"zh_CN.GB2312", EUCCN},
		{"zh_TW.Big5", Big5},
		{"ja_JP.SJIS", ShiftJIS},
		{"de_DE@euro", ISO8859_15},
		{"ja_JP", EUCJP},
		{"ko_KR", EUCKR},
		{"zh_TW", Big5},
		{"zh_CN", EUCCN},
		{"pl_PL", ISO8859_2},
		{"el_GR", ISO8859_7},
		{"tr_TR", ISO8859_9},
		{"fr_FR", ISO8859_1},
	}
	for _, tc := range tests {
		setenv(tc.locale)
		assert.Equal(t, tc.want, FromLocale(), "locale %q", tc.locale)
	}

	// No locale variables at all falls back to ASCII.
	setenv("")
	assert.Equal(t, ASCII, FromLocale())

	// An explicit codeset wins.
	setenv("fr_FR")
	langinfoCodeset = func() string { return "UTF-8" }
	assert.Equal(t, UTF8, FromLocale())
}
