package preferences

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported UI language code
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Marathi Language = "mr"
)

// DefaultLanguage is used when nothing else matches.
const DefaultLanguage = English

var supportedTags = []language.Tag{
	language.English, // first entry is the matcher's fallback
	language.Hindi,
	language.Marathi,
}

var matcher = language.NewMatcher(supportedTags)

// Languages lists the supported languages.
func Languages() []Language {
	return []Language{English, Hindi, Marathi}
}

// ParseLanguage accepts a bare language code or any BCP 47 tag whose base is
// supported ("hi-IN" → hi).
func ParseLanguage(s string) (Language, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	l := Language(base.String())
	return l, l.Valid()
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	switch l {
	case English, Hindi, Marathi:
		return true
	}
	return false
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header value.
func MatchAcceptLanguage(header string) Language {
	header = strings.TrimSpace(header)
	if header == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	base, _ := supportedTags[idx].Base()
	return Language(base.String())
}
