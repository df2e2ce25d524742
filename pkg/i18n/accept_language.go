package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength caps how much of an Accept-Language header is
// parsed so oversized headers cannot stall negotiation.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage negotiates the best loaded language for an
// Accept-Language header. It understands quality values ("en;q=0.9") and
// region fallbacks ("en-US" matches an "en" bundle). An empty or
// unparseable header yields the default language.
func (t *Translator) MatchAcceptLanguage(header string) string {
	if header == "" || len(t.languages) == 0 {
		return t.defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return t.defaultLang
	}

	_, index, conf := t.matcher.Match(desired...)
	if conf == language.No || index < 0 || index >= len(t.languages) {
		return t.defaultLang
	}
	return t.languages[index]
}

func buildMatcher(langs []string) language.Matcher {
	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			tag = language.Und
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = append(tags, language.Und)
	}
	return language.NewMatcher(tags)
}
