// Package i18n localizes rendered content. Resource bundles are flat or
// nested key/value files, one per language, loaded from an fs.FS in YAML
// or JSON form. Lookup walks a fallback chain (exact tag, base language,
// default language) and formats positional arguments; a missing key
// renders as "???key???" so untranslated text is visible in the page
// instead of silently blank.
//
// The package also negotiates the request language from an
// Accept-Language header, which callers typically feed into
// state.WithLocale.
package i18n
