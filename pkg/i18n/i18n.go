package i18n

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// DefaultLang is the fallback language used when no default is configured.
const DefaultLang = "en"

// Translator resolves message keys to localized text. It is immutable after
// creation, making it safe for concurrent use.
type Translator struct {
	// Flattened messages keyed by "lang:key.path".
	messages map[string]string

	// Languages that have at least one message, default first.
	languages []string

	// Matcher over languages, built once at construction.
	matcher language.Matcher

	defaultLang string
}

// Option configures the Translator during construction.
type Option func(*Translator) error

// New creates a Translator with the given options. All configuration happens
// during construction; the returned instance never changes.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{
		messages:    make(map[string]string),
		defaultLang: DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("i18n: applying option: %w", err)
		}
	}

	if t.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	t.languages = t.buildLanguageList()
	t.matcher = buildMatcher(t.languages)

	return t, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		t.defaultLang = lang
		return nil
	}
}

// WithMessages registers messages for a language directly. Nested maps are
// flattened with dot-separated keys, matching the file loaders.
func WithMessages(lang string, messages map[string]any) Option {
	return func(t *Translator) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		for key, value := range flattenMessages(messages, "") {
			t.messages[lang+":"+key] = value
		}
		return nil
	}
}

// T returns the localized message for key, formatted with args via
// fmt.Sprintf. Lookup walks the exact language tag, its base language, and
// the default language; a miss renders as "???key???" so untranslated text
// stays visible in the page.
func (t *Translator) T(lang, key string, args ...any) string {
	for _, candidate := range t.fallbackChain(lang) {
		if msg, ok := t.messages[candidate+":"+key]; ok {
			if len(args) == 0 {
				return msg
			}
			return fmt.Sprintf(msg, args...)
		}
	}
	return "???" + key + "???"
}

// Has reports whether key resolves for lang through the fallback chain.
func (t *Translator) Has(lang, key string) bool {
	for _, candidate := range t.fallbackChain(lang) {
		if _, ok := t.messages[candidate+":"+key]; ok {
			return true
		}
	}
	return false
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Languages returns the languages with at least one message, default first.
func (t *Translator) Languages() []string {
	out := make([]string, len(t.languages))
	copy(out, t.languages)
	return out
}

func (t *Translator) fallbackChain(lang string) []string {
	chain := make([]string, 0, 3)
	if lang != "" {
		chain = append(chain, lang)
		if base := baseLanguage(lang); base != lang {
			chain = append(chain, base)
		}
	}
	if t.defaultLang != "" && (len(chain) == 0 || chain[len(chain)-1] != t.defaultLang) {
		chain = append(chain, t.defaultLang)
	}
	return chain
}

func (t *Translator) buildLanguageList() []string {
	seen := map[string]bool{}
	for key := range t.messages {
		for i := 0; i < len(key); i++ {
			if key[i] == ':' {
				seen[key[:i]] = true
				break
			}
		}
	}

	langs := make([]string, 0, len(seen)+1)
	langs = append(langs, t.defaultLang)
	delete(seen, t.defaultLang)
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs[1:])
	return langs
}

func baseLanguage(lang string) string {
	for i := 0; i < len(lang); i++ {
		if lang[i] == '-' || lang[i] == '_' {
			return lang[:i]
		}
	}
	return lang
}

func flattenMessages(src map[string]any, prefix string) map[string]string {
	out := make(map[string]string)
	for key, value := range src {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			for k, s := range flattenMessages(v, full) {
				out[k] = s
			}
		default:
			out[full] = fmt.Sprint(v)
		}
	}
	return out
}
