package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir returns an Option that loads one JSON bundle per language from
// an fs.FS. File convention: {lang}.json at the fs root, e.g. en.json,
// de.json. Nested objects are flattened with dot-separated keys.
func WithJSONDir(fsys fs.FS) Option {
	return func(t *Translator) error {
		return loadBundles(t, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns an Option that loads one YAML bundle per language from
// an fs.FS. File convention: {lang}.yaml or {lang}.yml at the fs root.
func WithYAMLDir(fsys fs.FS) Option {
	return func(t *Translator) error {
		return loadBundles(t, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadBundles(t *Translator, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading bundle directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		fileExt := strings.ToLower(path.Ext(name))

		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			continue
		}

		lang := strings.TrimSuffix(name, path.Ext(name))
		if lang == "" {
			return fmt.Errorf("%w: %q has no language name", ErrInvalidFile, name)
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %q: %w", name, err)
		}

		var messages map[string]any
		if err := unmarshal(data, &messages); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
		}

		for key, value := range flattenMessages(messages, "") {
			t.messages[lang+":"+key] = value
		}
	}

	return nil
}
