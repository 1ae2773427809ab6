package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LoadJSON builds a database from JSON files in fsys.
// File convention: {lang}/{namespace}.json. Keys are "{namespace}.{path}"
// where nested objects are flattened with dots.
//
// Example structure:
//
//	en/common.json   {"items": {"count": "{0} none|{1} one|[2,*] :count"}}
//	ja/common.json
//
// yields the key "common.items.count".
func LoadJSON(fsys fs.FS, defaultLang string) (*MapDatabase[string], error) {
	return load(fsys, defaultLang, []string{".json"}, json.Unmarshal)
}

// LoadYAML is LoadJSON for {lang}/{namespace}.yaml or .yml files.
func LoadYAML(fsys fs.FS, defaultLang string) (*MapDatabase[string], error) {
	return load(fsys, defaultLang, []string{".yaml", ".yml"}, yaml.Unmarshal)
}

// CanonicalLanguage normalizes a language tag, e.g. "ja_jp" -> "ja-JP".
func CanonicalLanguage(lang string) (string, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "", ErrEmptyLanguage
	}
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("i18n: invalid language %q: %w", lang, err)
	}
	return tag.String(), nil
}

func load(fsys fs.FS, defaultLang string, exts []string, unmarshal func([]byte, any) error) (*MapDatabase[string], error) {
	def, err := CanonicalLanguage(defaultLang)
	if err != nil {
		return nil, err
	}

	data := make(map[string]map[string]string)

	err = fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		matches := false
		for _, e := range exts {
			if ext == e {
				matches = true
				break
			}
		}
		if !matches {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}

		lang, err := CanonicalLanguage(path.Base(dir))
		if err != nil {
			return fmt.Errorf("%w: %q: %s", ErrInvalidFile, filePath, err)
		}
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		raw, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var translations map[string]any
		if err := unmarshal(raw, &translations); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		for key, text := range flatten(translations, namespace) {
			if data[key] == nil {
				data[key] = make(map[string]string)
			}
			data[key][lang] = text
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return NewMapDatabase(def, data), nil
}

func flatten(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flatten(v, fullKey))
		case nil:
			result[fullKey] = ""
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
