package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source supplies translations grouped per language code. The outer map
// is keyed by language, the inner map holds the message tree.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// Map returns a Source backed by an in-memory map. Useful for tests and
// for programs that keep their messages in code.
func Map(data map[string]map[string]any) Source {
	return mapSource{data: data}
}

type mapSource struct {
	data map[string]map[string]any
}

func (s mapSource) Load(_ context.Context) (map[string]map[string]any, error) {
	if s.data == nil {
		return make(map[string]map[string]any), nil
	}
	return s.data, nil
}

// File returns a Source that reads a single translation file. The format
// is chosen by extension: .yaml, .yml or .json.
func File(path string) Source {
	return fileSource{path: path}
}

type fileSource struct {
	path string
}

func (s fileSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	return decode(s.path, content)
}

// Dir returns a Source that reads every supported translation file in
// root, merging them per language. Later files win on key collisions,
// files with unsupported extensions are skipped. Works with any fs.FS,
// including embed.FS and os.DirFS.
func Dir(fsys fs.FS, root string) Source {
	return dirSource{fsys: fsys, root: root}
}

type dirSource struct {
	fsys fs.FS
	root string
}

func (s dirSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(s.fsys, s.root)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	merged := make(map[string]map[string]any)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}
		if entry.IsDir() || !supportedExtension(entry.Name()) {
			continue
		}

		path := filepath.Join(s.root, entry.Name())
		content, err := fs.ReadFile(s.fsys, path)
		if err != nil {
			return nil, errors.Join(ErrReadFile, err)
		}

		translations, err := decode(path, content)
		if err != nil {
			return nil, err
		}
		for lang, messages := range translations {
			if merged[lang] == nil {
				merged[lang] = make(map[string]any)
			}
			maps.Copy(merged[lang], messages)
		}
	}

	if len(merged) == 0 {
		return nil, fmt.Errorf("%w: directory %q", ErrNoTranslations, s.root)
	}
	return merged, nil
}

func supportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// decode parses content into the per-language translation map. The
// format follows the file extension.
func decode(path string, content []byte) (map[string]map[string]any, error) {
	var raw map[string]any

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrParse, err)
		}
	case ".json":
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	result := make(map[string]map[string]any, len(raw))
	for lang, messages := range raw {
		tree, ok := messages.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q in %q holds %T, want a map",
				ErrParse, lang, path, messages)
		}
		result[lang] = tree
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: file %q", ErrNoTranslations, path)
	}
	return result, nil
}
