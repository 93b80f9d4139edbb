package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schotanus/goutil/pkg/i18n"
)

func TestFileSource(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
en:
  greeting: "Hello, %{name}!"
  menu:
    file: File
nl:
  greeting: "Hallo, %{name}!"
`), 0o644))

		bundle, err := i18n.New(context.Background(), i18n.File(path))
		require.NoError(t, err)

		assert.Equal(t, "Hello, World!", bundle.T("en", "greeting", "name", "World"))
		assert.Equal(t, "File", bundle.T("en", "menu.file"))
		assert.Equal(t, []string{"en", "nl"}, bundle.SupportedLanguages())
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"en": {"menu": {"file": "File"}}
		}`), 0o644))

		bundle, err := i18n.New(context.Background(), i18n.File(path))
		require.NoError(t, err)
		assert.Equal(t, "File", bundle.T("en", "menu.file"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := i18n.New(context.Background(), i18n.File("no/such/file.yaml"))
		assert.ErrorIs(t, err, i18n.ErrReadFile)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.toml")
		require.NoError(t, os.WriteFile(path, []byte("en = 1"), 0o644))

		_, err := i18n.New(context.Background(), i18n.File(path))
		assert.ErrorIs(t, err, i18n.ErrUnsupportedFormat)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.yaml")
		require.NoError(t, os.WriteFile(path, []byte("en: [unbalanced"), 0o644))

		_, err := i18n.New(context.Background(), i18n.File(path))
		assert.ErrorIs(t, err, i18n.ErrParse)
	})

	t.Run("language without a message tree", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.yaml")
		require.NoError(t, os.WriteFile(path, []byte("en: just a string"), 0o644))

		_, err := i18n.New(context.Background(), i18n.File(path))
		assert.ErrorIs(t, err, i18n.ErrParse)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := i18n.New(ctx, i18n.File("irrelevant.yaml"))
		assert.ErrorIs(t, err, i18n.ErrLoadCancelled)
	})
}

func TestDirSource(t *testing.T) {
	t.Run("merges files per language", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/en.yaml": {Data: []byte("en:\n  greeting: Hello\n")},
			"locales/nl.json": {Data: []byte(`{"nl": {"greeting": "Hallo"}}`)},
			"locales/extra.yml": {Data: []byte("en:\n  farewell: Goodbye\n")},
			"locales/notes.txt": {Data: []byte("ignored")},
		}

		bundle, err := i18n.New(context.Background(), i18n.Dir(fsys, "locales"))
		require.NoError(t, err)

		assert.Equal(t, "Hello", bundle.T("en", "greeting"))
		assert.Equal(t, "Goodbye", bundle.T("en", "farewell"))
		assert.Equal(t, "Hallo", bundle.T("nl", "greeting"))
	})

	t.Run("no translation files", func(t *testing.T) {
		fsys := fstest.MapFS{"locales/readme.txt": {Data: []byte("nothing here")}}

		_, err := i18n.New(context.Background(), i18n.Dir(fsys, "locales"))
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.New(context.Background(), i18n.Dir(fstest.MapFS{}, "locales"))
		assert.ErrorIs(t, err, i18n.ErrReadFile)
	})
}
