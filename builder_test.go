// FILE: lixenwraith/settings/builder_test.go
package settings

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appDefaults struct {
	Theme  string `toml:"theme"`
	Volume int    `toml:"volume"`
}

func TestBuilder(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		s, err := NewBuilder().
			WithFile("/cfg/app.yaml").
			WithFs(fs).
			WithProfileDir("/cfg/saved").
			WithLogger(zerolog.Nop()).
			WithDefaults("ui", appDefaults{Theme: "light", Volume: 5}).
			Build()
		require.NoError(t, err)

		assert.Equal(t, FormatYAML, s.Codec().Format())
		assert.Equal(t, "/cfg/saved", s.ProfileDir())

		theme, err := Get[string](s, "ui.theme")
		require.NoError(t, err)
		assert.Equal(t, "light", theme)
	})

	t.Run("ForcedFormat", func(t *testing.T) {
		s, err := NewBuilder().
			WithFile("/cfg/app.conf").
			WithFs(afero.NewMemMapFs()).
			WithFormat("toml").
			Build()
		require.NoError(t, err)
		assert.Equal(t, FormatTOML, s.Codec().Format())
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := NewBuilder().
			WithFile("/cfg/app.json").
			WithFs(afero.NewMemMapFs()).
			WithFormat("xml").
			Build()
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("NoFile", func(t *testing.T) {
		_, err := NewBuilder().Build()
		assert.Error(t, err)
	})

	t.Run("DefaultsKeepStoredValues", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/cfg/app.json", []byte(`{"ui.volume": 9}`), 0644))

		s, err := NewBuilder().
			WithFile("/cfg/app.json").
			WithFs(fs).
			WithDefaults("ui", &appDefaults{Theme: "light", Volume: 5}).
			Build()
		require.NoError(t, err)

		v, err := Get[int](s, "ui.volume")
		require.NoError(t, err)
		assert.Equal(t, 9, v)
	})
}

func TestBuilderValidators(t *testing.T) {
	fs := afero.NewMemMapFs()
	errCustom := errors.New("volume too loud")

	var order []string
	_, err := NewBuilder().
		WithFile("/cfg/app.json").
		WithFs(fs).
		WithDefaults("", appDefaults{Volume: 11}).
		WithValidator(nil).
		WithValidator(func(s *Store) error {
			order = append(order, "first")
			return nil
		}).
		WithValidator(func(s *Store) error {
			order = append(order, "second")
			if v, _ := GetOr(s, "volume", 0); v > 10 {
				return errCustom
			}
			return nil
		}).
		Build()
	assert.ErrorIs(t, err, errCustom)
	assert.Equal(t, []string{"first", "second"}, order)

	t.Run("Require", func(t *testing.T) {
		_, err := NewBuilder().
			WithFile("/cfg/other.json").
			WithFs(fs).
			WithDefaults("", appDefaults{}).
			WithValidator(Require("theme", "api.token", "user.name")).
			Build()
		require.ErrorIs(t, err, ErrKeyNotFound)
		assert.Contains(t, err.Error(), "api.token, user.name")
	})
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder().WithFormat("ini").MustBuild()
	})
}

func TestQuick(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("DEMO_APP_SETTINGS", "")

	s, err := Quick("demo-app", appDefaults{Theme: "dark"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "demo-app", DefaultFileName), s.Path())

	theme, err := Get[string](s, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
	require.NoError(t, s.Close())

	again := MustQuick("demo-app", nil)
	theme, err = Get[string](again, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestBuilderAppName(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("VIEWER_SETTINGS", "")
	paths := DefaultPaths("viewer")

	tests := []struct {
		name       string
		build      func(b *Builder) *Builder
		file       string
		profileDir string
	}{
		{
			name:       "AppPaths",
			build:      func(b *Builder) *Builder { return b.WithAppName("viewer") },
			file:       paths.File,
			profileDir: paths.ProfileDir,
		},
		{
			name: "ExplicitProfileDirWins",
			build: func(b *Builder) *Builder {
				return b.WithProfileDir("/saved").WithAppName("viewer")
			},
			file:       paths.File,
			profileDir: "/saved",
		},
		{
			name: "ExplicitFileWins",
			build: func(b *Builder) *Builder {
				return b.WithAppName("viewer").WithFile("/etc/viewer/s.json")
			},
			file:       "/etc/viewer/s.json",
			profileDir: filepath.Join("/etc/viewer", DefaultProfileDirName),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.build(NewBuilder().WithFs(afero.NewMemMapFs())).Build()
			require.NoError(t, err)
			assert.Equal(t, tt.file, s.Path())
			assert.Equal(t, tt.profileDir, s.ProfileDir())
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Run("XDG", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		t.Setenv("TOOL_SETTINGS", "")
		p := DefaultPaths("tool")
		assert.Equal(t, filepath.Join("/xdg", "tool", DefaultFileName), p.File)
		assert.Equal(t, filepath.Join("/xdg", "tool", DefaultProfileDirName), p.ProfileDir)
	})

	t.Run("EnvOverride", func(t *testing.T) {
		t.Setenv("MY_TOOL_SETTINGS", "/etc/mytool/conf.yaml")
		p := DefaultPaths("my-tool")
		assert.Equal(t, "/etc/mytool/conf.yaml", p.File)
		assert.Equal(t, filepath.Join("/etc/mytool", DefaultProfileDirName), p.ProfileDir)
	})
}
