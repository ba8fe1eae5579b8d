package definition

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir layout is platform specific; test assumes XDG")
	}
	t.Setenv("XDG_CONFIG_HOME", "/home/sam/.config")

	tests := []struct {
		name     string
		session  string
		explicit string
		want     string
	}{
		{"explicit file wins", "dev", "custom.yaml", "custom.yaml"},
		{"session name maps to config dir", "dev", "", "/home/sam/.config/precession/dev.yaml"},
		{"fallback to local definition", "", "", ".session.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(tt.session, tt.explicit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dev.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: dev\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", s.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("windows: []\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), path, "error names the offending file")
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"ops.yaml", "dev.yaml", "notes.txt", "alt.yml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("name: x\n"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755))

	defs, err := List(dir)
	require.NoError(t, err)

	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"alt", "dev", "ops"}, names)
	for _, d := range defs {
		assert.Equal(t, dir, filepath.Dir(d.Path))
	}
}

func TestListMissingDir(t *testing.T) {
	defs, err := List(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, defs)
}
