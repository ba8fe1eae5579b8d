package definition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayoutRoundTrip(t *testing.T) {
	layouts := []Layout{
		LayoutTiled,
		LayoutEvenHorizontal,
		LayoutEvenVertical,
		LayoutMainHorizontal,
		LayoutMainVertical,
	}
	for _, want := range layouts {
		got, err := ParseLayout(want.String())
		require.NoError(t, err, "layout %s", want)
		assert.Equal(t, want, got)
	}
}

func TestParseLayoutMainVertical(t *testing.T) {
	// Regression guard: "main-vertical" must map to MainVertical, not
	// MainHorizontal.
	got, err := ParseLayout("main-vertical")
	require.NoError(t, err)
	assert.Equal(t, LayoutMainVertical, got)
}

func TestParseLayoutUnknown(t *testing.T) {
	_, err := ParseLayout("diagonal")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeFullDefinition(t *testing.T) {
	doc := []byte(`
name: dev
root: ~/projects/dev
windows:
  - name: edit
    cmd: vim
  - name: run
    layout: tiled
    root: ~/projects/dev/server
    panes:
      - npm start
      - npm test
      -
`)
	s, err := Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, "dev", s.Name)
	assert.Equal(t, "~/projects/dev", s.Root)
	require.Len(t, s.Windows, 2)

	edit := s.Windows[0]
	assert.Equal(t, "edit", edit.Name)
	assert.Equal(t, "vim", edit.Cmd)
	assert.Equal(t, DefaultLayout, edit.Layout, "absent layout takes the default")
	assert.Empty(t, edit.Panes)

	run := s.Windows[1]
	assert.Equal(t, LayoutTiled, run.Layout)
	assert.Equal(t, "~/projects/dev/server", run.Root)
	require.Len(t, run.Panes, 3)
	assert.Equal(t, "npm start", run.Panes[0].Cmd)
	assert.Equal(t, "npm test", run.Panes[1].Cmd)
	assert.Empty(t, run.Panes[2].Cmd, "null pane decodes to an idle pane")
}

func TestDecodeMinimal(t *testing.T) {
	s, err := Decode([]byte("name: bare"))
	require.NoError(t, err)
	assert.Equal(t, "bare", s.Name)
	assert.Empty(t, s.Windows, "windows default to empty rather than erroring")
}

func TestDecodeUnknownLayout(t *testing.T) {
	doc := []byte(`
name: dev
windows:
  - layout: diagonal
`)
	_, err := Decode(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "diagonal")
}

func TestDecodeMissingName(t *testing.T) {
	_, err := Decode([]byte("windows: []"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeNotATree(t *testing.T) {
	_, err := Decode([]byte("- just\n- a\n- list"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestValidateCmdAndPanesExclusive(t *testing.T) {
	doc := []byte(`
name: dev
windows:
  - name: both
    cmd: vim
    panes:
      - ls
`)
	_, err := Decode(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "mutually exclusive")
}
