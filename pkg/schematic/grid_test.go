package schematic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantHeight int
		wantWidth  int
		wantString string
	}{
		{"single row", "467..114..", 1, 10, "467..114.."},
		{"trailing newline ignored", "12.\n.*.\n", 2, 3, "12.\n.*."},
		{"several trailing newlines", "12.\n.*.\n\n\n", 2, 3, "12.\n.*."},
		{"leading blank lines ignored", "\n\n12.\n.*.", 2, 3, "12.\n.*."},
		{"crlf line endings", "12.\r\n.*.\r\n", 2, 3, "12.\n.*."},
		{"single cell", "*", 1, 1, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeight, g.Height())
			assert.Equal(t, tt.wantWidth, g.Width())
			assert.Equal(t, tt.wantString, g.String())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("12.\n.*\n...")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformedGrid)

	var malformed *MalformedGridError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 1, malformed.Row)
	assert.Equal(t, 2, malformed.Width)
	assert.Equal(t, 3, malformed.Want)
	assert.Contains(t, err.Error(), "row 1")
}

func TestParse_BlankLineBetweenRowsIsMalformed(t *testing.T) {
	_, err := Parse("12.\n\n.*.")
	require.ErrorIs(t, err, ErrMalformedGrid)
	assert.NotErrorIs(t, err, ErrEmptyInput)
}

func TestParse_Empty(t *testing.T) {
	for _, raw := range []string{"", "\n", "\n\n\n", "\r\n\r\n"} {
		_, err := Parse(raw)
		require.ErrorIs(t, err, ErrEmptyInput, "input %q", raw)
		require.ErrorIs(t, err, ErrMalformedGrid, "input %q", raw)
	}
}

func TestParse_WhitespaceRowsAreKept(t *testing.T) {
	g, err := Parse("   \n1..\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.Width())

	c, ok := g.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, byte(' '), c)

	g, err = Parse("   ")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Height())

	_, err = Parse("  \n1..")
	require.ErrorIs(t, err, ErrMalformedGrid)
	assert.NotErrorIs(t, err, ErrEmptyInput)
}

func TestSolve_SpaceRowTouchesNumbers(t *testing.T) {
	got, err := Solve("   \n1..")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.PartNumberSum)
}

func TestGrid_Get(t *testing.T) {
	g, err := Parse("ab\ncd")
	require.NoError(t, err)

	c, ok := g.Get(1, 0)
	require.True(t, ok)
	assert.Equal(t, byte('c'), c)

	outside := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-1, -1}, {2, 2}}
	for _, rc := range outside {
		_, ok := g.Get(rc[0], rc[1])
		assert.False(t, ok, "(%d,%d)", rc[0], rc[1])
	}
}

func TestGrid_RowReturnsCopy(t *testing.T) {
	g, err := Parse("ab\ncd")
	require.NoError(t, err)

	row, ok := g.Row(0)
	require.True(t, ok)
	assert.Equal(t, []byte("ab"), row)

	row[0] = 'z'
	c, _ := g.Get(0, 0)
	assert.Equal(t, byte('a'), c)

	_, ok = g.Row(2)
	assert.False(t, ok)
	_, ok = g.Row(-1)
	assert.False(t, ok)
}
