package bulletin

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWrapTextGreedy(t *testing.T) {
	var lines, err = WrapText("the quick brown fox jumps over the lazy dog", 10, OverflowHardCut)
	require.NoError(t, err)
	assert.Equal(t, []string{"the quick", "brown fox", "jumps over", "the lazy", "dog"}, lines)
}

func TestWrapTextCollapsesWhitespace(t *testing.T) {
	var lines, err = WrapText("  one\ttwo\n\nthree   ", 80, OverflowHardCut)
	require.NoError(t, err)
	assert.Equal(t, []string{"one two three"}, lines)

	lines, err = WrapText(" \n ", 80, OverflowHardCut)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestWrapTextLongWord(t *testing.T) {
	var text = "go abcdefghijklmnop end"

	var lines, err = WrapText(text, 6, OverflowHardCut)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "abcdef", "ghijkl", "mnop", "end"}, lines)

	lines, err = WrapText(text, 6, OverflowEmit)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "abcdefghijklmnop", "end"}, lines)

	_, err = WrapText(text, 6, OverflowFail)
	assert.ErrorIs(t, err, ErrEncodingOverflow)
}

func TestWrapTextHardCutKeepsRunes(t *testing.T) {
	var lines, err = WrapText("ééééé", 3, OverflowHardCut)
	require.NoError(t, err)
	assert.Equal(t, []string{"é", "é", "é", "é", "é"}, lines)
}

func TestWrapTextBadWidth(t *testing.T) {
	var _, err = WrapText("x", 0, OverflowHardCut)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWrapTextProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var words = rapid.SliceOf(rapid.StringMatching(`[a-z]{1,12}`)).Draw(t, "words")
		var width = rapid.IntRange(12, 80).Draw(t, "width")

		var lines, err = WrapText(strings.Join(words, " "), width, OverflowFail)
		require.NoError(t, err)

		for _, line := range lines {
			assert.LessOrEqual(t, len(line), width)
			assert.NotEmpty(t, line)
		}

		// Nothing lost, nothing split.
		assert.Equal(t, strings.Join(words, " "), strings.Join(lines, " "))
	})
}

func TestPadGroup(t *testing.T) {
	assert.Equal(t, "WX   ", padGroup("WX", 5))
	assert.Equal(t, "BOM_W", padGroup("BOM_WARN", 5))
	assert.Equal(t, "BOM_WARN ", padGroup("BOM_WARN", 9))

	// A cut inside a two byte rune drops the whole rune.
	var cut = padGroup("WXYZ\u00e9", 5)
	assert.Equal(t, "WXYZ ", cut)
	assert.True(t, utf8.ValidString(cut))

	assert.Equal(t, "\u00e9\u00e9 ", padGroup("\u00e9\u00e9\u00e9", 5))
}

func TestParseOverflowPolicy(t *testing.T) {
	for _, p := range []OverflowPolicy{OverflowHardCut, OverflowEmit, OverflowFail} {
		var got, err = ParseOverflowPolicy(strings.ToUpper(p.String()))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	var _, err = ParseOverflowPolicy("truncate")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
