package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidColor(t *testing.T) {
	t.Run("valid colors", func(t *testing.T) {
		valid := []Color{ColorYellow, ColorGreen, ColorRed, ColorPurple, ColorGray, ColorRandom}
		for _, v := range valid {
			require.True(t, IsValidColor(v), "expected valid color: %s", v)
		}
	})

	t.Run("invalid colors", func(t *testing.T) {
		invalid := []Color{"", "black", "grey", "Yellow"}
		for _, v := range invalid {
			require.False(t, IsValidColor(v), "expected invalid color: %s", v)
		}
	})
}

func TestIsValidFormat(t *testing.T) {
	require.True(t, IsValidFormat(FormatHTML))
	require.True(t, IsValidFormat(FormatText))
	require.False(t, IsValidFormat("png"))
	require.False(t, IsValidFormat(""))
}

func TestIsValidKind(t *testing.T) {
	require.True(t, IsValidKind(KindRoom))
	require.True(t, IsValidKind(KindUser))
	require.False(t, IsValidKind("group"))
}

func TestParseColor(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		c, err := ParseColor("")
		require.NoError(t, err)
		require.Equal(t, ColorYellow, c)
	})

	t.Run("grey alias", func(t *testing.T) {
		c, err := ParseColor("Grey")
		require.NoError(t, err)
		require.Equal(t, ColorGray, c)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseColor("black")
		require.ErrorIs(t, err, ErrInvalidColor)
	})
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatHTML, f)

	f, err = ParseFormat("TEXT")
	require.NoError(t, err)
	require.Equal(t, FormatText, f)

	_, err = ParseFormat("png")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", Truncate("abc", 64))
	require.Equal(t, "ab", Truncate("abc", 2))
	require.Equal(t, "日本", Truncate("日本語", 2))
	require.Len(t, Truncate(strings.Repeat("x", MaxMessageLength+5), MaxMessageLength), MaxMessageLength)
}
