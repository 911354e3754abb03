package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShortTextUntouched(t *testing.T) {
	parts := SplitMessage("hello", 4096)
	assert.Equal(t, []string{"hello"}, parts)
}

func TestSplitMessageExactLimit(t *testing.T) {
	text := strings.Repeat("a", 100)
	parts := SplitMessage(text, 100)
	assert.Equal(t, []string{text}, parts)
}

func TestSplitMessageChunksAndReassembles(t *testing.T) {
	text := strings.Repeat("a", 250)
	parts := SplitMessage(text, 100)

	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.LessOrEqual(t, len([]rune(p)), 100)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplitMessagePrefersNewline(t *testing.T) {
	text := strings.Repeat("a", 80) + "\n" + strings.Repeat("b", 80)
	parts := SplitMessage(text, 100)

	require.Len(t, parts, 2)
	assert.Equal(t, strings.Repeat("a", 80)+"\n", parts[0])
	assert.Equal(t, strings.Repeat("b", 80), parts[1])
}

func TestSplitMessagePrefersNewlineInMultibyteText(t *testing.T) {
	// The break point is found by rune index, so multibyte text splits at
	// the newline just like ASCII does.
	text := strings.Repeat("я", 8) + "\n" + strings.Repeat("ж", 8)
	parts := SplitMessage(text, 10)

	require.Len(t, parts, 2)
	assert.Equal(t, strings.Repeat("я", 8)+"\n", parts[0])
	assert.Equal(t, strings.Repeat("ж", 8), parts[1])
}

func TestSplitMessageIgnoresEarlyNewline(t *testing.T) {
	// A newline in the first half of the chunk is not a good break point.
	text := "ab\n" + strings.Repeat("c", 150)
	parts := SplitMessage(text, 100)

	require.Len(t, parts, 2)
	assert.Equal(t, text, strings.Join(parts, ""))
	assert.Len(t, []rune(parts[0]), 100)
}
