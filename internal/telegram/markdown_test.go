package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixMarkdown(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"balanced code block untouched", "```go\nfmt.Println()\n```", "```go\nfmt.Println()\n```"},
		{"unclosed code block closed", "```go\nfmt.Println()", "```go\nfmt.Println()\n```"},
		{"balanced inline code untouched", "use `go build` here", "use `go build` here"},
		{"unclosed inline code closed", "use `go build here", "use `go build here`"},
		{"backtick inside code block ignored", "```\na ` b\n```", "```\na ` b\n```"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FixMarkdown(tc.in))
		})
	}
}

func TestFixMarkdownClosesInlineBeforeCodeBlock(t *testing.T) {
	// An inline backtick left open when a code block starts is closed so
	// the fence is not swallowed.
	got := FixMarkdown("broken `inline\n```\ncode\n```")
	assert.Equal(t, "broken `inline`\n```\ncode\n```", got)
}
