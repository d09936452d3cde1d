package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"plain text", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"tags", "<b>x</b>", "&lt;b&gt;x&lt;/b&gt;"},
		{"quotes kept", `say "hi" 'there'`, `say "hi" 'there'`},
		{"no-break space", "a\u00a0b", "a&nbsp;b"},
		{"unicode", "héllo → 世界", "héllo → 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := escapeText(tt.input); result != tt.expected {
				t.Errorf("escapeText(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"plain text", "hello", "hello"},
		{"double quote", `a "b"`, "a &quot;b&quot;"},
		{"angle brackets kept", "a<b>", "a<b>"},
		{"single quote kept", "it's", "it's"},
		{"ampersand", "a&b", "a&amp;b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := escapeAttr(tt.input); result != tt.expected {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsVoidElement(t *testing.T) {
	assert.True(t, IsVoidElement("input"))
	assert.True(t, IsVoidElement("br"))
	assert.False(t, IsVoidElement("div"))
	assert.False(t, IsVoidElement("BR"), "tags are lower-case")
}

func TestOuterHTMLRawText(t *testing.T) {
	style := CreateElement("style")
	style.AppendChild(CreateTextNode("a > b { color: red }"))

	assert.Equal(t, "<style>a > b { color: red }</style>", style.OuterHTML())
}

func BenchmarkEscapeText(b *testing.B) {
	s := `<script>alert("xss")</script> & more content here`
	for i := 0; i < b.N; i++ {
		escapeText(s)
	}
}
