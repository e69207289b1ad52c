package memhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	tree := New()
	div := tree.CreateElement("div")
	tree.SetAttribute(div, "id", "main")
	tree.SetAttribute(div, "class", "a b")
	tree.SetAttribute(div, "hidden", "")
	tree.AppendChild(div, tree.CreateTextNode("1 < 2 & 3"))
	img := tree.CreateElement("img")
	tree.SetAttribute(img, "alt", `say "hi"`)
	tree.AppendChild(div, img)

	assert.Equal(t,
		`<div class="a b" hidden id="main">1 &lt; 2 &amp; 3<img alt="say &quot;hi&quot;"></div>`,
		tree.HTML(div))
	assert.Equal(t, `1 &lt; 2 &amp; 3<img alt="say &quot;hi&quot;">`, tree.InnerHTML(div))
}

func TestFingerprint(t *testing.T) {
	tree := New()
	a := tree.CreateElement("p")
	b := tree.CreateElement("p")
	tree.AppendChild(a, tree.CreateTextNode("x"))
	tree.AppendChild(b, tree.CreateTextNode("x"))

	assert.Equal(t, tree.Fingerprint(a), tree.Fingerprint(b))

	tree.SetAttribute(b, "id", "b")
	assert.NotEqual(t, tree.Fingerprint(a), tree.Fingerprint(b))
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "plain text", input: "Hello, World!", expected: "Hello, World!"},
		{name: "ampersand", input: "Tom & Jerry", expected: "Tom &amp; Jerry"},
		{name: "single quote", input: "it's fine", expected: "it&#39;s fine"},
		{
			name:     "script tag",
			input:    "<script>alert('xss')</script>",
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{name: "unicode preserved", input: "Hello 世界 🌍", expected: "Hello 世界 🌍"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeHTML(tt.input))
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	assert.Equal(t, "a&#10;b&#9;c&#13;", escapeAttr("a\nb\tc\r"))
	assert.Equal(t, "x=&quot;1&quot;", escapeAttr(`x="1"`))
}
