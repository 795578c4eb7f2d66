package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"<p>plain html</p>", "<p>plain html</p>"},
		{"```\n<p>fenced</p>\n```", "<p>fenced</p>"},
		{"```html\n<h2>tagged fence</h2>\n```", "<h2>tagged fence</h2>"},
		{"  ```html\n<p>padded</p>\n```  \n", "<p>padded</p>"},
		{"```html\n<p>no closing fence</p>", "<p>no closing fence</p>"},
		{"<p>no opening fence</p>\n```", "<p>no opening fence</p>"},
		{"~~~\n<p>unknown wrapper</p>\n~~~", "~~~\n<p>unknown wrapper</p>\n~~~"},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, StripCodeFence(c.in))
	}
}
