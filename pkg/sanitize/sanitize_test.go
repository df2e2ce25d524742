package sanitize_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftweb/lift/pkg/htmlnorm"
	"github.com/liftweb/lift/pkg/sanitize"
)

func TestPlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips script injection",
			input:    `<p>Hello</p><script>alert('xss')</script>`,
			expected: "Hello",
		},
		{
			name:     "strips all formatting",
			input:    `<p>Hello <strong>world</strong></p>`,
			expected: "Hello world",
		},
		{
			name:     "strips event handlers",
			input:    `<img src="x" onerror="alert('xss')">`,
			expected: "",
		},
		{
			name:     "plain text passes through",
			input:    "normal text without HTML",
			expected: "normal text without HTML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitize.Plain(tt.input))
		})
	}
}

func TestFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps formatting tags",
			input:    `<p>Hello <strong>world</strong></p>`,
			expected: `<p>Hello <strong>world</strong></p>`,
		},
		{
			name:     "keeps headings and lists",
			input:    `<h2>Title</h2><ul><li>one</li></ul>`,
			expected: `<h2>Title</h2><ul><li>one</li></ul>`,
		},
		{
			name:     "strips script but keeps surrounding markup",
			input:    `<p>before</p><script>alert(1)</script><p>after</p>`,
			expected: `<p>before</p><p>after</p>`,
		},
		{
			name:     "strips event handler attributes",
			input:    `<p onclick="alert(1)">text</p>`,
			expected: `<p>text</p>`,
		},
		{
			name:     "strips javascript links but keeps text",
			input:    `<a href="javascript:alert(1)">click</a>`,
			expected: `click`,
		},
		{
			name:     "links get rel nofollow",
			input:    `<a href="https://example.com">site</a>`,
			expected: `<a href="https://example.com" rel="nofollow">site</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitize.Fragment(tt.input))
		})
	}
}

func TestFragmentNodes(t *testing.T) {
	t.Parallel()

	nodes, err := sanitize.FragmentNodes(`<p onclick="alert(1)">hi <em>there</em></p>`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	p, ok := nodes[0].(*htmlnorm.Element)
	require.True(t, ok)
	assert.Equal(t, "p", p.Tag)
	_, hasOnclick := p.Attr("onclick")
	assert.False(t, hasOnclick)
	require.Len(t, p.Children, 2)
	assert.Equal(t, htmlnorm.Text("hi "), p.Children[0])
}

func TestWithPolicy(t *testing.T) {
	t.Parallel()

	t.Run("nil policy passes through", func(t *testing.T) {
		t.Parallel()
		in := `<marquee>anything</marquee>`
		assert.Equal(t, in, sanitize.WithPolicy(in, nil))
	})

	t.Run("custom policy applies", func(t *testing.T) {
		t.Parallel()
		p := bluemonday.NewPolicy()
		p.AllowElements("b")
		assert.Equal(t, `<b>bold</b>`, sanitize.WithPolicy(`<b>bold</b><i>italic</i>`, p))
	})
}
