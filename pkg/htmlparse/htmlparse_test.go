package htmlparse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftweb/lift/pkg/htmlnorm"
	"github.com/liftweb/lift/pkg/htmlparse"
)

func TestParseFragment(t *testing.T) {
	t.Parallel()

	nodes, err := htmlparse.ParseFragment(`<div class="c"><a href="/x">go</a></div>tail`)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	div := nodes[0].(*htmlnorm.Element)
	assert.Equal(t, "div", div.Tag)
	require.Len(t, div.Attrs, 1)
	assert.Equal(t, htmlnorm.Attr{Name: "class", Value: "c"}, div.Attrs[0])

	a := div.Children[0].(*htmlnorm.Element)
	assert.Equal(t, "a", a.Tag)
	assert.Equal(t, htmlnorm.Text("go"), a.Children[0])

	assert.Equal(t, htmlnorm.Text("tail"), nodes[1])
}

func TestParseFragment_PreservesAttrOrder(t *testing.T) {
	t.Parallel()

	nodes, err := htmlparse.ParseFragment(`<input b="2" a="1" c="3"/>`)
	require.NoError(t, err)

	input := nodes[0].(*htmlnorm.Element)
	names := make([]string, len(input.Attrs))
	for i, a := range input.Attrs {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestParseFragment_Comment(t *testing.T) {
	t.Parallel()

	nodes, err := htmlparse.ParseFragment(`<!-- note --><p>x</p>`)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, htmlnorm.Comment(" note "), nodes[0])
}

func TestParseDocument(t *testing.T) {
	t.Parallel()

	doc := `<!DOCTYPE html><html><head><title>t</title></head><body><p>hi</p></body></html>`
	nodes, err := htmlparse.ParseDocument(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, htmlnorm.Raw("<!DOCTYPE html>"), nodes[0])
	root := nodes[1].(*htmlnorm.Element)
	assert.Equal(t, "html", root.Tag)
}

func TestRender(t *testing.T) {
	t.Parallel()

	tree := []htmlnorm.Node{
		htmlnorm.Raw("<!DOCTYPE html>"),
		htmlnorm.NewElement("div",
			htmlnorm.Attr{Name: "id", Value: "x"},
			htmlnorm.Attr{Name: "title", Value: `a "b" <c>`},
		).WithChildren(
			htmlnorm.Text("1 < 2"),
			htmlnorm.NewElement("br"),
			htmlnorm.Comment("note"),
		),
		htmlnorm.Group{Children: []htmlnorm.Node{htmlnorm.Text("grouped")}},
	}

	got := htmlparse.Render(tree)
	want := `<!DOCTYPE html><div id="x" title="a &#34;b&#34; &lt;c&gt;">1 &lt; 2<br/><!--note--></div>grouped`
	assert.Equal(t, want, got)
}

func TestRender_ScriptNotEscaped(t *testing.T) {
	t.Parallel()

	nodes, err := htmlparse.ParseFragment(`<script>if (a && b) run();</script>`)
	require.NoError(t, err)

	got := htmlparse.Render(nodes)
	assert.Equal(t, `<script>if (a && b) run();</script>`, got)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	in := `<div class="c"><a href="/x">go</a><img src="/i.png"/></div>`
	nodes, err := htmlparse.ParseFragment(in)
	require.NoError(t, err)
	assert.Equal(t, in, htmlparse.Render(nodes))
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	nodes, err := htmlparse.Markdown([]byte("# Title\n\nSome *emphasis*."))
	require.NoError(t, err)
	require.NotEmpty(t, nodes)

	rendered := htmlparse.Render(nodes)
	assert.Contains(t, rendered, "<h1>Title</h1>")
	assert.Contains(t, rendered, "<em>emphasis</em>")
}

func TestParseThenNormalize(t *testing.T) {
	t.Parallel()

	nodes, err := htmlparse.ParseFragment(`<a href="javascript:go();">link</a>`)
	require.NoError(t, err)

	out, cmds, err := htmlnorm.Normalize[struct{}](htmlnorm.Config{}, nodes, struct{}{}, nil)
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, "click", cmds[0].Name)

	a := out[0].(*htmlnorm.Element)
	_, hasHref := a.Attr("href")
	assert.False(t, hasHref)
	_, hasID := a.ID()
	assert.True(t, hasID)
}
