package lift

import (
	"context"
	"log/slog"

	"github.com/liftweb/lift/pkg/htmlnorm"
	"github.com/liftweb/lift/pkg/htmlparse"
	"github.com/liftweb/lift/pkg/i18n"
	"github.com/liftweb/lift/pkg/js"
	"github.com/liftweb/lift/pkg/logger"
	"github.com/liftweb/lift/pkg/snippet"
	"github.com/liftweb/lift/pkg/state"
)

// Page ties the render pipeline together: localization, snippet expansion,
// event extraction, and script emission, all against one page state.
type Page struct {
	state      *state.State
	snippets   *snippet.Registry
	translator *i18n.Translator
	log        *slog.Logger
}

// PageOption configures a Page.
type PageOption func(*pageConfig)

type pageConfig struct {
	stateOpts   []state.Option
	snippetOpts []snippet.Option
	translator  *i18n.Translator
	log         *slog.Logger
}

// WithContextPath sets the application's mount path. Context-relative URLs
// in rendered markup are rebased under it.
func WithContextPath(path string) PageOption {
	return func(c *pageConfig) {
		c.stateOpts = append(c.stateOpts, state.WithContextPath(path))
	}
}

// WithLocale sets the page language used for localization.
func WithLocale(locale string) PageOption {
	return func(c *pageConfig) {
		c.stateOpts = append(c.stateOpts, state.WithLocale(locale))
	}
}

// WithURLRewriter installs a rewrite applied to rebased URLs, e.g. for
// session encoding or asset fingerprints.
func WithURLRewriter(fn htmlnorm.RewriteFunc) PageOption {
	return func(c *pageConfig) {
		c.stateOpts = append(c.stateOpts, state.WithURLRewriter(fn))
	}
}

// WithRemovedEventsAttr names a diagnostic attribute that records which
// event attributes were extracted from each element.
func WithRemovedEventsAttr(name string) PageOption {
	return func(c *pageConfig) {
		c.stateOpts = append(c.stateOpts, state.WithRemovedEventsAttr(name))
	}
}

// WithStrictSnippets makes an unknown snippet invocation a render error
// instead of a logged comment.
func WithStrictSnippets() PageOption {
	return func(c *pageConfig) {
		c.snippetOpts = append(c.snippetOpts, snippet.WithStrict())
	}
}

// WithTranslator localizes data-loc elements before snippet expansion.
func WithTranslator(t *i18n.Translator) PageOption {
	return func(c *pageConfig) { c.translator = t }
}

// WithLogger sets the logger used by the page, its state, and its snippet
// registry.
func WithLogger(log *slog.Logger) PageOption {
	return func(c *pageConfig) { c.log = log }
}

// NewPage creates a page with a fresh state and an empty snippet registry.
func NewPage(opts ...PageOption) *Page {
	cfg := pageConfig{log: logger.NewNope()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.stateOpts = append(cfg.stateOpts, state.WithLogger(cfg.log))
	cfg.snippetOpts = append(cfg.snippetOpts, snippet.WithLogger(cfg.log))

	return &Page{
		state:      state.New(cfg.stateOpts...),
		snippets:   snippet.NewRegistry(cfg.snippetOpts...),
		translator: cfg.translator,
		log:        cfg.log,
	}
}

// State returns the page's render state.
func (p *Page) State() *state.State { return p.state }

// Snippets returns the page's snippet registry.
func (p *Page) Snippets() *snippet.Registry { return p.snippets }

// Render runs the pipeline over nodes: localization when a translator is
// configured, then snippet expansion and event extraction. It returns the
// normalized tree and the extracted commands.
func (p *Page) Render(ctx context.Context, nodes []Node) ([]Node, CommandSeq, error) {
	ctx = logger.WithPageID(ctx, p.state.PageID())

	if p.translator != nil {
		nodes = p.translator.LocalizeTree(p.state.Locale(), nodes)
	}

	out, cmds, err := p.snippets.Render(p.state, nodes)
	if err != nil {
		p.log.ErrorContext(ctx, "render failed", slog.String("error", err.Error()))
		return nil, nil, err
	}

	p.log.DebugContext(ctx, "rendered page",
		slog.Int("nodes", len(out)),
		slog.Int("commands", len(cmds)))
	return out, cmds, nil
}

// RenderHTML renders nodes to markup. Extracted event handlers are
// appended as a script element after the normalized tree.
func (p *Page) RenderHTML(ctx context.Context, nodes []Node) (string, error) {
	out, cmds, err := p.Render(ctx, nodes)
	if err != nil {
		return "", err
	}

	html := htmlparse.Render(out)
	if len(cmds) > 0 {
		html += js.Script(js.RegisterHandlers(cmds))
	}
	return html, nil
}
