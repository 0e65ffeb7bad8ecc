package tailwind

import "regexp"

// Opening-tag anchors for the injection fallbacks. Attributes are
// unconstrained, matching is case-insensitive, and only the first occurrence
// is ever used.
var (
	headOpenRe = regexp.MustCompile(`(?i)<head[^>]*>`)
	htmlOpenRe = regexp.MustCompile(`(?i)<html[^>]*>`)
)

// InsertionPoint names the strategy used to place the compiled CSS.
type InsertionPoint string

const (
	// InsertReplaceCDN replaced the first CDN script tag in place.
	InsertReplaceCDN InsertionPoint = "replace-cdn"

	// InsertAfterHead inserted the style block after the opening <head> tag.
	InsertAfterHead InsertionPoint = "after-head"

	// InsertAfterHTML inserted a synthetic <head> after the opening <html> tag.
	InsertAfterHTML InsertionPoint = "after-html"

	// InsertPrepend prepended a synthetic <head> to the document start.
	InsertPrepend InsertionPoint = "prepend"
)

// styleBlock wraps compiled CSS in an inline style element.
func styleBlock(css string) string {
	return "<style>" + css + "</style>"
}

// syntheticHead fabricates a <head> wrapper for documents that have none.
func syntheticHead(css string) string {
	return "<head>" + styleBlock(css) + "</head>"
}

// InlineCSS splices css into html using the first applicable strategy, in
// strict priority order:
//
//  1. replace the first CDN script tag in place,
//  2. insert after the first opening <head> tag,
//  3. insert a synthetic <head> after the first opening <html> tag,
//  4. prepend a synthetic <head> to the document.
//
// Exactly one insertion happens per call; the original text is otherwise
// untouched.
func InlineCSS(html, css string) (string, InsertionPoint) {
	if m, ok := FindCDNScript(html); ok {
		return html[:m.Start] + styleBlock(css) + html[m.End:], InsertReplaceCDN
	}
	if loc := headOpenRe.FindStringIndex(html); loc != nil {
		return html[:loc[1]] + styleBlock(css) + html[loc[1]:], InsertAfterHead
	}
	if loc := htmlOpenRe.FindStringIndex(html); loc != nil {
		return html[:loc[1]] + syntheticHead(css) + html[loc[1]:], InsertAfterHTML
	}
	return syntheticHead(css) + html, InsertPrepend
}
