// Package tailwind implements the Tailwind CDN detection and CSS injection
// core: recognizing a browser-build CDN script tag in raw HTML text and
// splicing locally compiled CSS into the document in its place.
//
// The package deliberately works on raw text with anchored regular
// expressions instead of a DOM parser. The inputs may be partial or
// malformed HTML fragments; correctness only depends on finding a literal
// marker substring and a handful of structural anchors.
package tailwind

import "regexp"

// cdnMarker identifies a browser-loaded Tailwind v4 build regardless of the
// CDN host serving it (jsdelivr, unpkg, or anything else).
const cdnMarker = "@tailwindcss/browser"

// cdnScriptRe matches a script tag whose src contains the CDN marker.
// Surrounding attributes and whitespace are unconstrained. Known shapes:
//
//	<script src="https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"></script>
//	<script src="https://unpkg.com/@tailwindcss/browser@4"></script>
var cdnScriptRe = regexp.MustCompile(`(?i)<script[^>]*src=["'][^"']*` + cdnMarker + `[^"']*["'][^>]*></script>`)

// CDNMatch describes the first CDN script tag found in a document.
type CDNMatch struct {
	// Text is the exact matched substring.
	Text string

	// Start and End delimit the match within the document.
	Start, End int
}

// FindCDNScript scans the document for a Tailwind CDN script tag and returns
// the first match. Later occurrences are ignored; only the first is ever
// replaced.
func FindCDNScript(html string) (CDNMatch, bool) {
	loc := cdnScriptRe.FindStringIndex(html)
	if loc == nil {
		return CDNMatch{}, false
	}
	return CDNMatch{Text: html[loc[0]:loc[1]], Start: loc[0], End: loc[1]}, true
}
