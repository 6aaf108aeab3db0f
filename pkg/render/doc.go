// Package render turns verdicts into HTML fragments as templ components,
// so they can be served with templ.Handler or embedded in larger pages.
package render
