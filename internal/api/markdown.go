package api

import (
	"html/template"

	"github.com/russross/blackfriday/v2"
)

var markdownRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
	Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML | blackfriday.SkipImages | blackfriday.Safelink,
})

// renderMarkdown echoes user input as Markdown. Raw HTML in the input is
// dropped and only safe link schemes are rendered.
func renderMarkdown(text string) template.HTML {
	out := blackfriday.Run([]byte(text),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
		blackfriday.WithRenderer(markdownRenderer))
	return template.HTML(out)
}
