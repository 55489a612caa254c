package rendering

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

// pageTemplate is the HTML shell around the converted markup body. The
// stylesheet is either inlined (html format) or referenced by file (pdf
// intermediate). Body and Styles are inserted pre-sanitized: the body comes
// from goldmark with raw-HTML pass-through disabled, the styles only ever
// contain whitelist-validated values.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{if .StylesheetHref}}<link rel="stylesheet" href="{{.StylesheetHref}}">{{else}}<style>{{.Styles}}</style>{{end}}
</head>
<body>
<main>
{{.Body}}
</main>
</body>
</html>
`))

type pageData struct {
	Title          string
	Styles         template.CSS
	StylesheetHref string
	Body           template.HTML
}

// markdown converts the intermediate markup. goldmark's default renderer
// drops raw HTML instead of passing it through, so attacker-controlled
// markup in profile or posting text is never emitted unescaped. Keep it
// that way: never add the unsafe option here.
var markdown = goldmark.New()

// renderHTML converts the intermediate markup to a styled HTML page with
// the stylesheet inlined.
func renderHTML(markup, title string, style StyleOptions) ([]byte, error) {
	return renderPage(markup, title, pageData{Styles: template.CSS(buildStylesheet(style))})
}

// renderHTMLWithStylesheet renders the page referencing an external
// stylesheet file, used as the PDF conversion intermediate.
func renderHTMLWithStylesheet(markup, title, stylesheetHref string) ([]byte, error) {
	return renderPage(markup, title, pageData{StylesheetHref: stylesheetHref})
}

func renderPage(markup, title string, data pageData) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(markup), &body); err != nil {
		return nil, &RenderError{Message: "markup conversion failed", Cause: err}
	}

	data.Title = title
	data.Body = template.HTML(body.String())

	var page bytes.Buffer
	if err := pageTemplate.Execute(&page, data); err != nil {
		return nil, &RenderError{Message: "page assembly failed", Cause: err}
	}
	return page.Bytes(), nil
}

// buildStylesheet interpolates validated style values into the page
// stylesheet. Callers must have run StyleOptions.Validate first; the
// whitelist is what makes this interpolation safe.
func buildStylesheet(style StyleOptions) string {
	return fmt.Sprintf(`@page {
  size: %s;
  margin: %s %s %s %s;
}
body {
  font-family: Georgia, "Times New Roman", serif;
  font-size: %s;
  line-height: %s;
  margin: %s %s %s %s;
  color: #1a1a1a;
}
h1 {
  font-size: %s;
  margin-bottom: 0.2em;
}
h2 {
  font-size: calc(%s * 0.85);
  border-bottom: 1px solid #999;
  margin-top: 1.2em;
}
h3 {
  margin-bottom: 0.1em;
}
ul {
  margin-top: 0.3em;
}
`,
		style.PageSize,
		style.MarginTop, style.MarginRight, style.MarginBottom, style.MarginLeft,
		style.FontSize,
		style.LineHeight,
		style.MarginTop, style.MarginRight, style.MarginBottom, style.MarginLeft,
		style.HeadingSize,
		style.HeadingSize,
	)
}
