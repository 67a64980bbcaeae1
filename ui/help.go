package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
)

// helpMarkdown is shown on the landing page until a roster is uploaded.
const helpMarkdown = `### CSV Format Example

- Columns: ` + "`Roll`, `Name`, `Email`, `CGPA`" + `, followed by one column per faculty.
- Each faculty column contains ranking values (1 = highest preference).

### How the System Works

1. Sorts students in descending order of CGPA.
2. Allocates each student sequentially to faculties (round-robin style).
3. Generates statistical summaries of preferences.
`

// renderHelp converts the usage notes to HTML for the landing page
func renderHelp() template.HTML {
	return template.HTML(markdown.ToHTML([]byte(helpMarkdown), nil, nil))
}
