package frontend

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// FS embeds the HTML templates of the invitation form
//
//go:embed templates/*.html
var FS embed.FS

// Page names
const (
	PageIndex  = "index.html"
	PageResult = "result.html"
)

// Pages holds one parsed template set per page, each combined with the shared layout
type Pages struct {
	pages map[string]*template.Template
}

// LoadPages parses the embedded templates
func LoadPages() (*Pages, error) {
	p := &Pages{pages: map[string]*template.Template{}}
	for _, name := range []string{PageIndex, PageResult} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(FS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse embedded template", goerr.V("page", name))
		}
		p.pages[name] = tmpl
	}
	return p, nil
}

// Render executes a page
func (p *Pages) Render(w io.Writer, name string, data any) error {
	tmpl, ok := p.pages[name]
	if !ok {
		return goerr.New("unknown page", goerr.V("page", name))
	}
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return goerr.Wrap(err, "failed to render page", goerr.V("page", name))
	}
	return nil
}

var funcs = template.FuncMap{
	"statusClass": func(status types.InviteStatus) string {
		if status.IsSatisfied() {
			return "ok"
		}
		return "ng"
	},
	"joinIDs": func(ids []types.MemberID) string {
		return strings.Join(types.MemberIDStrings(ids), ", ")
	},
}
