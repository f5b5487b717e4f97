package http_templates

import (
	"embed"
	"html/template"
	"time"

	"github.com/humanbelnik/rottenpotatoes/internal/model"
)

//go:embed *.html
var files embed.FS

const dateLayout = "2006-01-02"

var funcs = template.FuncMap{
	"ratings": func() []string {
		return model.Ratings
	},
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(dateLayout)
	},
	"longDate": func(t *time.Time) string {
		if t == nil {
			return "unknown"
		}
		return t.Format("January 2, 2006")
	},
}

func Load() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "*.html"))
}
