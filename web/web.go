package web

import (
	"embed"
	"html/template"
	"io/fs"
	"time"

	"github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page with helpers that render instants in loc.
func Templates(loc *time.Location) (*template.Template, error) {
	if loc == nil {
		loc = time.UTC
	}
	return template.New("").Funcs(Funcs(loc)).ParseFS(templateFS, "templates/*.html")
}

func Funcs(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"datetime": func(t time.Time) string {
			return t.In(loc).Format(appointment.DateTimeLayout)
		},
		"date": func(t time.Time) string {
			return t.In(loc).Format(appointment.DateLayout)
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}
}

// Static is the stylesheet and script tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
