// Package web holds the HTML side of the site: the public pages and the admin back office.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"grandywoods/auth"
	"grandywoods/models"
	"grandywoods/storage"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Rich text fields are authored by the admin in the editor, so raw HTML is kept
var richText = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithUnsafe(),
		goldmarkHTML.WithHardWraps(),
	),
)

var templateFuncs = template.FuncMap{
	"media": func(name string) string {
		if name == "" || storage.Default == nil {
			return ""
		}
		return storage.Default.URL(name)
	},
	"richtext": func(text string) template.HTML {
		var buf bytes.Buffer
		if err := richText.Convert([]byte(text), &buf); err != nil {
			return template.HTML(template.HTMLEscapeString(text))
		}
		return template.HTML(buf.String())
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2 Jan 2006")
	},
	"inputDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"price": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"deref": func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	},
	"fieldError": func(errs FieldErrors, field string) template.HTML {
		msg, ok := errs[field]
		if !ok {
			return ""
		}
		return template.HTML(`<p class="field-error">` + template.HTMLEscapeString(msg) + `</p>`)
	},
	"hasID": func(ids []uint64, id uint64) bool {
		for _, i := range ids {
			if i == id {
				return true
			}
		}
		return false
	},
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.tmpl"))
}

// render adds what every page needs (flash messages, login state) to data
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	session := auth.LoadSession(c)
	data["Messages"] = session.Messages()
	data["IsAdmin"] = session.IsAdmin()
	data["Path"] = c.Request.URL.Path
	c.HTML(status, name, data)
}

func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.tmpl", nil)
}

func renderServerError(c *gin.Context, err error) {
	log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("request failed")
	render(c, http.StatusInternalServerError, "500.tmpl", nil)
}

// renderLookupError turns a failed fetch by id into a not-found or server error page
func renderLookupError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNotFound) {
		renderNotFound(c)
		return
	}
	renderServerError(c, err)
}

// NotFound is the handler for every route that is not matched
func NotFound(c *gin.Context) {
	renderNotFound(c)
}
