package handler

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

var widgetPage = template.Must(template.ParseFS(templates, "templates/widget.html"))
