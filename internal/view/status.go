// Package view renders the server-side HTML pages of the API.
package view

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Card is one labelled tile on the status page.
type Card struct {
	Label  string
	Status string
	Class  string // status-ok or status-pending
}

// StatusPage is the data behind the status template.
type StatusPage struct {
	Title   string
	Tagline string
	Cards   []Card
}

// DefaultStatusPage returns the fixed status cards.  The pending labels are
// plain text and are not derived from any backend call.
func DefaultStatusPage() StatusPage {
	return StatusPage{
		Title:   "Chatbook Study Hub",
		Tagline: "AI-powered learning platform coming soon!",
		Cards: []Card{
			{Label: "Frontend", Status: "✅ Ready", Class: "status-ok"},
			{Label: "Backend", Status: "🔄 Connecting...", Class: "status-pending"},
			{Label: "Database", Status: "🔄 Supabase", Class: "status-pending"},
			{Label: "AI", Status: "🔄 Gemini", Class: "status-pending"},
		},
	}
}

// StatusTemplateName is the name handlers pass to echo.Context.Render.
const StatusTemplateName = "status"

const statusTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        .App { text-align: center; font-family: sans-serif; }
        .App-header { background: #282c34; min-height: 100vh; color: white; padding: 2rem; }
        .status-cards { display: flex; gap: 1rem; justify-content: center; flex-wrap: wrap; }
        .status-card { background: #3a3f4b; border-radius: 8px; padding: 1rem 2rem; }
        .status-ok { color: #4caf50; }
        .status-pending { color: #ffb300; }
    </style>
</head>
<body>
<div class="App">
    <header class="App-header">
        <h1>📚 {{.Title}}</h1>
        <p>{{.Tagline}}</p>
        <div class="status-cards">
{{- range .Cards}}
            <div class="status-card">
                <h3>{{.Label}}</h3>
                <span class="{{.Class}}">{{.Status}}</span>
            </div>
{{- end}}
        </div>
    </header>
</div>
</body>
</html>
`

// Renderer implements echo.Renderer over the parsed page templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the built-in templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.New(StatusTemplateName).Parse(statusTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse status template: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template with data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
