package handlers

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"html/template"
	"net/http"
	"sort"
	"strings"
)

const openAPIPath = "/v1/openapi.json"

//go:embed openapi.json
var openAPISpec []byte

var openAPIETag = func() string {
	sum := sha256.Sum256(openAPISpec)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}()

type apiOperation struct {
	Method  string
	Path    string
	Summary string
	Public  bool
}

type apiDocs struct {
	Title       string
	Version     string
	Description string
	SpecURL     string
	Operations  []apiOperation
}

// loadAPIDocs panics on a malformed document.
func loadAPIDocs(raw []byte) apiDocs {
	var doc struct {
		Info struct {
			Title       string `json:"title"`
			Version     string `json:"version"`
			Description string `json:"description"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			Summary  string            `json:"summary"`
			Security []json.RawMessage `json:"security"`
		} `json:"paths"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		panic("handlers: openapi.json: " + err.Error())
	}
	docs := apiDocs{
		Title:       doc.Info.Title,
		Version:     doc.Info.Version,
		Description: doc.Info.Description,
		SpecURL:     openAPIPath,
	}
	for path, methods := range doc.Paths {
		for method, op := range methods {
			docs.Operations = append(docs.Operations, apiOperation{
				Method:  strings.ToUpper(method),
				Path:    path,
				Summary: op.Summary,
				Public:  op.Security != nil && len(op.Security) == 0,
			})
		}
	}
	sort.Slice(docs.Operations, func(i, j int) bool {
		a, b := docs.Operations[i], docs.Operations[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Method < b.Method
	})
	return docs
}

var docsTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}} {{.Version}}</title>
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <style>
      body { margin: 0; padding: 0; }
      redoc { display: block; height: 100vh; }
      noscript { display: block; font-family: sans-serif; padding: 1rem 2rem; }
    </style>
  </head>
  <body>
    <noscript>
      <h1>{{.Title}} {{.Version}}</h1>
      <p>{{.Description}} Raw document: <a href="{{.SpecURL}}">{{.SpecURL}}</a></p>
      <ul>
        {{- range .Operations}}
        <li><code>{{.Method}} {{.Path}}</code> {{.Summary}}{{if .Public}} (public){{end}}</li>
        {{- end}}
      </ul>
    </noscript>
    <redoc spec-url="{{.SpecURL}}"></redoc>
    <script src="https://cdn.jsdelivr.net/npm/redoc@2.2.0/bundles/redoc.standalone.js"></script>
  </body>
</html>`))

var docsPage = func() []byte {
	var buf bytes.Buffer
	if err := docsTemplate.Execute(&buf, loadAPIDocs(openAPISpec)); err != nil {
		panic("handlers: render docs: " + err.Error())
	}
	return buf.Bytes()
}()

// OpenAPIJSON serves the embedded document and honours If-None-Match.
func (a *App) OpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", openAPIETag)
	if r.Header.Get("If-None-Match") == openAPIETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPISpec)
}

// OpenAPIDocs renders a Redoc page over OpenAPIJSON, with a plain operation
// list for clients without script.
func (a *App) OpenAPIDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(docsPage)
}
