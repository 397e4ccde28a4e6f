package web

import (
	"embed"
	"encoding/json"
	"io/fs"
	"net/http"
	"strings"

	"sitepath/internal/config"
	"sitepath/internal/site"

	"github.com/charmbracelet/log"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

// StartServer starts the web server on the default port 8080.
func StartServer() {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("/api/site", handleSite)
	mux.HandleFunc("/api/ls", handleLs)
	mux.HandleFunc("/api/which", handleWhich)
	mux.HandleFunc("/api/help", handleHelp)

	port := "8080"
	log.Info("Starting sitepath web server", "url", "http://localhost:"+port)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}

// handleSite runs a fresh compose+install pass and returns everything the
// front end needs in one payload.
func handleSite(w http.ResponseWriter, r *http.Request) {
	cfg := config.Load()
	sp := site.FromEnviron()
	a := site.Setup(cfg, sp)

	response := struct {
		Config config.Config
		site.Analysis
		Report        string `json:"Report"`
		VerboseReport string `json:"VerboseReport"`
		Version       string `json:"Version"`
	}{
		Config:        cfg,
		Analysis:      a,
		Report:        site.GenerateReport(cfg, a, false),
		VerboseReport: site.GenerateReport(cfg, a, true),
		Version:       site.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleLs lists the importable modules a single search path entry provides.
func handleLs(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path is required", 400)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(site.Modules(path))
}

// handleWhich resolves a module name against the live search path.
func handleWhich(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		http.Error(w, "query is required", 400)
		return
	}

	cfg := config.Load()
	sp := site.FromEnviron()
	site.Setup(cfg, sp)

	type whichResult struct {
		Query string `json:"Query"`
		Found bool   `json:"Found"`
		Path  string `json:"Path,omitempty"`
	}

	result := whichResult{Query: query}
	if path, err := site.Locate(query, sp.Dirs()); err == nil {
		result.Found = true
		result.Path = path
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func handleHelp(w http.ResponseWriter, r *http.Request) {
	// Use the embedded help content
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", site.Version)

	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(text))
}
