package ui

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dataprof/domain/core"
	"dataprof/internal/errors"
	"dataprof/ports"
)

const listLimit = 100

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Profiling reports</title></head>
<body>
<h1>Profiling reports</h1>
{{if not .}}<p>No reports stored yet.</p>{{end}}
<ul>
{{range .}}<li><a href="/reports/{{.ID}}">{{.Name}}</a> — {{.RowCount}} rows × {{.ColumnCount}} cols, {{.CreatedAt}}</li>
{{end}}</ul>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	metas, err := s.store.List(r.Context(), listLimit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, metas); err != nil {
		s.log.Error("index template: %v", err)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rec, err := s.loadReport(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	body, err := s.html.Render(rec.Report)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", s.html.ContentType())
	w.Write(body)
}

func (s *Server) handleListJSON(w http.ResponseWriter, r *http.Request) {
	metas, err := s.store.List(r.Context(), listLimit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metas)
}

func (s *Server) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	rec, err := s.loadReport(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

func (s *Server) loadReport(r *http.Request) (*ports.StoredReport, error) {
	id, err := core.ParseReportID(chi.URLParam(r, "id"))
	if err != nil {
		return nil, errors.InvalidInput(err.Error())
	}
	return s.store.Get(r.Context(), id)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeInputInvalid:
		status = http.StatusBadRequest
	}
	s.log.Error("request failed: %v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q,"code":%q}`, err.Error(), errors.GetCode(err))
}
