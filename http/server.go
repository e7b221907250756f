package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mwalkiewicz/corpscan"
)

// ShutdownTimeout bounds graceful shutdown on Close.
const ShutdownTimeout = 5 * time.Second

// Server exposes the domain store and the analysis pipeline over a
// JSON API.
type Server struct {
	server *http.Server
	ln     net.Listener

	Addr string

	DomainService   corpscan.DomainService
	AnalysisService corpscan.AnalysisService
	Logger          *slog.Logger
}

// NewServer creates a Server with routes registered but not listening.
func NewServer() *Server {
	s := &Server{
		Logger: slog.Default(),
	}
	s.server = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/domains", s.handleListDomains)
		r.Post("/domains", s.handleCreateDomain)
		r.Get("/domains/{domain}", s.handleGetDomain)
		r.Put("/domains/{domain}", s.handleUpdateDomain)
		r.Delete("/domains/{domain}", s.handleDeleteDomain)
		r.Get("/analyze/{domain}", s.handleAnalyzeDomain)
		r.Get("/analyze-all", s.handleAnalyzeAll)
	})

	return r
}

// Open starts listening on s.Addr. It returns once the listener is
// bound; serving continues in the background until Close.
func (s *Server) Open() error {
	if s.Addr == "" {
		return corpscan.Errorf(corpscan.EINVALID, "server address required")
	}

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("server terminated", "error", err)
		}
	}()

	s.Logger.Info("listening", "addr", ln.Addr().String())
	return nil
}

// URL returns the server's base URL once Open has succeeded. Useful
// when Addr requested an ephemeral port.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close shuts the server down gracefully.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Domain Analysis API",
		"endpoints": []string{
			"/api/domains - list all domains or add a new one",
			"/api/domains/{domain} - get, update or delete a domain",
			"/api/analyze/{domain} - analyze a domain and store the result",
			"/api/analyze-all - analyze every stored domain",
		},
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListDomains(w http.ResponseWriter, r *http.Request) {
	domains, err := s.DomainService.FindDomains(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if domains == nil {
		domains = []*corpscan.Analysis{}
	}
	s.writeJSON(w, http.StatusOK, domains)
}

func (s *Server) handleCreateDomain(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, r, corpscan.Errorf(corpscan.EINVALID, "invalid JSON body"))
		return
	}
	if body.Domain == "" {
		s.writeError(w, r, corpscan.Errorf(corpscan.EINVALID, "domain name is required"))
		return
	}

	analysis := &corpscan.Analysis{Domain: body.Domain, Status: corpscan.StatusPending}
	if err := s.DomainService.CreateDomain(r.Context(), analysis); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, analysis)
}

func (s *Server) handleGetDomain(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	analysis, err := s.DomainService.FindDomainByName(r.Context(), domain)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleUpdateDomain(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")

	var upd corpscan.AnalysisUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		s.writeError(w, r, corpscan.Errorf(corpscan.EINVALID, "invalid JSON body"))
		return
	}

	analysis, err := s.DomainService.UpdateDomain(r.Context(), domain, upd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleDeleteDomain(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	if err := s.DomainService.DeleteDomain(r.Context(), domain); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("domain %s deleted", domain),
	})
}

func (s *Server) handleAnalyzeDomain(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	analysis, err := s.AnalysisService.AnalyzeDomain(r.Context(), domain)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleAnalyzeAll(w http.ResponseWriter, r *http.Request) {
	stored, err := s.DomainService.FindDomains(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	domains := make([]string, 0, len(stored))
	for _, a := range stored {
		domains = append(domains, a.Domain)
	}

	results, err := s.AnalysisService.AnalyzeDomains(r.Context(), domains)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if results == nil {
		results = []*corpscan.Analysis{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("analyzed %d domains", len(results)),
		"domains": results,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := corpscan.ErrorCode(err)
	status := errorStatus(code)
	if status == http.StatusInternalServerError {
		s.Logger.Error("internal error", "path", r.URL.Path, "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": corpscan.ErrorMessage(err)})
}

// errorStatus maps application error codes to HTTP status codes.
func errorStatus(code string) int {
	switch code {
	case corpscan.EINVALID:
		return http.StatusBadRequest
	case corpscan.ENOTFOUND:
		return http.StatusNotFound
	case corpscan.ECONFLICT:
		return http.StatusConflict
	case corpscan.EUNREACHABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
