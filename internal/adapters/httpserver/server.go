package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/threadmill/catalog/internal/domain"
	"github.com/threadmill/catalog/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	products *usecase.ProductUC
	refs     domain.ReferenceRepo
}

func New(p *usecase.ProductUC, refs domain.ReferenceRepo) http.Handler {
	s := &Server{mux: http.NewServeMux(), products: p, refs: refs}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/products/search", s.apiProductSearch)
	s.mux.HandleFunc("/api/products/export", s.apiProductExport)
	s.mux.HandleFunc("/api/products/", s.apiProductByID)
	s.mux.HandleFunc("/api/items/", s.apiItemImage)
	s.mux.HandleFunc("/api/categories", s.apiCategories)
	s.mux.HandleFunc("/api/genders", s.apiGenders)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit := 0
		if q := r.URL.Query().Get("limit"); q != "" {
			n, err := strconv.Atoi(q)
			if err != nil || n <= 0 {
				http.Error(w, "limit", 400)
				return
			}
			limit = n
		}
		list, err := s.products.List(r.Context(), limit)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, 200, list)
	case http.MethodPost:
		var sub domain.ProductSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, "json", 400)
			return
		}
		p, err := s.products.Create(r.Context(), &sub)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, 201, p)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r.URL.Path, "/api/products/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, err := s.products.GetByID(r.Context(), id)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, 200, p)
	case http.MethodPut:
		var patch domain.ProductPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "json", 400)
			return
		}
		p, err := s.products.Update(r.Context(), id, &patch)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, 200, p)
	case http.MethodDelete:
		deleted, err := s.products.Delete(r.Context(), id)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"deleted": deleted})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiProductSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	list, err := s.products.Search(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, 200, list)
}

// POST /api/items/{id}/image
func (s *Server) apiItemImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/image") {
		http.Error(w, "method", 405)
		return
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/items/"), "/image")
	id, err := strconv.ParseUint(strings.Trim(raw, "/"), 10, 64)
	if err != nil {
		http.Error(w, "id", 400)
		return
	}
	var req struct {
		ImageURL string `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "json", 400)
		return
	}
	if err := s.products.AddImage(r.Context(), uint(id), req.ImageURL); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, 200, map[string]string{"status": "ok"})
}

func (s *Server) apiCategories(w http.ResponseWriter, r *http.Request) {
	list, err := s.refs.Categories(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, 200, list)
}

func (s *Server) apiGenders(w http.ResponseWriter, r *http.Request) {
	list, err := s.refs.Genders(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, 200, list)
}

// fail maps the domain error taxonomy onto status codes: validation
// failures 422, unresolved identities 404, anything else 500.
func (s *Server) fail(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, 422, map[string]string{"error": ve.Reason, "field": ve.Field})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, 404, map[string]string{"error": "not found"})
	default:
		log.Error().Err(err).Msg("catalog request failed")
		writeJSON(w, 500, map[string]string{"error": "internal"})
	}
}

func pathID(w http.ResponseWriter, path, prefix string) (uint, bool) {
	raw := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		http.Error(w, "id", 400)
		return 0, false
	}
	return uint(id), true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
