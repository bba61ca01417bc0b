// Package server exposes stored trees over an HTTP API.
//
// Routes:
//
//	GET    /healthz                      liveness probe
//	GET    /trees                        list stored trees
//	POST   /trees                        create a tree
//	GET    /trees/{name}                 fetch a tree
//	PUT    /trees/{name}                 replace a tree
//	DELETE /trees/{name}                 delete a tree
//	GET    /trees/{name}/nodes           traversal of node identities
//	GET    /trees/{name}/stats           size, height, leaf count
//	GET    /trees/{name}/lca             lowest common ancestor of ?node=...
//	GET    /trees/{name}/path            path between ?a= and ?b=
//	GET    /trees/{name}/distance        edge distance between ?a= and ?b=
//
// Trees travel as JSON documents (see [treedoc.Document]). Query endpoints
// address nodes by identity; when identities repeat, the first match in
// pre-order wins.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/treekit/pkg/store"
	"github.com/matzehuels/treekit/pkg/tree"
	"github.com/matzehuels/treekit/pkg/treedoc"
)

// Server handles HTTP requests against a tree store.
type Server struct {
	store  store.Store
	logger *log.Logger
}

// New creates a server backed by st. A nil logger falls back to the
// package default.
func New(st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: st, logger: logger}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/trees", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)

		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Put("/", s.handlePut)
			r.Delete("/", s.handleDelete)

			r.Get("/nodes", s.handleNodes)
			r.Get("/stats", s.handleStats)
			r.Get("/lca", s.handleLCA)
			r.Get("/path", s.handlePath)
			r.Get("/distance", s.handleDistance)
		})
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
		)
	})
}

// ============================================================================
// Responses
// ============================================================================

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respondJSON(w, status, errorResponse{Error: err.Error()})
}

// storeStatus maps store errors to HTTP status codes.
func storeStatus(err error) int {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, store.ErrInvalidName) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ============================================================================
// Tree CRUD
// ============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.respondError(w, storeStatus(err), err)
		return
	}
	if recs == nil {
		recs = []*store.Record{}
	}
	s.respondJSON(w, http.StatusOK, recs)
}

type createRequest struct {
	Name string                   `json:"name"`
	Tree treedoc.Document[string] `json:"tree"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("parse request: %w", err))
		return
	}
	if req.Name == "" {
		s.respondError(w, http.StatusBadRequest, store.ErrInvalidName)
		return
	}
	if _, err := req.Tree.Build(); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid tree: %w", err))
		return
	}

	rec := store.NewRecord(req.Name, req.Tree)
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.respondError(w, storeStatus(err), err)
		return
	}
	s.respondJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.respondError(w, storeStatus(err), err)
		return
	}
	s.respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	var doc treedoc.Document[string]
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("parse request: %w", err))
		return
	}
	if _, err := doc.Build(); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid tree: %w", err))
		return
	}

	rec := store.NewRecord(chi.URLParam(r, "name"), doc)
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.respondError(w, storeStatus(err), err)
		return
	}
	s.respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.respondError(w, storeStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ============================================================================
// Queries
// ============================================================================

// loadTree fetches a stored record and rebuilds its tree.
func (s *Server) loadTree(w http.ResponseWriter, r *http.Request) (*tree.Tree[string], bool) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.respondError(w, storeStatus(err), err)
		return nil, false
	}
	t, err := rec.Tree.NewTree()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, fmt.Errorf("rebuild tree: %w", err))
		return nil, false
	}
	return t, true
}

// byIdentity references the first node whose identity equals id.
func byIdentity(id string) tree.Ref[string] {
	return tree.Where(func(n *tree.Node[string]) bool {
		got, ok := n.Identity()
		return ok && got == id
	})
}

// queryStatus maps tree query errors to HTTP status codes.
func queryStatus(err error) int {
	switch {
	case errors.Is(err, tree.ErrNoMatch),
		errors.Is(err, tree.ErrNodeNotInTree),
		errors.Is(err, tree.ErrNoCommonAncestor):
		return http.StatusNotFound
	case errors.Is(err, tree.ErrInvalidConfiguration),
		errors.Is(err, tree.ErrUnsupported):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type nodesResponse struct {
	Order string   `json:"order"`
	Nodes []string `json:"nodes"`
}

func (s *Server) handleNodes(w http.ResponseWriter, r *http.Request) {
	t, ok := s.loadTree(w, r)
	if !ok {
		return
	}

	order := t.DefaultOrder()
	if v := r.URL.Query().Get("order"); v != "" {
		var err error
		if order, err = tree.ParseOrder(v); err != nil {
			s.respondError(w, http.StatusBadRequest, err)
			return
		}
	}

	limit := -1
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v))
			return
		}
		limit = n
	}
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid offset %q", v))
			return
		}
		offset = n
	}

	nodes := []string{}
	for n := range t.Traverse(nil, order) {
		if offset > 0 {
			offset--
			continue
		}
		if limit == 0 {
			break
		}
		if limit > 0 {
			limit--
		}
		id, _ := n.Identity()
		nodes = append(nodes, id)
	}

	s.respondJSON(w, http.StatusOK, nodesResponse{Order: order.String(), Nodes: nodes})
}

type statsResponse struct {
	Size   int `json:"size"`
	Height int `json:"height"`
	Leaves int `json:"leaves"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	t, ok := s.loadTree(w, r)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, statsResponse{
		Size:   t.Size(),
		Height: t.Height(),
		Leaves: len(t.Leaves()),
	})
}

type lcaResponse struct {
	Ancestor string `json:"ancestor"`
	Depth    int    `json:"depth"`
}

func (s *Server) handleLCA(w http.ResponseWriter, r *http.Request) {
	t, ok := s.loadTree(w, r)
	if !ok {
		return
	}

	ids := r.URL.Query()["node"]
	if len(ids) < 2 {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("%w: at least two node parameters required", tree.ErrInvalidConfiguration))
		return
	}
	refs := make([]tree.Ref[string], len(ids))
	for i, id := range ids {
		refs[i] = byIdentity(id)
	}

	anc, err := t.LCA(refs...)
	if err != nil {
		s.respondError(w, queryStatus(err), err)
		return
	}
	id, _ := anc.Identity()
	s.respondJSON(w, http.StatusOK, lcaResponse{Ancestor: id, Depth: anc.Depth()})
}

// pairRefs pulls the ?a= and ?b= node identities from a query request.
func pairRefs(r *http.Request) (a, b tree.Ref[string], err error) {
	qa, qb := r.URL.Query().Get("a"), r.URL.Query().Get("b")
	if qa == "" || qb == "" {
		return a, b, fmt.Errorf("%w: parameters a and b required", tree.ErrInvalidConfiguration)
	}
	return byIdentity(qa), byIdentity(qb), nil
}

type pathResponse struct {
	Path     []string `json:"path"`
	Distance int      `json:"distance"`
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	t, ok := s.loadTree(w, r)
	if !ok {
		return
	}
	a, b, err := pairRefs(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	path, err := t.Path(a, b)
	if err != nil {
		s.respondError(w, queryStatus(err), err)
		return
	}

	ids := make([]string, len(path))
	for i, n := range path {
		ids[i], _ = n.Identity()
	}
	s.respondJSON(w, http.StatusOK, pathResponse{Path: ids, Distance: len(ids) - 1})
}

type distanceResponse struct {
	Distance int `json:"distance"`
}

func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	t, ok := s.loadTree(w, r)
	if !ok {
		return
	}
	a, b, err := pairRefs(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	d, err := t.Distance(a, b)
	if err != nil {
		s.respondError(w, queryStatus(err), err)
		return
	}
	s.respondJSON(w, http.StatusOK, distanceResponse{Distance: d})
}
