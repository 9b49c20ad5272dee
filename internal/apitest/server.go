// Package apitest provides an in-process fake of the hosted CRUD
// service for tests: /recipes and /auth collections with the same
// observable behavior as the real mock API, including sequential
// string ids, substring search on titles, and whole-record PUTs.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/forkful-app/forkful/internal/domain"
)

// Server is a fake remote store. Create one per test with New and
// clean it up with Close (or let t.Cleanup do it).
type Server struct {
	mu           sync.Mutex
	recipes      map[string]domain.Recipe
	users        map[string]domain.User
	nextRecipeID int
	nextUserID   int
	unauthorized bool

	httpSrv *httptest.Server
}

// New starts a fake server with empty collections.
func New() *Server {
	s := &Server{
		recipes:      map[string]domain.Recipe{},
		users:        map[string]domain.User{},
		nextRecipeID: 1,
		nextUserID:   1,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /recipes", s.listRecipes)
	mux.HandleFunc("POST /recipes", s.createRecipe)
	mux.HandleFunc("GET /recipes/{id}", s.getRecipe)
	mux.HandleFunc("PUT /recipes/{id}", s.updateRecipe)
	mux.HandleFunc("DELETE /recipes/{id}", s.deleteRecipe)
	mux.HandleFunc("GET /auth", s.listUsers)
	mux.HandleFunc("POST /auth", s.createUser)
	mux.HandleFunc("GET /auth/{id}", s.getUser)
	mux.HandleFunc("PUT /auth/{id}", s.updateUser)

	s.httpSrv = httptest.NewServer(s.guard(mux))
	return s
}

// URL returns the base URL of the fake service.
func (s *Server) URL() string {
	return s.httpSrv.URL
}

// Close shuts the fake service down.
func (s *Server) Close() {
	s.httpSrv.Close()
}

// RejectAuth makes every subsequent request fail with 401, simulating
// an invalidated token.
func (s *Server) RejectAuth(reject bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unauthorized = reject
}

// SeedUser stores a user record, assigning the next id, and returns it.
func (s *Server) SeedUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = strconv.Itoa(s.nextUserID)
	s.nextUserID++
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
	s.users[u.ID] = u
	return u
}

// SeedRecipe stores a recipe, assigning the next id, and returns it.
func (s *Server) SeedRecipe(r domain.Recipe) domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = strconv.Itoa(s.nextRecipeID)
	s.nextRecipeID++
	s.recipes[r.ID] = r
	return r
}

// User returns the stored user record for assertions.
func (s *Server) User(id string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

// Recipe returns the stored recipe for assertions.
func (s *Server) Recipe(id string) (domain.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[id]
	return r, ok
}

// guard applies the forced-401 switch before any handler runs.
func (s *Server) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		reject := s.unauthorized
		s.mu.Unlock()
		if reject {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listRecipes(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))

	s.mu.Lock()
	out := make([]domain.Recipe, 0, len(s.recipes))
	for _, rec := range s.recipes {
		if search == "" || strings.Contains(strings.ToLower(rec.Title), search) {
			out = append(out, rec)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return numeric(out[i].ID) < numeric(out[j].ID) })
	writeJSON(w, out)
}

func (s *Server) createRecipe(w http.ResponseWriter, r *http.Request) {
	var rec domain.Recipe
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	rec.ID = strconv.Itoa(s.nextRecipeID)
	s.nextRecipeID++
	s.recipes[rec.ID] = rec
	s.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, rec)
}

func (s *Server) getRecipe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rec, ok := s.recipes[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, rec)
}

func (s *Server) updateRecipe(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var rec domain.Recipe
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, ok := s.recipes[id]
	if ok {
		rec.ID = id
		s.recipes[id] = rec
	}
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, rec)
}

func (s *Server) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	rec, ok := s.recipes[id]
	delete(s.recipes, id)
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, rec)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return numeric(out[i].ID) < numeric(out[j].ID) })
	writeJSON(w, out)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var u domain.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	u.ID = strconv.Itoa(s.nextUserID)
	s.nextUserID++
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
	s.users[u.ID] = u
	s.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, u)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	u, ok := s.users[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, u)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var u domain.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, ok := s.users[id]
	if ok {
		u.ID = id
		s.users[id] = u
	}
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, u)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// numeric sorts ids like the hosted service does: "2" before "10".
func numeric(id string) int {
	n, _ := strconv.Atoi(id)
	return n
}
