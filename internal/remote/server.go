package remote

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Server is an in-memory record source speaking the pagination contract
// consumed by HTTPSource. It backs the rolodexd development binary and
// the integration tests; it is not a production service.
type Server struct {
	mu    sync.RWMutex
	items []types.RemoteItem
}

// NewServer creates a Server holding the given fixture items. Items are
// served in name order so page boundaries are stable across requests.
func NewServer(items []types.RemoteItem) *Server {
	s := &Server{items: append([]types.RemoteItem(nil), items...)}
	sort.SliceStable(s.items, func(i, j int) bool {
		return strings.ToLower(s.items[i].Name) < strings.ToLower(s.items[j].Name)
	})
	return s
}

// Handler returns the HTTP handler serving GET /records.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/records", s.handleRecords).Methods(http.MethodGet)
	return r
}

// SetItems replaces the served fixture set.
func (s *Server) SetItems(items []types.RemoteItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]types.RemoteItem(nil), items...)
	sort.SliceStable(s.items, func(i, j int) bool {
		return strings.ToLower(s.items[i].Name) < strings.ToLower(s.items[j].Name)
	})
}

// handleRecords serves one page. The continuation token is the offset
// of the next unserved item, rendered as a decimal string; clients
// treat it as opaque.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := types.DefaultPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	offset := 0
	if raw := r.URL.Query().Get("token"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > len(s.items) {
			http.Error(w, "invalid token", http.StatusBadRequest)
			return
		}
		offset = n
	}

	end := offset + limit
	if end > len(s.items) {
		end = len(s.items)
	}

	page := types.Page{Items: s.items[offset:end]}
	if page.Items == nil {
		page.Items = []types.RemoteItem{}
	}
	if end < len(s.items) {
		page.NextToken = strconv.Itoa(end)
	}

	log.Printf("GET /records limit=%d token=%d -> %d items next=%q",
		limit, offset, len(page.Items), page.NextToken)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(page); err != nil {
		log.Printf("encode page: %v", err)
	}
}
