package dashboard

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/audiolink/audiolink/pkg/guildstore"
	"github.com/audiolink/audiolink/pkg/metrics"
)

// Server is the read-mostly HTTP surface reporting aggregate counters,
// plus the activate/deactivate toggles the web panel uses. All state is
// in memory; nothing here persists.
type Server struct {
	store      *guildstore.Store
	collector  *metrics.Collector
	guildCount func() int
}

// New creates a dashboard server. guildCount reports how many guilds the
// gateway session currently sees.
func New(store *guildstore.Store, collector *metrics.Collector, guildCount func() int) *Server {
	return &Server{
		store:      store,
		collector:  collector,
		guildCount: guildCount,
	}
}

// Handler builds the routed, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/api/bot/activate/{guildID}", s.handleActivate).Methods(http.MethodPost)
	r.HandleFunc("/api/bot/deactivate/{guildID}", s.handleDeactivate).Methods(http.MethodPost)
	return cors.Default().Handler(r)
}

type statsResponse struct {
	metrics.Snapshot
	ActiveGuilds int `json:"active_guilds"`
	TotalGuilds  int `json:"total_guilds"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	resp := statsResponse{
		Snapshot:     s.collector.Snapshot(),
		ActiveGuilds: s.store.Count(),
		TotalGuilds:  s.guildCount(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	guildID := mux.Vars(r)["guildID"]
	if guildID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing guild id"})
		return
	}

	// No channel context here; results fall back to each request's
	// origin channel.
	s.store.Activate(guildID, "")
	log.Printf("Guild %s activated via dashboard", guildID)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	guildID := mux.Vars(r)["guildID"]
	if guildID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing guild id"})
		return
	}

	s.store.Deactivate(guildID)
	log.Printf("Guild %s deactivated via dashboard", guildID)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
