package server

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"neotokyo-core/internal/engine"
	"neotokyo-core/internal/systems"
	"neotokyo-core/pkg/content"
	"neotokyo-core/pkg/quest"
	"neotokyo-core/pkg/world"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/sessions", h.handleSessions)
	mux.HandleFunc("/debug/world", h.handleWorld)
	mux.HandleFunc("/debug/encounters", h.handleEncounters)
}

// /debug/sessions - список активных сессий
func (h *DebugHandler) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Sessions())
}

// /debug/world?seed=abc&districts=6 - генерирует мир без создания сессии.
// Один и тот же запрос всегда возвращает один и тот же ответ.
func (h *DebugHandler) handleWorld(w http.ResponseWriter, r *http.Request) {
	seed := r.URL.Query().Get("seed")
	if seed == "" {
		http.Error(w, "seed is required", http.StatusBadRequest)
		return
	}

	count := h.Service.Config.DistrictCount
	if raw := r.URL.Query().Get("districts"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "districts must be a positive integer", http.StatusBadRequest)
			return
		}
		count = n
	}

	districts := world.GenerateDistricts(seed, count)
	clusters, err := quest.GenerateWorld(r.Context(), districts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, struct {
		Seed      string      `json:"seed"`
		Districts interface{} `json:"districts"`
		Quests    interface{} `json:"quests"`
	}{seed, districts, clusters})
}

// /debug/encounters - шаблоны встреч с итоговыми наградами
func (h *DebugHandler) handleEncounters(w http.ResponseWriter, r *http.Request) {
	type EncounterView struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Enemies int    `json:"enemies"`
		XP      int    `json:"xp"`
		Credits int    `json:"credits"`
	}

	ids := make([]string, 0, len(content.Default.Encounters))
	for id := range content.Default.Encounters {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]EncounterView, 0, len(ids))
	for _, id := range ids {
		enc := systems.CreateEncounter(id)
		out = append(out, EncounterView{
			ID:      enc.ID,
			Name:    enc.Name,
			Enemies: len(enc.Enemies),
			XP:      enc.XPReward,
			Credits: enc.CreditReward,
		})
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil, возвращаем пустой массив [], а не null
	if data == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}

	_ = json.NewEncoder(w).Encode(data)
}
