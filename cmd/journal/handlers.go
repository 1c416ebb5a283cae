package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"trade-journal-go/internal/export"
	"trade-journal-go/internal/ledger"
	"trade-journal-go/internal/models"
	"trade-journal-go/internal/templates"

	"go.uber.org/zap"
)

// APIHandler holds dependencies for the API endpoints.
type APIHandler struct {
	log       *zap.Logger
	ctrl      *ledger.Controller
	templates *templates.Store
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(log *zap.Logger, ctrl *ledger.Controller, tpls *templates.Store) *APIHandler {
	return &APIHandler{log: log, ctrl: ctrl, templates: tpls}
}

// Register wires all API routes onto the mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", h.HealthHandler)
	mux.HandleFunc("GET /api/trades", h.ListTradesHandler)
	mux.HandleFunc("POST /api/trades", h.AddTradeHandler)
	mux.HandleFunc("PUT /api/trades/{id}", h.UpdateTradeHandler)
	mux.HandleFunc("DELETE /api/trades/{id}", h.DeleteTradeHandler)
	mux.HandleFunc("GET /api/trades/filtered", h.FilteredTradesHandler)
	mux.HandleFunc("POST /api/trades/import", h.ImportTradesHandler)
	mux.HandleFunc("GET /api/stats", h.StatsHandler)
	mux.HandleFunc("GET /api/filters", h.GetFiltersHandler)
	mux.HandleFunc("PUT /api/filters", h.SetFiltersHandler)
	mux.HandleFunc("GET /api/export", h.ExportHandler)
	mux.HandleFunc("GET /api/suggestions", h.SuggestionsHandler)
	mux.HandleFunc("GET /api/templates", h.ListTemplatesHandler)
	mux.HandleFunc("POST /api/templates", h.CreateTemplateHandler)
	mux.HandleFunc("DELETE /api/templates/{id}", h.DeleteTemplateHandler)
}

// HealthHandler reports liveness.
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}

// ListTradesHandler returns the canonical collection in insertion order.
func (h *APIHandler) ListTradesHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.ctrl.Trades())
}

// addTradeRequest is the POST /api/trades body. When TemplateID is set, the
// template's included defaults are applied to the trade before the ledger
// command is issued.
type addTradeRequest struct {
	Trade      models.Trade `json:"trade"`
	TemplateID uint         `json:"templateId,omitempty"`
}

// AddTradeHandler adds a trade, optionally pre-filled from a template, and
// returns the republished snapshot.
func (h *APIHandler) AddTradeHandler(w http.ResponseWriter, r *http.Request) {
	var req addTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := req.Trade
	if req.TemplateID != 0 {
		tpl, err := h.templates.Get(req.TemplateID)
		if err != nil {
			if errors.Is(err, templates.ErrNotFound) {
				http.Error(w, "template not found", http.StatusBadRequest)
				return
			}
			h.log.Error("Failed to load template", zap.Error(err))
			http.Error(w, "failed to load template", http.StatusInternalServerError)
			return
		}
		input = templates.Apply(tpl, input)
	}

	h.writeJSON(w, h.ctrl.AddTrade(input))
}

// UpdateTradeHandler merges a patch into the matching trade. An unknown id
// answers with the unchanged snapshot, matching the ledger's silent no-op.
func (h *APIHandler) UpdateTradeHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.TradePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, h.ctrl.UpdateTrade(r.PathValue("id"), patch))
}

// DeleteTradeHandler removes the matching trade; unknown ids are a no-op.
func (h *APIHandler) DeleteTradeHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.ctrl.DeleteTrade(r.PathValue("id")))
}

// FilteredTradesHandler returns the current filter projection.
func (h *APIHandler) FilteredTradesHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.ctrl.FilteredTrades())
}

// ImportTradesHandler appends a batch of trades, deduplicated by broker
// trade id.
func (h *APIHandler) ImportTradesHandler(w http.ResponseWriter, r *http.Request) {
	var batch []models.Trade
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, h.ctrl.ImportTrades(batch))
}

// StatsHandler returns the current statistics snapshot.
func (h *APIHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.ctrl.GetStats())
}

// GetFiltersHandler returns the current filter state.
func (h *APIHandler) GetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.ctrl.GetFilters())
}

// SetFiltersHandler merges a filter patch and returns the snapshot with the
// new projection.
func (h *APIHandler) SetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	var patch ledger.FilterPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, h.ctrl.SetFilters(patch))
}

// ExportHandler streams the full collection as CSV.
func (h *APIHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trades.csv"`)
	if err := export.WriteCSV(w, h.ctrl.Trades()); err != nil {
		h.log.Error("Failed to write CSV export", zap.Error(err))
	}
}

// suggestionsResponse lists the distinct metadata values currently in the
// journal, for form autocompletion.
type suggestionsResponse struct {
	Strategies       []string `json:"strategies"`
	Setups           []string `json:"setups"`
	MarketConditions []string `json:"marketConditions"`
}

// SuggestionsHandler derives suggestion lists from the current collection.
func (h *APIHandler) SuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	trades := h.ctrl.Trades()
	resp := suggestionsResponse{
		Strategies:       distinct(trades, func(t models.Trade) string { return t.Strategy }),
		Setups:           distinct(trades, func(t models.Trade) string { return t.Setup }),
		MarketConditions: distinct(trades, func(t models.Trade) string { return t.MarketCondition }),
	}
	h.writeJSON(w, resp)
}

// ListTemplatesHandler returns all stored templates.
func (h *APIHandler) ListTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	tpls, err := h.templates.List()
	if err != nil {
		h.log.Error("Failed to list templates", zap.Error(err))
		http.Error(w, "failed to list templates", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, tpls)
}

// CreateTemplateHandler stores a new template.
func (h *APIHandler) CreateTemplateHandler(w http.ResponseWriter, r *http.Request) {
	var tpl models.Template
	if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.templates.Create(tpl)
	if err != nil {
		h.log.Error("Failed to create template", zap.Error(err))
		http.Error(w, "failed to create template", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	h.writeJSON(w, created)
}

// DeleteTemplateHandler removes a template by id.
func (h *APIHandler) DeleteTemplateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		http.Error(w, "invalid template id", http.StatusBadRequest)
		return
	}
	if err := h.templates.Delete(uint(id)); err != nil {
		if errors.Is(err, templates.ErrNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}
		h.log.Error("Failed to delete template", zap.Error(err))
		http.Error(w, "failed to delete template", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("Failed to encode response", zap.Error(err))
	}
}

func distinct(trades []models.Trade, field func(models.Trade) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range trades {
		v := field(t)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
