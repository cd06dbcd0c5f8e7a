package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"freehost/internal/domain"
	"freehost/internal/dto"
	"freehost/internal/observability/middleware"

	"github.com/go-chi/chi/v5"
)

func (h *handlers) listSites(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "missing user_id", http.StatusBadRequest)
		return
	}
	sites, err := h.sites.UserSites(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sites)
}

func (h *handlers) createSite(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	site, err := h.sites.CreateSite(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	slog.Info("site created", "site_id", site.ID, "subdomain", site.Subdomain,
		"request_id", middleware.RequestIDFromContext(r.Context()))
	writeJSON(w, http.StatusCreated, site)
}

func (h *handlers) getSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.sites.Site(r.Context(), chi.URLParam(r, "siteID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if site == nil {
		http.Error(w, "site not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, site)
}

func (h *handlers) deleteSite(w http.ResponseWriter, r *http.Request) {
	if err := h.sites.DeleteSite(r.Context(), chi.URLParam(r, "siteID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) updateStorage(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStorageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	err := h.sites.SetStorageProvider(r.Context(), chi.URLParam(r, "siteID"), domain.StorageProvider(req.Provider))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// publishSite blocks for the whole simulated upload and returns the resolved
// result; failure travels in the body as success=false, not as an HTTP error.
func (h *handlers) publishSite(w http.ResponseWriter, r *http.Request) {
	result, err := h.publisher.Publish(r.Context(), chi.URLParam(r, "siteID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
