package http

import (
	"encoding/json"
	"net/http"

	"freehost/internal/dto"

	"github.com/go-chi/chi/v5"
)

func (h *handlers) listFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.files.Files(r.Context(), chi.URLParam(r, "siteID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

func (h *handlers) createFile(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	file, err := h.files.CreateFile(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, file)
}

func (h *handlers) saveFile(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	req.ID = chi.URLParam(r, "fileID")
	file, err := h.files.SaveFile(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, file)
}

func (h *handlers) deleteFile(w http.ResponseWriter, r *http.Request) {
	if err := h.files.DeleteFile(r.Context(), chi.URLParam(r, "fileID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) listVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.files.Versions(r.Context(), chi.URLParam(r, "siteID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, versions)
}

func (h *handlers) createVersion(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ver, err := h.files.CreateVersion(r.Context(), chi.URLParam(r, "siteID"), req.Label)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ver)
}
