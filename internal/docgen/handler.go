package docgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shawgichan/docgen-service/internal/docx"
	"github.com/shawgichan/docgen-service/internal/metrics"
	"github.com/shawgichan/docgen-service/internal/models"
	"github.com/shawgichan/docgen-service/internal/store"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Handler holds the document generation HTTP handlers.
type Handler struct {
	assembler *Assembler
	files     *store.LocalStore
	log       *slog.Logger
}

func NewHandler(assembler *Assembler, files *store.LocalStore, log *slog.Logger) *Handler {
	return &Handler{assembler: assembler, files: files, log: log}
}

// Generate decodes and validates a generation request, runs the assembler
// synchronously, and replies 202 with the generated file's descriptor.
// Validation failures never reach the assembler.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": "invalid request body: " + err.Error(),
		})
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	req.ApplyDefaults()

	h.log.Info("received document generation request", "project_id", req.ProjectID)

	start := time.Now()
	result, err := h.assembler.Assemble(&req)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DocumentsGenerated.WithLabelValues("failed").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"detail": fmt.Sprintf("Document generation failed: %v", err),
		})
		return
	}
	metrics.DocumentsGenerated.WithLabelValues("completed").Inc()

	writeJSON(w, http.StatusAccepted, models.GenerationResponse{
		ProjectID: req.ProjectID,
		FileName:  result.FileName,
		Message:   "Document generation initiated and completed.",
	})
}

// Download streams a previously generated file by name.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "fileName")

	data, err := h.files.Read(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.log.Warn("download request for non-existent file", "file_name", name)
			metrics.Downloads.WithLabelValues("not_found").Inc()
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "File not found."})
			return
		}
		h.log.Error("download failed", "file_name", name, "error", err)
		metrics.Downloads.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "download failed"})
		return
	}
	metrics.Downloads.WithLabelValues("completed").Inc()

	w.Header().Set("Content-Type", docx.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(data)
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
