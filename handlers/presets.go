package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"p9e.in/sparkle/models"
)

// PresetHandler serves the /presets endpoints. Presets have no update
// operation; clients replace them by deleting and recreating.
type PresetHandler struct {
	db *gorm.DB
}

// NewPresetHandler creates a new PresetHandler.
func NewPresetHandler(db *gorm.DB) *PresetHandler {
	return &PresetHandler{db: db}
}

// GetAll returns every preset.
func (h *PresetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	presets := make([]models.Preset, 0)
	if err := h.db.Find(&presets).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, presets)
}

// Create stores a new preset.
func (h *PresetHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, errEmptyBody.Error())
		return
	}

	var preset models.Preset
	if err := json.Unmarshal(body, &preset); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	preset.ApplyDefaults()

	if err := h.db.Create(&preset).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, preset)
}

// Delete removes a preset by id.
func (h *PresetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var preset models.Preset
	if err := h.db.First(&preset, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "preset not found")
		return
	}
	if err := h.db.Delete(&preset).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Preset deleted successfully"})
}
