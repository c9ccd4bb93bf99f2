package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"p9e.in/sparkle/models"
)

// ReportHandler serves the /reports endpoints.
type ReportHandler struct {
	db *gorm.DB
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

// GetAll returns every report, newest first.
func (h *ReportHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	reports := make([]models.Report, 0)
	if err := h.db.Order("created_at desc, id desc").Find(&reports).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

// Create stores a new report. An empty JSON object is a valid payload; the
// required strings default to "".
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, errEmptyBody.Error())
		return
	}

	var report models.Report
	if err := json.Unmarshal(body, &report); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	report.ID = 0 // report ids are server generated
	report.ApplyDefaults()

	if err := h.db.Create(&report).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, report)
}

// GetOne returns a single report by id.
func (h *ReportHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var report models.Report
	if err := h.db.First(&report, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "report not found")
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// Update partially patches a report: fields present in the body overwrite
// stored values, absent fields keep their previous value.
func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var report models.Report
	if err := h.db.First(&report, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "report not found")
		return
	}

	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, errEmptyBody.Error())
		return
	}

	if err := json.Unmarshal(body, &report); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// the body cannot move the record to another id
	report.ID = uint(id)
	report.ApplyDefaults()

	if err := h.db.Save(&report).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// Delete removes a report by id.
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var report models.Report
	if err := h.db.First(&report, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "report not found")
		return
	}
	if err := h.db.Delete(&report).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Report deleted successfully"})
}
