package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"p9e.in/sparkle/models"
)

// InvoiceHandler serves the /invoices endpoints.
type InvoiceHandler struct {
	db *gorm.DB
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{db: db}
}

// GetAll returns every invoice, newest first.
func (h *InvoiceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	invoices := make([]models.Invoice, 0)
	if err := h.db.Order("created_at desc, id desc").Find(&invoices).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, invoices)
}

// Create stores a new invoice. PaymentMethod defaults to "cash" when absent.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, errEmptyBody.Error())
		return
	}

	var invoice models.Invoice
	if err := json.Unmarshal(body, &invoice); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	invoice.ID = 0 // invoice ids are server generated
	invoice.ApplyDefaults()

	if err := h.db.Create(&invoice).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, invoice)
}

// GetOne returns a single invoice by id.
func (h *InvoiceHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var invoice models.Invoice
	if err := h.db.First(&invoice, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "invoice not found")
		return
	}
	respondJSON(w, http.StatusOK, invoice)
}

// Update partially patches an invoice: fields present in the body overwrite
// stored values, absent fields keep their previous value.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var invoice models.Invoice
	if err := h.db.First(&invoice, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "invoice not found")
		return
	}

	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, errEmptyBody.Error())
		return
	}

	if err := json.Unmarshal(body, &invoice); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// the body cannot move the record to another id
	invoice.ID = uint(id)
	invoice.NormalizeItems()

	if err := h.db.Save(&invoice).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, invoice)
}

// Delete removes an invoice by id.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var invoice models.Invoice
	if err := h.db.First(&invoice, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "invoice not found")
		return
	}
	if err := h.db.Delete(&invoice).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Invoice deleted successfully"})
}
