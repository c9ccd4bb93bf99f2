package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"p9e.in/sparkle/models"
)

// BankAccountHandler serves the /bank-accounts endpoints. Bank accounts are
// keyed by a client-supplied string id.
type BankAccountHandler struct {
	db *gorm.DB
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(db *gorm.DB) *BankAccountHandler {
	return &BankAccountHandler{db: db}
}

// GetAll returns every bank account.
func (h *BankAccountHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	accounts := make([]models.BankAccount, 0)
	if err := h.db.Find(&accounts).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}

// Create stores a new bank account under the id the client supplied.
func (h *BankAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, errEmptyBody.Error())
		return
	}

	var account models.BankAccount
	if err := json.Unmarshal(body, &account); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.db.Create(&account).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, account)
}

// GetOne returns a single bank account by id.
func (h *BankAccountHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var account models.BankAccount
	if err := h.db.First(&account, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "bank account not found")
		return
	}
	respondJSON(w, http.StatusOK, account)
}

// Update partially patches a bank account: fields present in the body
// overwrite stored values, absent fields keep their previous value.
func (h *BankAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var account models.BankAccount
	if err := h.db.First(&account, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "bank account not found")
		return
	}

	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, errEmptyBody.Error())
		return
	}

	if err := json.Unmarshal(body, &account); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// the body cannot move the record to another id
	account.ID = id

	if err := h.db.Save(&account).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, account)
}

// Delete removes a bank account by id.
func (h *BankAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var account models.BankAccount
	if err := h.db.First(&account, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "bank account not found")
		return
	}
	if err := h.db.Delete(&account).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Bank account deleted successfully"})
}
