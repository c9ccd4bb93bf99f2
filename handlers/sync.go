package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"p9e.in/sparkle/models"
)

// SyncHandler reconciles client-held local data with the server dataset.
type SyncHandler struct {
	db *gorm.DB
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(db *gorm.DB) *SyncHandler {
	return &SyncHandler{db: db}
}

// syncPayload keeps each incoming item raw so per-field presence stays
// observable during reconciliation.
type syncPayload struct {
	Reports      []json.RawMessage `json:"reports"`
	Invoices     []json.RawMessage `json:"invoices"`
	BankAccounts []json.RawMessage `json:"bankAccounts"`
	Presets      []json.RawMessage `json:"presets"`
}

// syncResponse is the authoritative merged snapshot returned to the client,
// which replaces its local state with it.
type syncResponse struct {
	Reports      []models.Report      `json:"reports"`
	Invoices     []models.Invoice     `json:"invoices"`
	BankAccounts []models.BankAccount `json:"bankAccounts"`
	Presets      []models.Preset      `json:"presets"`
}

// Sync applies a bulk reconciliation batch in a single transaction and
// returns the full refreshed dataset. Any failure rolls the whole batch back.
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, errEmptyBody.Error())
		return
	}

	var payload syncPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := syncReports(tx, payload.Reports); err != nil {
			return err
		}
		if err := syncInvoices(tx, payload.Invoices); err != nil {
			return err
		}
		if err := syncBankAccounts(tx, payload.BankAccounts); err != nil {
			return err
		}
		return syncPresets(tx, payload.Presets)
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := syncResponse{
		Reports:      make([]models.Report, 0),
		Invoices:     make([]models.Invoice, 0),
		BankAccounts: make([]models.BankAccount, 0),
		Presets:      make([]models.Preset, 0),
	}
	if err := h.db.Order("created_at desc, id desc").Find(&resp.Reports).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.db.Order("created_at desc, id desc").Find(&resp.Invoices).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.db.Find(&resp.BankAccounts).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.db.Find(&resp.Presets).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// syncReports upserts incoming reports. An item carrying a non-zero id that
// matches a stored row is partially patched; anything else is inserted with
// a freshly generated id, discarding whatever id the item carried. A zero id
// always inserts.
func syncReports(tx *gorm.DB, items []json.RawMessage) error {
	for _, raw := range items {
		var probe struct {
			ID uint `json:"id"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return fmt.Errorf("sync reports: %w", err)
		}

		if probe.ID != 0 {
			var existing models.Report
			err := tx.First(&existing, probe.ID).Error
			if err == nil {
				if err := json.Unmarshal(raw, &existing); err != nil {
					return fmt.Errorf("sync reports: %w", err)
				}
				existing.ID = probe.ID
				existing.ApplyDefaults()
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		var report models.Report
		if err := json.Unmarshal(raw, &report); err != nil {
			return fmt.Errorf("sync reports: %w", err)
		}
		report.ID = 0
		report.ApplyDefaults()
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
	}
	return nil
}

// syncInvoices mirrors syncReports for invoices.
func syncInvoices(tx *gorm.DB, items []json.RawMessage) error {
	for _, raw := range items {
		var probe struct {
			ID uint `json:"id"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return fmt.Errorf("sync invoices: %w", err)
		}

		if probe.ID != 0 {
			var existing models.Invoice
			err := tx.First(&existing, probe.ID).Error
			if err == nil {
				if err := json.Unmarshal(raw, &existing); err != nil {
					return fmt.Errorf("sync invoices: %w", err)
				}
				existing.ID = probe.ID
				existing.NormalizeItems()
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		var invoice models.Invoice
		if err := json.Unmarshal(raw, &invoice); err != nil {
			return fmt.Errorf("sync invoices: %w", err)
		}
		invoice.ID = 0
		invoice.ApplyDefaults()
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}
	}
	return nil
}

// syncBankAccounts inserts accounts the server has not seen yet under their
// client-supplied ids. Existing rows win: incoming duplicates are skipped
// without an update.
func syncBankAccounts(tx *gorm.DB, items []json.RawMessage) error {
	for _, raw := range items {
		var account models.BankAccount
		if err := json.Unmarshal(raw, &account); err != nil {
			return fmt.Errorf("sync bank accounts: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&account).Error; err != nil {
			return err
		}
	}
	return nil
}

// syncPresets inserts every incoming preset as a new record. There is no
// de-duplication or update path for presets.
func syncPresets(tx *gorm.DB, items []json.RawMessage) error {
	for _, raw := range items {
		var preset models.Preset
		if err := json.Unmarshal(raw, &preset); err != nil {
			return fmt.Errorf("sync presets: %w", err)
		}
		preset.ApplyDefaults()
		if err := tx.Create(&preset).Error; err != nil {
			return err
		}
	}
	return nil
}
