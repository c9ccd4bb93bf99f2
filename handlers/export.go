package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"p9e.in/sparkle/models"
)

// ExportHandler produces spreadsheet downloads of the invoice ledger.
type ExportHandler struct {
	db *gorm.DB
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{db: db}
}

var invoiceExportHeader = []string{
	"ID", "Date", "Client", "Address", "Items", "Payment Method", "Bank Account", "Notes",
}

// Excel exports every invoice to Excel format.
func (h *ExportHandler) Excel(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.loadInvoices()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoices"
	f.SetSheetName("Sheet1", sheet)
	for col, title := range invoiceExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row, invoice := range invoices {
		for col, value := range invoiceExportRow(invoice) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("invoices_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// CSV exports every invoice to CSV format.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.loadInvoices()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("invoices_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write(invoiceExportHeader)
	for _, invoice := range invoices {
		writer.Write(invoiceExportRow(invoice))
	}
}

func (h *ExportHandler) loadInvoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := h.db.Order("created_at desc, id desc").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func invoiceExportRow(invoice models.Invoice) []string {
	bankAccount := ""
	if invoice.BankAccountID != nil {
		bankAccount = *invoice.BankAccountID
	}

	// line items are opaque documents, so the sheet carries their count
	var items []json.RawMessage
	json.Unmarshal(invoice.Items, &items)

	return []string{
		strconv.FormatUint(uint64(invoice.ID), 10),
		invoice.Date,
		invoice.ClientName,
		invoice.ClientAddress,
		strconv.Itoa(len(items)),
		invoice.PaymentMethod,
		bankAccount,
		invoice.Notes,
	}
}
