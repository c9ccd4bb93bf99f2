package handlers_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
)

func TestExportInvoicesCSV(t *testing.T) {
	srv := newTestServer(t)

	create := `{"date": "2026-08-15", "clientName": "Acme", "items": [{"description":"clean"},{"description":"windows"}]}`
	if rr := doRequest(t, srv, "POST", "/api/invoices", create); rr.Code != http.StatusCreated {
		t.Fatalf("create: status = %d", rr.Code)
	}

	rr := doRequest(t, srv, "GET", "/api/invoices/export/csv", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := rr.Body.String()
	if !strings.Contains(body, "Acme") {
		t.Errorf("body missing client name: %q", body)
	}
	// two line items summarized as their count
	if !strings.Contains(body, ",2,") {
		t.Errorf("body missing item count: %q", body)
	}
}

func TestExportInvoicesExcel(t *testing.T) {
	srv := newTestServer(t)

	if rr := doRequest(t, srv, "POST", "/api/invoices", `{"clientName": "Acme"}`); rr.Code != http.StatusCreated {
		t.Fatalf("create: status = %d", rr.Code)
	}

	rr := doRequest(t, srv, "GET", "/api/invoices/export/excel", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %q", ct)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(rr.Body.Bytes(), []byte("PK")) {
		t.Error("body is not a zip archive")
	}
}
