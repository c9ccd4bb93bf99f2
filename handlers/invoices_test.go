package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestCreateInvoiceDefaults(t *testing.T) {
	srv := newTestServer(t)

	rr := doRequest(t, srv, "POST", "/api/invoices", `{"clientName": "Acme"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d (body %s)", rr.Code, rr.Body.String())
	}

	var got map[string]json.RawMessage
	decodeBody(t, rr, &got)
	if string(got["paymentMethod"]) != `"cash"` {
		t.Errorf("paymentMethod = %s, want \"cash\"", got["paymentMethod"])
	}
	if string(got["items"]) != `[]` {
		t.Errorf("items = %s, want []", got["items"])
	}
	if string(got["bankAccountId"]) != `null` {
		t.Errorf("bankAccountId = %s, want null", got["bankAccountId"])
	}
}

func TestUpdateInvoicePartialPatch(t *testing.T) {
	srv := newTestServer(t)

	create := `{
		"date": "2026-08-15",
		"clientName": "Acme",
		"clientAddress": "1 High St",
		"items": [{"description":"deep clean","price":120}],
		"paymentMethod": "bank",
		"bankAccountId": "acc1",
		"notes": "first visit"
	}`
	rr := doRequest(t, srv, "POST", "/api/invoices", create)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: status = %d", rr.Code)
	}
	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, rr, &created)

	rr = doRequest(t, srv, "PUT", fmt.Sprintf("/api/invoices/%d", created.ID), `{"notes": "x"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update: status = %d (body %s)", rr.Code, rr.Body.String())
	}

	var got map[string]json.RawMessage
	decodeBody(t, rr, &got)
	wants := map[string]string{
		"date":          `"2026-08-15"`,
		"clientName":    `"Acme"`,
		"clientAddress": `"1 High St"`,
		"items":         `[{"description":"deep clean","price":120}]`,
		"paymentMethod": `"bank"`,
		"bankAccountId": `"acc1"`,
		"notes":         `"x"`,
	}
	for field, want := range wants {
		if string(got[field]) != want {
			t.Errorf("%s = %s, want %s", field, got[field], want)
		}
	}
}

func TestUpdateInvoiceKeepsClearedPaymentMethod(t *testing.T) {
	srv := newTestServer(t)

	rr := doRequest(t, srv, "POST", "/api/invoices", `{"paymentMethod": "bank"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: status = %d", rr.Code)
	}
	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, rr, &created)

	// "cash" is a create-time default only; a patch that explicitly clears
	// the field must be stored verbatim
	rr = doRequest(t, srv, "PUT", fmt.Sprintf("/api/invoices/%d", created.ID), `{"paymentMethod": ""}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update: status = %d (body %s)", rr.Code, rr.Body.String())
	}
	var got map[string]json.RawMessage
	decodeBody(t, rr, &got)
	if string(got["paymentMethod"]) != `""` {
		t.Errorf("paymentMethod = %s, want \"\"", got["paymentMethod"])
	}

	rr = doRequest(t, srv, "GET", fmt.Sprintf("/api/invoices/%d", created.ID), "")
	decodeBody(t, rr, &got)
	if string(got["paymentMethod"]) != `""` {
		t.Errorf("stored paymentMethod = %s, want \"\"", got["paymentMethod"])
	}
}

func TestListInvoicesNewestFirst(t *testing.T) {
	srv := newTestServer(t)

	for i := 1; i <= 3; i++ {
		body := fmt.Sprintf(`{"clientName": "client-%d"}`, i)
		if rr := doRequest(t, srv, "POST", "/api/invoices", body); rr.Code != http.StatusCreated {
			t.Fatalf("create %d: status = %d", i, rr.Code)
		}
	}

	rr := doRequest(t, srv, "GET", "/api/invoices", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var list []struct {
		ClientName string `json:"clientName"`
	}
	decodeBody(t, rr, &list)
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	for i, want := range []string{"client-3", "client-2", "client-1"} {
		if list[i].ClientName != want {
			t.Errorf("list[%d].clientName = %q, want %q", i, list[i].ClientName, want)
		}
	}
}

func TestDeleteInvoice(t *testing.T) {
	srv := newTestServer(t)

	rr := doRequest(t, srv, "POST", "/api/invoices", `{}`)
	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, rr, &created)

	rr = doRequest(t, srv, "DELETE", fmt.Sprintf("/api/invoices/%d", created.ID), "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp map[string]string
	decodeBody(t, rr, &resp)
	if resp["message"] != "Invoice deleted successfully" {
		t.Errorf("message = %q", resp["message"])
	}
}
