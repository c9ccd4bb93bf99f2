package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreatePresetOmitsInternalID(t *testing.T) {
	srv := newTestServer(t)

	rr := doRequest(t, srv, "POST", "/api/presets", `{"siteName": "Office Block A"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d (body %s)", rr.Code, rr.Body.String())
	}

	var got map[string]json.RawMessage
	decodeBody(t, rr, &got)
	if _, ok := got["id"]; ok {
		t.Error("preset id should never be surfaced")
	}
	if string(got["siteName"]) != `"Office Block A"` {
		t.Errorf("siteName = %s", got["siteName"])
	}
	if string(got["sections"]) != `[]` {
		t.Errorf("sections = %s, want []", got["sections"])
	}
}

func TestPresetHasNoUpdateRoute(t *testing.T) {
	srv := newTestServer(t)

	rr := doRequest(t, srv, "PUT", "/api/presets/1", `{"siteName": "X"}`)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestDeletePreset(t *testing.T) {
	srv := newTestServer(t)

	if rr := doRequest(t, srv, "POST", "/api/presets", `{"siteName": "Site"}`); rr.Code != http.StatusCreated {
		t.Fatalf("create: status = %d", rr.Code)
	}

	// the external encoding carries no id, so the first generated one is used
	rr := doRequest(t, srv, "DELETE", "/api/presets/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", rr.Code)
	}
	var resp map[string]string
	decodeBody(t, rr, &resp)
	if resp["message"] != "Preset deleted successfully" {
		t.Errorf("message = %q", resp["message"])
	}

	if rr := doRequest(t, srv, "DELETE", "/api/presets/1", ""); rr.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
