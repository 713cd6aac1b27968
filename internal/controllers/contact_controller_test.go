package controllers_test

import (
	"net/http"
	"testing"

	"ecobin_backend/internal/models"
)

func TestContactCRUD(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/public/addContact", map[string]any{
		"name": "Mia", "email": "mia@x.com", "message": "missed pickup on my street",
	}, nil)
	wantStatus(t, w, http.StatusOK)

	var created models.Contact
	decodeJSON(t, w, &created)
	if created.ID == 0 {
		t.Fatal("create did not assign an id")
	}

	w = doJSON(t, r, http.MethodGet, "/public/contactId/1", nil, nil)
	wantStatus(t, w, http.StatusOK)
	var got models.Contact
	decodeJSON(t, w, &got)
	if got.Name != "Mia" || got.Email != "mia@x.com" || got.Message != "missed pickup on my street" {
		t.Errorf("round trip lost fields: %+v", got)
	}

	// Full field replace on update.
	w = doJSON(t, r, http.MethodPut, "/public/updateContact/1", map[string]any{
		"name": "Mia L", "email": "mia@y.com", "message": "resolved, thanks",
	}, nil)
	wantStatus(t, w, http.StatusOK)
	decodeJSON(t, w, &got)
	if got.Name != "Mia L" || got.Email != "mia@y.com" || got.Message != "resolved, thanks" {
		t.Errorf("update did not replace all fields: %+v", got)
	}

	w = doJSON(t, r, http.MethodDelete, "/public/deleteContact/1", nil, nil)
	wantStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, "/public/contactId/1", nil, nil)
	wantStatus(t, w, http.StatusNotFound)
}

func TestContactDeleteMissingIsNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/public/deleteContact/7", nil, nil)
	wantStatus(t, w, http.StatusNotFound)

	// The miss must not create anything.
	w = doJSON(t, r, http.MethodGet, "/public/allContact", nil, nil)
	wantStatus(t, w, http.StatusOK)
	var all []models.Contact
	decodeJSON(t, w, &all)
	if len(all) != 0 {
		t.Errorf("delete miss created records: %d", len(all))
	}
}
