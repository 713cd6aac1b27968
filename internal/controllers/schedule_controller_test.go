package controllers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"ecobin_backend/internal/models"
)

var truckJPEG = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0x03, 0x04}

func TestScheduleCreateAndFetchRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	fields := map[string]string{
		"driverName":     "Kamal",
		"wasteType":      "Plastic",
		"collectionDate": "2025-05-01",
		"location":       "Colombo",
	}
	w := doMultipart(t, r, http.MethodPost, "/public/addSchedule", fields, "truckImage", truckJPEG)
	wantStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Id: 1") {
		t.Errorf("create confirmation missing id: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/public/getById/1", nil, nil)
	wantStatus(t, w, http.StatusOK)

	var got models.CollectionSchedule
	decodeJSON(t, w, &got)
	if got.DriverName != "Kamal" || got.WasteType != "Plastic" || got.CollectionDate != "2025-05-01" || got.Location != "Colombo" {
		t.Errorf("round trip lost scalar fields: %+v", got)
	}
	if !bytes.Equal(got.TruckImage, truckJPEG) {
		t.Errorf("round trip corrupted image bytes: %v", got.TruckImage)
	}
}

func TestScheduleCreateRequiresImage(t *testing.T) {
	r := newTestRouter(t)

	w := doMultipart(t, r, http.MethodPost, "/public/addSchedule", map[string]string{
		"driverName": "Kamal",
	}, "truckImage", nil)
	wantStatus(t, w, http.StatusBadRequest)
}

func TestScheduleIDsStrictlyIncrease(t *testing.T) {
	r := newTestRouter(t)

	for i, want := range []string{"Id: 1", "Id: 2", "Id: 3"} {
		w := doMultipart(t, r, http.MethodPost, "/public/addSchedule", map[string]string{
			"driverName": fmt.Sprintf("driver-%d", i),
		}, "truckImage", truckJPEG)
		wantStatus(t, w, http.StatusOK)
		if !strings.Contains(w.Body.String(), want) {
			t.Fatalf("create %d confirmation = %q, want it to contain %q", i, w.Body.String(), want)
		}
	}
}

func TestScheduleUpdatePreservesImageWhenOmitted(t *testing.T) {
	r := newTestRouter(t)

	w := doMultipart(t, r, http.MethodPost, "/public/addSchedule", map[string]string{
		"driverName": "Kamal", "wasteType": "Plastic",
	}, "truckImage", truckJPEG)
	wantStatus(t, w, http.StatusOK)

	// Update without a file: scalars replaced, image bytes untouched.
	w = doMultipart(t, r, http.MethodPut, "/public/updateSchedule/1", map[string]string{
		"driverName": "Nimal", "wasteType": "Glass", "collectionDate": "2025-06-01", "location": "Kandy",
	}, "truckImage", nil)
	wantStatus(t, w, http.StatusOK)

	var got models.CollectionSchedule
	w = doJSON(t, r, http.MethodGet, "/public/getById/1", nil, nil)
	decodeJSON(t, w, &got)
	if got.DriverName != "Nimal" || got.WasteType != "Glass" {
		t.Errorf("update did not replace scalars: %+v", got)
	}
	if !bytes.Equal(got.TruckImage, truckJPEG) {
		t.Error("update without image must preserve prior bytes exactly")
	}

	// Update with a new file replaces the image.
	newImage := []byte{0x89, 0x50, 0x4E, 0x47}
	w = doMultipart(t, r, http.MethodPut, "/public/updateSchedule/1", map[string]string{
		"driverName": "Nimal", "wasteType": "Glass", "collectionDate": "2025-06-01", "location": "Kandy",
	}, "truckImage", newImage)
	wantStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, "/public/getById/1", nil, nil)
	decodeJSON(t, w, &got)
	if !bytes.Equal(got.TruckImage, newImage) {
		t.Error("update with a new image must replace the stored bytes")
	}
}

func TestScheduleNotFoundPaths(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"get missing", http.MethodGet, "/public/getById/42"},
		{"delete missing", http.MethodDelete, "/public/deleteSchedule/42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, tt.method, tt.path, nil, nil)
			wantStatus(t, w, http.StatusNotFound)
		})
	}

	t.Run("update missing", func(t *testing.T) {
		w := doMultipart(t, r, http.MethodPut, "/public/updateSchedule/42", map[string]string{
			"driverName": "x",
		}, "truckImage", nil)
		wantStatus(t, w, http.StatusNotFound)
	})

	// None of the misses may create a record.
	w := doJSON(t, r, http.MethodGet, "/public/getAllSchedule", nil, nil)
	var all []models.CollectionSchedule
	decodeJSON(t, w, &all)
	if len(all) != 0 {
		t.Errorf("not-found paths created records: %d", len(all))
	}
}
