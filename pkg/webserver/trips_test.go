package webserver

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/tripfolio/tripfolio-api/pkg/models"
)

const skiTripBody = `{
	"user_id": "u1",
	"title": "Ski Trip",
	"destination": "Aspen",
	"start_date": "2025-01-10",
	"end_date": "2025-01-15"
}`

func createTestTrip(t *testing.T, server *Server, body string) models.Trip {
	t.Helper()

	w := doRequest(t, server, http.MethodPost, "/trips", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var trip models.Trip
	decodeBody(t, w, &trip)
	return trip
}

func TestCreateTripAppliesDefaults(t *testing.T) {
	server := newTestServer(t)

	trip := createTestTrip(t, server, skiTripBody)
	if trip.ID == "" {
		t.Fatal("response is missing the generated id")
	}
	if trip.Status != "Planned" {
		t.Fatalf("expected default status Planned, got %q", trip.Status)
	}
	if trip.CreatedAt.IsZero() || trip.UpdatedAt.IsZero() {
		t.Fatal("timestamps not populated")
	}
	if trip.StartDate.String() != "2025-01-10" || trip.EndDate.String() != "2025-01-15" {
		t.Fatalf("dates mangled: %s / %s", trip.StartDate, trip.EndDate)
	}
}

func TestCreateTripValidation(t *testing.T) {
	server := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"user_id":"u1","destination":"Aspen","start_date":"2025-01-10","end_date":"2025-01-15"}`},
		{"missing user_id", `{"title":"Ski Trip","destination":"Aspen","start_date":"2025-01-10","end_date":"2025-01-15"}`},
		{"malformed start_date", `{"user_id":"u1","title":"Ski Trip","destination":"Aspen","start_date":"not-a-date","end_date":"2025-01-15"}`},
		{"numeric date", `{"user_id":"u1","title":"Ski Trip","destination":"Aspen","start_date":20250110,"end_date":"2025-01-15"}`},
		{"not json", `title=Ski+Trip`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, server, http.MethodPost, "/trips", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateTripRejectsBadImageURL(t *testing.T) {
	server := newTestServer(t)

	body := `{"user_id":"u1","title":"Ski Trip","destination":"Aspen","start_date":"2025-01-10","end_date":"2025-01-15","image_url":"not a url"}`
	w := doRequest(t, server, http.MethodPost, "/trips", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListTripsFilterByOwner(t *testing.T) {
	server := newTestServer(t)

	createTestTrip(t, server, skiTripBody)
	createTestTrip(t, server, `{"user_id":"u2","title":"City Break","destination":"Prague","start_date":"2025-02-01","end_date":"2025-02-04"}`)

	var all []models.Trip
	w := doRequest(t, server, http.MethodGet, "/trips", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeBody(t, w, &all)
	if len(all) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(all))
	}

	var mine []models.Trip
	w = doRequest(t, server, http.MethodGet, "/trips?userId=u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeBody(t, w, &mine)
	if len(mine) != 1 || mine[0].Title != "Ski Trip" {
		t.Fatalf("owner filter failed: %+v", mine)
	}

	var none []models.Trip
	w = doRequest(t, server, http.MethodGet, "/trips?userId=nobody", "")
	decodeBody(t, w, &none)
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d", len(none))
	}
}

func TestListTripsOrderedByStartDateDesc(t *testing.T) {
	server := newTestServer(t)

	dates := []string{"2024-05-01", "2025-06-01", "2024-12-24"}
	for i, date := range dates {
		body := fmt.Sprintf(`{"user_id":"u1","title":"trip-%d","destination":"x","start_date":"%s","end_date":"%s"}`, i, date, date)
		createTestTrip(t, server, body)
	}

	var trips []models.Trip
	w := doRequest(t, server, http.MethodGet, "/trips", "")
	decodeBody(t, w, &trips)

	if len(trips) != 3 {
		t.Fatalf("expected 3 trips, got %d", len(trips))
	}
	want := []string{"2025-06-01", "2024-12-24", "2024-05-01"}
	for i, trip := range trips {
		if trip.StartDate.String() != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], trip.StartDate)
		}
	}
}

func TestGetTrip(t *testing.T) {
	server := newTestServer(t)

	created := createTestTrip(t, server, skiTripBody)

	w := doRequest(t, server, http.MethodGet, "/trips/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var trip models.Trip
	decodeBody(t, w, &trip)
	if trip.ID != created.ID || trip.Title != "Ski Trip" || trip.Destination != "Aspen" {
		t.Fatalf("retrieved record differs: %+v", trip)
	}

	w = doRequest(t, server, http.MethodGet, "/trips/2e9b0b48-50f3-4b0e-9a3f-000000000000", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}

	w = doRequest(t, server, http.MethodGet, "/trips/not-a-uuid", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", w.Code)
	}
}

func TestReplaceTrip(t *testing.T) {
	server := newTestServer(t)

	created := createTestTrip(t, server, skiTripBody)

	body := `{"user_id":"u1","title":"Ski Trip","destination":"Vail","start_date":"2025-01-12","end_date":"2025-01-18","status":"Confirmed"}`
	w := doRequest(t, server, http.MethodPut, "/trips/"+created.ID, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var trip models.Trip
	decodeBody(t, w, &trip)
	if trip.Destination != "Vail" || trip.Status != "Confirmed" {
		t.Fatalf("replace did not apply: %+v", trip)
	}
	if trip.StartDate.String() != "2025-01-12" {
		t.Fatalf("start date not replaced: %s", trip.StartDate)
	}

	// Replace with a missing required field fails
	w = doRequest(t, server, http.MethodPut, "/trips/"+created.ID, `{"user_id":"u1","title":"Ski Trip"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = doRequest(t, server, http.MethodPut, "/trips/2e9b0b48-50f3-4b0e-9a3f-000000000000", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPatchTripStatusOnly(t *testing.T) {
	server := newTestServer(t)

	created := createTestTrip(t, server, skiTripBody)

	time.Sleep(20 * time.Millisecond)

	w := doRequest(t, server, http.MethodPatch, "/trips/"+created.ID, `{"status":"Completed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var patched models.Trip
	decodeBody(t, w, &patched)
	if patched.Status != "Completed" {
		t.Fatalf("status not patched: %q", patched.Status)
	}
	if patched.Title != created.Title || patched.Destination != created.Destination ||
		patched.UserID != created.UserID || patched.ImageURL != created.ImageURL {
		t.Fatalf("patch touched unrelated fields: %+v", patched)
	}
	if patched.StartDate.String() != created.StartDate.String() {
		t.Fatalf("patch touched start date: %s", patched.StartDate)
	}
	if !patched.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at not advanced: %v <= %v", patched.UpdatedAt, created.UpdatedAt)
	}
	if !patched.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("created_at changed on patch")
	}
}

func TestPatchTripRejectsBlankRequiredFields(t *testing.T) {
	server := newTestServer(t)

	created := createTestTrip(t, server, skiTripBody)

	for _, body := range []string{`{"title":""}`, `{"user_id":""}`, `{"destination":"   "}`} {
		w := doRequest(t, server, http.MethodPatch, "/trips/"+created.ID, body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d: %s", body, w.Code, w.Body.String())
		}
	}

	// The record is untouched after the rejected patches
	w := doRequest(t, server, http.MethodGet, "/trips/"+created.ID, "")
	var trip models.Trip
	decodeBody(t, w, &trip)
	if trip.Title != created.Title || trip.UserID != created.UserID || trip.Destination != created.Destination {
		t.Fatalf("rejected patch modified the record: %+v", trip)
	}
}

func TestDeleteTrip(t *testing.T) {
	server := newTestServer(t)

	created := createTestTrip(t, server, skiTripBody)

	w := doRequest(t, server, http.MethodDelete, "/trips/"+created.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", w.Body.String())
	}

	w = doRequest(t, server, http.MethodGet, "/trips/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}

	w = doRequest(t, server, http.MethodDelete, "/trips/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on double delete, got %d", w.Code)
	}
}
