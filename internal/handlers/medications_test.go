package handlers

import (
	"net/http"
	"reflect"
	"testing"
)

func addMedication(t *testing.T, r http.Handler, userID string, body map[string]any) map[string]any {
	t.Helper()
	rr := do(t, r, "POST", "/medications/"+userID, body)
	expectStatus(t, rr, http.StatusCreated)
	return decodeBody[map[string]any](t, rr)
}

func TestAddMedication(t *testing.T) {
	r := newTestRouter(t, false)
	userID := signup(t, r, "a@x.com", false)["id"].(string)

	med := addMedication(t, r, userID, map[string]any{
		"name": "Aspirin", "amount": 1, "unit": "pill", "time": "08:00", "days": []string{"Mon", "Wed"},
	})
	if med["userId"] != userID || med["taken"] != false {
		t.Errorf("Unexpected representation: %v", med)
	}

	addMedication(t, r, userID, map[string]any{"name": "Vitamin D", "amount": 0.5, "unit": "ml", "time": "night"})

	rr := do(t, r, "GET", "/medications/"+userID, nil)
	expectStatus(t, rr, http.StatusOK)
	meds := decodeBody[[]map[string]any](t, rr)
	if len(meds) != 2 {
		t.Fatalf("Expected 2 medications, got %d", len(meds))
	}
	for _, m := range meds {
		var want []any
		if m["name"] == "Aspirin" {
			want = []any{"Mon", "Wed"}
		} else {
			want = []any{}
		}
		if !reflect.DeepEqual(m["days"], want) {
			t.Errorf("%v: expected days %v, got %v", m["name"], want, m["days"])
		}
	}

	// Unknown owner
	rr = do(t, r, "POST", "/medications/ghost", map[string]any{"name": "X", "amount": 1, "unit": "pill", "time": "08:00"})
	expectStatus(t, rr, http.StatusNotFound)

	// Zero amount is rejected like a missing one
	rr = do(t, r, "POST", "/medications/"+userID, map[string]any{"name": "X", "amount": 0, "unit": "pill", "time": "08:00"})
	expectStatus(t, rr, http.StatusBadRequest)
}

func TestUpdateMedication(t *testing.T) {
	r := newTestRouter(t, false)
	userID := signup(t, r, "a@x.com", false)["id"].(string)
	med := addMedication(t, r, userID, map[string]any{
		"name": "Aspirin", "amount": 1, "unit": "pill", "time": "08:00", "days": []string{"Mon"},
	})
	path := "/medications/" + userID + "/" + med["id"].(string)

	rr := do(t, r, "PUT", path, map[string]any{"taken": true, "days": []string{"Mon"}})
	expectStatus(t, rr, http.StatusOK)
	updated := decodeBody[map[string]any](t, rr)
	if updated["taken"] != true || updated["name"] != "Aspirin" || updated["amount"] != 1.0 || updated["time"] != "08:00" {
		t.Errorf("Unexpected update result: %v", updated)
	}

	rr = do(t, r, "PUT", path, map[string]any{"name": ""})
	expectStatus(t, rr, http.StatusOK)
	updated = decodeBody[map[string]any](t, rr)
	if updated["name"] != "" {
		t.Errorf("Expected empty name to overwrite, got %v", updated["name"])
	}
	if days := updated["days"].([]any); len(days) != 0 {
		t.Errorf("Expected absent days to clear schedule, got %v", days)
	}

	expectStatus(t, do(t, r, "PUT", "/medications/other/"+med["id"].(string), map[string]any{}), http.StatusNotFound)
}

func TestDeleteMedication(t *testing.T) {
	r := newTestRouter(t, false)
	userID := signup(t, r, "a@x.com", false)["id"].(string)
	medID := addMedication(t, r, userID, map[string]any{"name": "Aspirin", "amount": 1, "unit": "pill", "time": "08:00"})["id"].(string)
	do(t, r, "POST", "/chats/"+medID, map[string]string{"sender_id": userID, "content": "hi"})

	expectStatus(t, do(t, r, "DELETE", "/medications/other/"+medID, nil), http.StatusNotFound)
	expectStatus(t, do(t, r, "DELETE", "/medications/"+userID+"/"+medID, nil), http.StatusOK)
	expectStatus(t, do(t, r, "DELETE", "/medications/"+userID+"/"+medID, nil), http.StatusNotFound)

	rr := do(t, r, "GET", "/chats/"+medID, nil)
	if history := decodeBody[[]map[string]any](t, rr); len(history) != 0 {
		t.Errorf("Expected chat deleted with medication, got %d messages", len(history))
	}
}

func TestMarkTakenScope(t *testing.T) {
	tests := []struct {
		name           string
		scoped         bool
		expectedStatus int
	}{
		{"Unscoped", false, http.StatusOK},
		{"Scoped", true, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, tt.scoped)
			userID := signup(t, r, "a@x.com", false)["id"].(string)
			medID := addMedication(t, r, userID, map[string]any{"name": "Aspirin", "amount": 1, "unit": "pill", "time": "08:00"})["id"].(string)

			// Another user's id in the path
			expectStatus(t, do(t, r, "POST", "/medications/intruder/"+medID+"/taken", nil), tt.expectedStatus)
			expectStatus(t, do(t, r, "POST", "/medications/"+userID+"/missing/taken", nil), http.StatusNotFound)
		})
	}
}
