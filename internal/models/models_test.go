package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNewDays(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want Days
	}{
		{"nil", nil, Days{}},
		{"empty", []string{}, Days{}},
		{"keeps order", []string{"Wed", "Mon"}, Days{"Wed", "Mon"}},
		{"collapses duplicates", []string{"Mon", "Wed", "Mon"}, Days{"Mon", "Wed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewDays(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewDays(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDaysScan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    Days
		wantErr bool
	}{
		{"null column", nil, Days{}, false},
		{"empty text", "", Days{}, false},
		{"json text", `["Mon","Fri"]`, Days{"Mon", "Fri"}, false},
		{"json bytes", []byte(`["Sun"]`), Days{"Sun"}, false},
		{"not json", "Mon,Fri", nil, true},
		{"wrong type", 42, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Days
			err := d.Scan(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan(%v) error = %v, wantErr %v", tt.src, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(d, tt.want) {
				t.Errorf("Scan(%v) = %#v, want %#v", tt.src, d, tt.want)
			}
		})
	}
}

func TestDaysValue(t *testing.T) {
	v, err := Days(nil).Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "[]" {
		t.Errorf("Expected nil days stored as [], got %v", v)
	}
}

func TestUserJSONOmitsPassword(t *testing.T) {
	b, _ := json.Marshal(User{ID: "u1", Email: "a@x.com", Password: "hash"})

	var fields map[string]any
	json.Unmarshal(b, &fields)
	if _, ok := fields["password"]; ok {
		t.Error("Password must not be serialized")
	}
	if _, ok := fields["caregiverId"]; !ok {
		t.Error("Expected caregiverId key, even when null")
	}
}

func TestMedicationJSONDaysNeverNull(t *testing.T) {
	b, _ := json.Marshal(Medication{ID: "m1"})

	var fields map[string]any
	json.Unmarshal(b, &fields)
	if days, ok := fields["days"].([]any); !ok || len(days) != 0 {
		t.Errorf("Expected days to encode as [], got %v", fields["days"])
	}
}
