package zooplus

import (
	"math"
	"reflect"
	"testing"
)

func TestHeader(t *testing.T) {
	want := []string{"name", "clinic", "reception_time", "address", "rating", "num_reviews"}
	if got := Header(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected header %v, got %v", want, got)
	}

	h := Header()
	h[0] = "changed"
	if Header()[0] != "name" {
		t.Error("expected Header to return a copy")
	}
}

func TestRecordValues(t *testing.T) {
	clinic := "Praxis Nord"
	rec := Record{
		Name:          "Dr. Nord",
		Clinic:        &clinic,
		ReceptionTime: "Mo 8-12",
		Address:       "Nordweg 1",
		Rating:        5,
		NumReviews:    128,
	}

	want := []string{"Dr. Nord", "Praxis Nord", "Mo 8-12", "Nordweg 1", "5", "128.0"}
	if got := rec.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	rec.Clinic = nil
	if got := rec.Values()[1]; got != "" {
		t.Errorf("expected empty clinic for nil, got %q", got)
	}
	if len(rec.Values()) != len(Header()) {
		t.Error("expected one value per header column")
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{128, "128.0"},
		{4.5, "4.5"},
		{1e21, "1000000000000000000000.0"},
		{math.Inf(1), "+Inf"},
	}

	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
