package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"vetparser/internal/sites/zooplus"
)

func TestWriteFile_CSV(t *testing.T) {
	clinic := "Praxis am See"
	records := []zooplus.Record{
		{Name: "Dr. See", Clinic: &clinic, ReceptionTime: "Mo 9-12", Address: "Seeweg 2", Rating: 3, NumReviews: 17},
		{Name: "Dr. Berg", ReceptionTime: "Di 14-18", Address: "Bergstr. 9, Ulm", Rating: 5, NumReviews: 128},
	}
	name := filepath.Join(t.TempDir(), "veterinarians")

	path, err := WriteFile(zooplus.NewVetContent(zooplus.SearchURL, records), name, "csv")
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if path != name+".csv" {
		t.Errorf("expected path %s.csv, got %s", name, path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	want := [][]string{
		{"name", "clinic", "reception_time", "address", "rating", "num_reviews"},
		{"Dr. See", "Praxis am See", "Mo 9-12", "Seeweg 2", "3", "17.0"},
		{"Dr. Berg", "", "Di 14-18", "Bergstr. 9, Ulm", "5", "128.0"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("expected rows %v, got %v", want, rows)
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out")
	if err := os.WriteFile(name+".csv", []byte("stale content that is longer than the header\n"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, err := WriteFile(zooplus.NewVetContent(zooplus.SearchURL, nil), name, "csv"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(name + ".csv")
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if want := "name,clinic,reception_time,address,rating,num_reviews\n"; string(data) != want {
		t.Errorf("expected %q, got %q", want, data)
	}
}

func TestWriteFile_Errors(t *testing.T) {
	content := zooplus.NewVetContent(zooplus.SearchURL, nil)

	if _, err := WriteFile(content, filepath.Join(t.TempDir(), "out"), "xml"); err == nil {
		t.Error("expected error for unsupported format")
	}

	missingDir := filepath.Join(t.TempDir(), "no", "such", "dir", "out")
	if _, err := WriteFile(content, missingDir, "csv"); err == nil {
		t.Error("expected error when the directory does not exist")
	}
}
