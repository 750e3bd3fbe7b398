package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/amishk599/careerconnect/internal/catalog"
	"github.com/amishk599/careerconnect/internal/model"
)

func TestWriteApplicationsCSV(t *testing.T) {
	var buf bytes.Buffer
	apps := catalog.Applications()
	apps[0].JobTitle = "Engineer, Platform" // needs quoting

	if err := WriteApplicationsCSV(&buf, apps); err != nil {
		t.Fatalf("WriteApplicationsCSV() = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != len(apps)+1 {
		t.Fatalf("rows = %d, want %d", len(rows), len(apps)+1)
	}
	if rows[0][0] != "ID" || rows[0][4] != "Status" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][2] != "Engineer, Platform" {
		t.Errorf("title = %q", rows[1][2])
	}
	if rows[1][4] != string(model.StatusInterview) {
		t.Errorf("status = %q, want Interview", rows[1][4])
	}
}

func TestWriteApplicationsCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteApplicationsCSV(&buf, nil); err != nil {
		t.Fatalf("WriteApplicationsCSV(nil) = %v", err)
	}
	rows, _ := csv.NewReader(&buf).ReadAll()
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}

func TestApplicationsCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.csv")
	if err := ApplicationsCSVFile(path, catalog.Applications()); err != nil {
		t.Fatalf("ApplicationsCSVFile() = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("Tech Solutions Inc.")) {
		t.Errorf("file missing seed company: %s", data)
	}

	if err := ApplicationsCSVFile(filepath.Join(t.TempDir(), "missing", "apps.csv"), nil); err == nil {
		t.Error("expected error for missing directory")
	}
}
