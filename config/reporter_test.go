package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// readArchive returns content of every entry in zip archive.
func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport_Close(t *testing.T) {
	tmpDir := t.TempDir()

	conf := ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	stored := filepath.Join(tmpDir, "final.log")
	if err := os.WriteFile(stored, []byte("log line\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	r.Store("final.log", stored)
	r.Store("missing.txt", filepath.Join(tmpDir, "missing.txt"))
	r.StoreData("scss/_colors.scss", []byte(":root {\n}\n"))
	r.StoreData("scss/_colors.scss", []byte(":root {}\n"))

	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	files := readArchive(t, r.Name())
	if files["final.log"] != "log line\n" {
		t.Errorf("final.log content = %q", files["final.log"])
	}
	if files["scss/_colors.scss"] != ":root {\n}\n" {
		t.Errorf("scss/_colors.scss content = %q", files["scss/_colors.scss"])
	}
	if _, ok := files["missing.txt"]; ok {
		t.Error("absent file should not be archived")
	}

	var versioned bool
	for name := range files {
		if strings.HasPrefix(name, "scss/_colors.scss-") {
			versioned = true
		}
	}
	if !versioned {
		t.Errorf("second data entry with the same name not versioned: %v", files)
	}

	manifest := files["MANIFEST"]
	for _, name := range []string{"final.log", "missing.txt", "scss/_colors.scss"} {
		if !strings.Contains(manifest, name) {
			t.Errorf("MANIFEST does not mention %s:\n%s", name, manifest)
		}
	}
}

func TestReport_StoreOverwritePanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("final.log", "a.log")
	r.Store("final.log", "a.log")

	defer func() {
		if recover() == nil {
			t.Error("Store() with different path for the same name should panic")
		}
	}()
	r.Store("final.log", "b.log")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	r.Store("x", "y")
	r.StoreData("x", []byte("y"))
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name on nil report = %q, want empty", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
