package pintable

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/partlab/datasheet/vocab"
)

const pinoutHTML = `<html><head><title>XYZ1234 Datasheet</title></head><body>
<h2>Ordering Information</h2>
<p>XYZ1234A-EVK available now.</p>
<h3>Pin Assignments</h3>
<table>
<tr><th>Pin</th><th>Name</th><th>Type</th></tr>
<tr><td>1</td><td>VDD</td><td>Power</td></tr>
<tr><td>2</td><td>GND</td><td>Power</td></tr>
</table>
<h3>Electrical Characteristics</h3>
<table>
<tr><th>Parameter</th><th>Min</th><th>Max</th><th>Units</th></tr>
<tr><td>VIH</td><td>2.0</td><td>5.5</td><td>V</td></tr>
<tr><td>VIL</td><td>0</td><td>0.8</td><td>V</td></tr>
</table>
</body></html>`

func writePinFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileSelectsAndNormalizesPinTable(t *testing.T) {
	e := New(vocab.Default())
	path := writePinFile(t, "ds.html", pinoutHTML)

	got, err := e.File(path)
	if err != nil {
		t.Fatalf("File() error: %v", err)
	}
	tbl, ok := got[DefaultLabel]
	if !ok {
		t.Fatalf("File() result missing %q key: %v", DefaultLabel, got)
	}
	want := [][]string{
		{"Pin Number", "Pin Name", "Type"},
		{"1", "VDD", "Power"},
		{"2", "GND", "Power"},
	}
	if !reflect.DeepEqual(tbl.Rows, want) {
		t.Errorf("pin table = %v, want %v", tbl.Rows, want)
	}
}

func TestFileIdempotent(t *testing.T) {
	e := New(vocab.Default())
	path := writePinFile(t, "ds.html", pinoutHTML)

	first, err := e.File(path)
	if err != nil {
		t.Fatalf("File() error: %v", err)
	}
	second, err := e.File(path)
	if err != nil {
		t.Fatalf("File() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("File() not idempotent: %v vs %v", first, second)
	}
}

func TestFileNoTables(t *testing.T) {
	e := New(vocab.Default())
	path := writePinFile(t, "plain.html", "<html><body><p>No tables here.</p></body></html>")

	got, err := e.File(path)
	if err != nil {
		t.Fatalf("File() error: %v", err)
	}
	if !reflect.DeepEqual(got[DefaultLabel].Rows, Sentinel().Rows) {
		t.Errorf("File() = %v, want sentinel", got[DefaultLabel].Rows)
	}
}

func TestFileSingleRowTable(t *testing.T) {
	e := New(vocab.Default())
	path := writePinFile(t, "one.html",
		"<html><body><table><tr><td>Pin</td></tr></table></body></html>")

	got, err := e.File(path)
	if err != nil {
		t.Fatalf("File() error: %v", err)
	}
	if !reflect.DeepEqual(got[DefaultLabel].Rows, Sentinel().Rows) {
		t.Errorf("File() = %v, want sentinel for a one-row table", got[DefaultLabel].Rows)
	}
}

func TestFileUnsupportedFormat(t *testing.T) {
	e := New(vocab.Default())

	got, err := e.File("missing-notes.docx")
	if err != nil {
		t.Fatalf("File() error: %v, want sentinel without error", err)
	}
	if !reflect.DeepEqual(got[DefaultLabel].Rows, Sentinel().Rows) {
		t.Errorf("File() = %v, want sentinel", got[DefaultLabel].Rows)
	}
}

func TestFileMissingHTML(t *testing.T) {
	e := New(vocab.Default())

	_, err := e.File(filepath.Join(t.TempDir(), "absent.html"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("File(missing html) error = %v, want not-exist", err)
	}
}

func TestFileMissingPDFAbsorbed(t *testing.T) {
	e := New(vocab.Default())

	got, err := e.File(filepath.Join(t.TempDir(), "absent.pdf"))
	if err != nil {
		t.Fatalf("File(missing pdf) error = %v, want sentinel without error", err)
	}
	if !reflect.DeepEqual(got[DefaultLabel].Rows, Sentinel().Rows) {
		t.Errorf("File(missing pdf) = %v, want sentinel", got[DefaultLabel].Rows)
	}
}
