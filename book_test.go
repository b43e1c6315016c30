package fundboard

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "acme.jsonl")
	content := `{"FundType":"Equity","Fund":"A","Asset":"Stock1","MV":10,"Equity":8}` + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	book, err := LoadBook(path)
	if err != nil {
		t.Fatalf("LoadBook() error = %v", err)
	}
	if book.Name() != "acme" {
		t.Errorf("Name() = %q, want acme", book.Name())
	}
	if book.Currency() != DefaultCurrency {
		t.Errorf("Currency() = %q, want %q", book.Currency(), DefaultCurrency)
	}
	if book.Len() != 1 {
		t.Errorf("Len() = %d, want 1", book.Len())
	}
}

func TestLoadBookCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")
	content := "FundType,Fund,Asset,MV,Equity\nEquity,A,Stock1,10,8\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	book, err := LoadBook(path)
	if err != nil {
		t.Fatalf("LoadBook() error = %v", err)
	}
	if book.Name() != "export" || book.Len() != 1 {
		t.Errorf("loaded %q with %d records, want export with 1", book.Name(), book.Len())
	}
}

func TestLoadBookFailures(t *testing.T) {
	if _, err := LoadBook(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Error("LoadBook() should fail on a missing file")
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := os.WriteFile(path, []byte("binary"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBook(path); err == nil {
		t.Error("LoadBook() should fail on an unsupported extension")
	}
}

func TestFindBooks(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"main.jsonl", "sub/alt.jsonl", "notes.txt"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	all, err := FindBooks(dir, "")
	if err != nil {
		t.Fatalf("FindBooks() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("FindBooks(all) found %d books, want 2: %v", len(all), all)
	}

	one, err := FindBooks(dir, filepath.Join("sub", "alt"))
	if err != nil {
		t.Fatalf("FindBooks() error = %v", err)
	}
	if len(one) != 1 {
		t.Errorf("FindBooks(sub/alt) found %d books, want 1: %v", len(one), one)
	}
}

func TestBookRecordsIsACopy(t *testing.T) {
	book := sampleBook()
	records := book.Records()
	records[0].FundType = "Tampered"

	if book.Records()[0].FundType == "Tampered" {
		t.Error("Records() exposed the book's internal slice")
	}
}
