package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `Name,Url,Rating,Difficulty,Tags
Python for Everybody,https://example.com/p4e,4.8,Beginner,"['python', 'programming']"
Advanced SQL,https://example.com/sql,NaN,,"['sql', 'databases']"
,https://example.com/ghost,4.0,Beginner,"['orphan']"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 courses (nameless row skipped), got %d", c.Len())
	}

	first := c.Courses()[0]
	if first.Name != "Python for Everybody" || first.URL != "https://example.com/p4e" {
		t.Fatalf("unexpected first course: %+v", first)
	}
	if first.Rating == nil || *first.Rating != 4.8 {
		t.Fatalf("expected rating 4.8, got %v", first.Rating)
	}
	if first.Difficulty == nil || *first.Difficulty != "Beginner" {
		t.Fatalf("expected difficulty Beginner, got %v", first.Difficulty)
	}
	if len(first.Tags) != 2 || first.Tags[0] != "python" || first.Tags[1] != "programming" {
		t.Fatalf("unexpected tags: %v", first.Tags)
	}

	second := c.Courses()[1]
	if second.Rating != nil {
		t.Fatalf("NaN rating must be nil, got %v", *second.Rating)
	}
	if second.Difficulty != nil {
		t.Fatalf("empty difficulty must be nil, got %v", *second.Difficulty)
	}
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeCatalog(t, "Title,Link\nSome Course,https://example.com\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error when the Name column is missing")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadRaggedRows(t *testing.T) {
	path := writeCatalog(t, `Name,Url,Rating,Difficulty,Tags
Short Row,https://example.com/short
Full Row,https://example.com/full,4.2,Intermediate,"['go']"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected both rows, got %d", c.Len())
	}
	short := c.Courses()[0]
	if short.Rating != nil || short.Difficulty != nil || len(short.Tags) != 0 {
		t.Fatalf("short row should leave optional fields unset: %+v", short)
	}
}

func TestNilCatalogIsSafe(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 || c.Courses() != nil {
		t.Fatal("nil catalog must behave as empty")
	}
}
