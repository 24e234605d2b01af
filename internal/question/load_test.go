package question

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_ArrayShape(t *testing.T) {
	raws, err := Parse([]byte(`[{"question":"q1","options":["a","b"],"correct":0}]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(raws) != 1 || raws[0].Text != "q1" {
		t.Fatalf("unexpected result: %+v", raws)
	}
}

func TestParse_QuestionsObjectShape(t *testing.T) {
	raws, err := Parse([]byte(`{"questions":[{"question":"q1","type":"tf","correct":true}]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(raws) != 1 {
		t.Fatalf("expected 1 record, got %d", len(raws))
	}
}

func TestParse_LegacyMapShape(t *testing.T) {
	data := []byte(`{
		"chapter1": [{"question":"a","type":"tf","correct":true}],
		"chapter2": [{"question":"b","type":"tf","correct":false},
		             {"question":"c","type":"tf","correct":true}]
	}`)
	raws, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(raws) != 3 {
		t.Fatalf("expected 3 flattened records, got %d", len(raws))
	}
	if raws[0].Text != "a" || raws[1].Text != "b" {
		t.Errorf("flattening should follow key order: %+v", raws)
	}
}

func TestParse_Garbage(t *testing.T) {
	if _, err := Parse([]byte(`"not a quiz"`)); err == nil {
		t.Fatal("expected an error for unrecognized content")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.json")
	content := `[{"question":"2+2?","type":"mcq","options":["3","4"],"correct":1,"points":5}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	qs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(qs) != 1 || qs[0].Points != 5 || qs[0].CorrectIndex != 1 {
		t.Fatalf("unexpected questions: %+v", qs)
	}
}

func TestLoadIndex_Fallback(t *testing.T) {
	entries := LoadIndex(filepath.Join(t.TempDir(), "missing.json"))
	if len(entries) != len(FallbackIndex) {
		t.Fatalf("missing index should return the fallback list")
	}
}

func TestLoadIndex_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz_index.json")
	content := `[{"file":"x.json","title":"X"},{"file":"y.json","title":"Y"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	entries := LoadIndex(path)
	if len(entries) != 2 || entries[1].Title != "Y" {
		t.Fatalf("unexpected index: %+v", entries)
	}
}
