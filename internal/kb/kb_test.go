package kb

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizdeck/internal/llm"
)

func writeUpload(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write upload: %v", err)
	}
	return path
}

func openTestKB(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open kb: %v", err)
	}
	return s
}

func TestAddListContent(t *testing.T) {
	s := openTestKB(t)

	entry, err := s.Add(writeUpload(t, "notes.txt", "Plants make food from light."))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if entry.OriginalName != "notes.txt" {
		t.Errorf("original name = %q", entry.OriginalName)
	}
	if !strings.HasSuffix(entry.HashName, "-knowledge.json") {
		t.Errorf("hash name = %q", entry.HashName)
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list = %d entries, want 1", len(list))
	}

	content, err := s.Content([]string{entry.HashName})
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if content != "Plants make food from light." {
		t.Errorf("content = %q", content)
	}
}

func TestAddDeduplicatesByHash(t *testing.T) {
	s := openTestKB(t)

	e1, err := s.Add(writeUpload(t, "a.txt", "same bytes"))
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	e2, err := s.Add(writeUpload(t, "b.txt", "same bytes"))
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	if e1.HashName != e2.HashName {
		t.Errorf("same content produced different hashes")
	}
	// Index keeps the original entry only.
	list, _ := s.List()
	if len(list) != 1 {
		t.Errorf("index entries = %d, want 1", len(list))
	}
	if list[0].OriginalName != "a.txt" {
		t.Errorf("kept entry = %q, want the first upload", list[0].OriginalName)
	}
}

func TestAddJSONWithContentWrapper(t *testing.T) {
	s := openTestKB(t)

	entry, err := s.Add(writeUpload(t, "doc.json", `{"content": "wrapped text"}`))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	content, err := s.Content([]string{entry.HashName})
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if content != "wrapped text" {
		t.Errorf("content = %q, want the unwrapped text", content)
	}
}

func TestAddRejectsUnknownExtension(t *testing.T) {
	s := openTestKB(t)
	if _, err := s.Add(writeUpload(t, "img.png", "binary")); err != ErrUnsupportedType {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := openTestKB(t)

	entry, err := s.Add(writeUpload(t, "notes.txt", "to be removed"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Delete(entry.HashName); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, _ := s.List()
	if len(list) != 0 {
		t.Errorf("index entries after delete = %d", len(list))
	}
	content, err := s.Content([]string{entry.HashName})
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if content != "" {
		t.Errorf("deleted document still readable: %q", content)
	}

	if err := s.Delete("../escape"); err == nil {
		t.Error("a name without a hash prefix must be rejected")
	}
}

func TestContentSkipsUnknownNames(t *testing.T) {
	s := openTestKB(t)
	e, _ := s.Add(writeUpload(t, "a.txt", "kept"))

	content, err := s.Content([]string{"nonsense", strings.Repeat("f", 64) + "-knowledge.json", e.HashName})
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if content != "kept" {
		t.Errorf("content = %q", content)
	}
}

func TestSplitChunks(t *testing.T) {
	if got := SplitChunks("", 100, 10); got != nil {
		t.Errorf("empty input should produce no chunks, got %v", got)
	}

	short := "one small paragraph"
	if got := SplitChunks(short, 100, 10); len(got) != 1 || got[0] != short {
		t.Errorf("short input should be a single chunk, got %v", got)
	}

	long := strings.Repeat("word ", 200) // ~1000 runes
	chunks := SplitChunks(long, 300, 50)
	if len(chunks) < 3 {
		t.Fatalf("long input chunks = %d, want several", len(chunks))
	}
	for i, c := range chunks {
		if len([]rune(c)) > 300 {
			t.Errorf("chunk %d exceeds size: %d runes", i, len([]rune(c)))
		}
	}
}

func TestSearchIndexTopK(t *testing.T) {
	ctx := context.Background()
	emb := llm.NewMockEmbedder()

	content := "Dogs are loyal pets.\n\nThe moon orbits the earth.\n\nBread is baked from flour."
	idx, err := BuildIndex(ctx, emb, content)
	if err != nil {
		t.Fatalf("build index: %v", err)
	}
	if idx.Len() == 0 {
		t.Fatal("index is empty")
	}

	// The mock embedder is deterministic: the best match for a chunk's own
	// text is that chunk.
	top, err := idx.TopK(ctx, "The moon orbits the earth.", 1)
	if err != nil {
		t.Fatalf("topk: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("topk = %d results, want 1", len(top))
	}
	if !strings.Contains(top[0], "moon") {
		t.Errorf("best chunk = %q, want the moon chunk", top[0])
	}

	// k larger than the index clamps.
	all, err := idx.TopK(ctx, "anything", 100)
	if err != nil {
		t.Fatalf("topk all: %v", err)
	}
	if len(all) != idx.Len() {
		t.Errorf("clamped topk = %d, want %d", len(all), idx.Len())
	}
}
