// Package kb manages the knowledge base: uploaded documents stored as
// hash-named extracts with a JSON index, plus chunked embedding search
// over their content.
package kb

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

const indexFile = "kb_index.json"

// ErrUnsupportedType means the file extension is not in the allowlist.
var ErrUnsupportedType = errors.New("unsupported file type (allowed: txt, md, json)")

var hashRe = regexp.MustCompile(`^[a-f0-9]{64}`)

// Entry is one knowledge base document in the index.
type Entry struct {
	HashName     string `json:"hash_name"`
	OriginalName string `json:"original_name"`
	UploadDate   string `json:"upload_date"`
}

// document is the stored extract for one upload.
type document struct {
	Content string `json:"content"`
}

// Store is a directory-backed knowledge base.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating it if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create kb dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir resolves the knowledge base directory in priority order:
// 1. QUIZDECK_KB_DIR environment variable
// 2. $XDG_DATA_HOME/quizdeck/kb
// 3. ~/.local/share/quizdeck/kb
func DefaultDir() (string, error) {
	if d := os.Getenv("QUIZDECK_KB_DIR"); d != "" {
		return d, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "quizdeck", "kb"), nil
}

// Add ingests a file: extracts its text, stores it under its content hash,
// and records it in the index. Adding the same content twice is a no-op
// returning the existing entry.
func (s *Store) Add(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("read upload: %w", err)
	}

	content, err := extract(filepath.Ext(path), data)
	if err != nil {
		return Entry{}, err
	}

	sum := sha256.Sum256(data)
	hashName := hex.EncodeToString(sum[:]) + "-knowledge.json"

	index, err := s.readIndex()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range index {
		if e.HashName == hashName {
			return e, nil
		}
	}

	doc, err := json.MarshalIndent(document{Content: content}, "", "  ")
	if err != nil {
		return Entry{}, fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, hashName), doc, 0o644); err != nil {
		return Entry{}, fmt.Errorf("write document: %w", err)
	}

	entry := Entry{
		HashName:     hashName,
		OriginalName: filepath.Base(path),
		UploadDate:   time.Now().UTC().Format(time.RFC3339),
	}
	index = append(index, entry)
	if err := s.writeIndex(index); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// List returns the indexed documents, newest first.
func (s *Store) List() ([]Entry, error) {
	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	sort.Slice(index, func(i, j int) bool {
		return index[i].UploadDate > index[j].UploadDate
	})
	return index, nil
}

// Delete removes a document and its index entry. The name is reduced to
// its leading hash so mangled input can't escape the kb directory.
func (s *Store) Delete(name string) error {
	m := hashRe.FindString(name)
	if m == "" {
		return fmt.Errorf("invalid knowledge base name: %q", name)
	}
	hashName := m + "-knowledge.json"

	if err := os.Remove(filepath.Join(s.dir, hashName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete document: %w", err)
	}

	index, err := s.readIndex()
	if err != nil {
		return err
	}
	kept := index[:0]
	for _, e := range index {
		if e.HashName != hashName {
			kept = append(kept, e)
		}
	}
	return s.writeIndex(kept)
}

// Content returns the concatenated text of the named documents. Names that
// don't resolve to a stored document are skipped.
func (s *Store) Content(names []string) (string, error) {
	var parts []string
	for _, name := range names {
		m := hashRe.FindString(name)
		if m == "" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, m+"-knowledge.json"))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("read document: %w", err)
		}
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			continue
		}
		if doc.Content != "" {
			parts = append(parts, doc.Content)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// extract pulls plain text out of an upload by extension. JSON uploads may
// either carry a {"content": ...} wrapper or be stored whole.
func extract(ext string, data []byte) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "txt", "md":
		return string(data), nil
	case "json":
		var doc document
		if err := json.Unmarshal(data, &doc); err == nil && doc.Content != "" {
			return doc.Content, nil
		}
		if !json.Valid(data) {
			return "", nil
		}
		return string(data), nil
	default:
		return "", ErrUnsupportedType
	}
}

func (s *Store) readIndex() ([]Entry, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, indexFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read kb index: %w", err)
	}
	var index []Entry
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("parse kb index: %w", err)
	}
	return index, nil
}

func (s *Store) writeIndex(index []Entry) error {
	if index == nil {
		index = []Entry{}
	}
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal kb index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, indexFile), data, 0o644); err != nil {
		return fmt.Errorf("write kb index: %w", err)
	}
	return nil
}
