package model

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/MeKo-Tech/lingo/internal/ngram"
	"github.com/MeKo-Tech/lingo/lang"
)

// Loader supplies the serialized model payload for a (language, order) pair.
// Implementations must be safe for concurrent use. The packaged default lives
// in the data package; NewFSLoader reads a models directory; MemoryLoader
// serves tests.
type Loader interface {
	Load(language lang.Language, order int) ([]byte, error)
}

// orderFileNames maps n-gram orders to their payload file names.
var orderFileNames = [...]string{
	1: "unigrams.json",
	2: "bigrams.json",
	3: "trigrams.json",
	4: "quadrigrams.json",
	5: "fivegrams.json",
}

// OrderFileName returns the payload file name for an n-gram order.
func OrderFileName(order int) string {
	if order < ngram.MinOrder || order > ngram.MaxOrder {
		return ""
	}
	return orderFileNames[order]
}

// ManifestFileName is the name of the model directory manifest.
const ManifestFileName = "manifest.yaml"

// Manifest describes a versioned model directory: which languages it covers
// (as ISO 639-1 codes) and which n-gram orders each language ships.
type Manifest struct {
	Version   int      `yaml:"version"`
	Orders    []int    `yaml:"orders"`
	Languages []string `yaml:"languages"`
}

// Validate checks the manifest for unknown languages and bad orders.
func (m *Manifest) Validate() error {
	if len(m.Languages) == 0 {
		return fmt.Errorf("model: manifest lists no languages")
	}
	for _, code := range m.Languages {
		if _, ok := lang.FromIsoCode639_1(code); !ok {
			return fmt.Errorf("model: manifest lists unknown language %q", code)
		}
	}
	for _, order := range m.Orders {
		if order < ngram.MinOrder || order > ngram.MaxOrder {
			return fmt.Errorf("model: manifest lists unsupported order %d", order)
		}
	}
	return nil
}

// Covers reports whether the manifest provides the given (language, order).
func (m *Manifest) Covers(language lang.Language, order int) bool {
	covered := false
	for _, code := range m.Languages {
		if code == language.IsoCode639_1() {
			covered = true
			break
		}
	}
	if !covered {
		return false
	}
	for _, o := range m.Orders {
		if o == order {
			return true
		}
	}
	return false
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("model: invalid manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// FSLoader reads model payloads from a directory laid out as
// <dir>/<iso639-1>/<order>.json with a manifest.yaml at the root.
type FSLoader struct {
	dir      string
	manifest *Manifest
}

// NewFSLoader opens a model directory and validates its manifest.
func NewFSLoader(dir string) (*FSLoader, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("model: read manifest: %w", err)
	}
	manifest, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	return &FSLoader{dir: dir, manifest: manifest}, nil
}

// Manifest returns the validated directory manifest.
func (f *FSLoader) Manifest() *Manifest { return f.manifest }

// Load reads the payload for a (language, order) pair.
func (f *FSLoader) Load(language lang.Language, order int) ([]byte, error) {
	if !f.manifest.Covers(language, order) {
		return nil, fmt.Errorf("model: no packaged model for %s order %d", language, order)
	}
	path := filepath.Join(f.dir, language.IsoCode639_1(), OrderFileName(order))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: read %s: %w", path, err)
	}
	return data, nil
}

// MemoryLoader serves payloads from memory. Primarily for tests.
type MemoryLoader struct {
	mu       sync.RWMutex
	payloads map[string][]byte
}

// NewMemoryLoader returns an empty in-memory loader.
func NewMemoryLoader() *MemoryLoader {
	return &MemoryLoader{payloads: make(map[string][]byte)}
}

// Add registers a payload for a (language, order) pair.
func (m *MemoryLoader) Add(language lang.Language, order int, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads[memoryKey(language, order)] = data
}

// AddTrained trains a model from normalized corpus text and registers its
// serialized payload.
func (m *MemoryLoader) AddTrained(language lang.Language, order int, normalized string) error {
	trained, err := Train(language, order, normalized)
	if err != nil {
		return err
	}
	data, err := trained.MarshalJSON()
	if err != nil {
		return err
	}
	m.Add(language, order, data)
	return nil
}

// Load returns the payload for a (language, order) pair.
func (m *MemoryLoader) Load(language lang.Language, order int) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.payloads[memoryKey(language, order)]
	if !ok {
		return nil, fmt.Errorf("model: no payload for %s order %d", language, order)
	}
	return data, nil
}

func memoryKey(language lang.Language, order int) string {
	return fmt.Sprintf("%s/%d", language.IsoCode639_1(), order)
}
