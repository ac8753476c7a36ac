// Package data ships the packaged language models. Each supported language
// carries one JSON payload per n-gram order under models/<iso639-1>/, with a
// manifest.yaml describing the coverage. The payloads are embedded into the
// binary, so the default detector works without any filesystem setup.
package data

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/MeKo-Tech/lingo/internal/model"
	"github.com/MeKo-Tech/lingo/lang"
)

//go:embed models
var modelsFS embed.FS

// Loader serves the packaged model payloads.
type Loader struct {
	manifest *model.Manifest
}

var embedded = sync.OnceValues(func() (*Loader, error) {
	raw, err := modelsFS.ReadFile(path.Join("models", model.ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("data: read packaged manifest: %w", err)
	}
	manifest, err := model.ParseManifest(raw)
	if err != nil {
		return nil, fmt.Errorf("data: packaged manifest: %w", err)
	}
	return &Loader{manifest: manifest}, nil
})

// Embedded returns the loader over the packaged models. The manifest is
// parsed once per process.
func Embedded() (*Loader, error) {
	return embedded()
}

// Manifest returns the packaged model manifest.
func (l *Loader) Manifest() *model.Manifest { return l.manifest }

// Load returns the packaged payload for a (language, order) pair.
func (l *Loader) Load(language lang.Language, order int) ([]byte, error) {
	if !l.manifest.Covers(language, order) {
		return nil, fmt.Errorf("data: no packaged model for %s order %d", language, order)
	}
	name := path.Join("models", language.IsoCode639_1(), model.OrderFileName(order))
	payload, err := modelsFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("data: read %s: %w", name, err)
	}
	return payload, nil
}
