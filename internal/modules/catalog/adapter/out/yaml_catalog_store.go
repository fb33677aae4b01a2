package out

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"timearena/internal/modules/catalog/domain"
	catalogout "timearena/internal/modules/catalog/port/out"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// YAMLCatalogStore reads the catalog file at path, or the embedded default
// catalog when the file does not exist.
type YAMLCatalogStore struct {
	path string
}

func NewYAMLCatalogStore(path string) catalogout.CatalogStore {
	return &YAMLCatalogStore{path: path}
}

func (s *YAMLCatalogStore) Load(_ context.Context) (domain.Catalog, error) {
	raw := defaultCatalog
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		switch {
		case err == nil:
			raw = b
		case !os.IsNotExist(err):
			return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
		}
	}
	return decodeCatalog(raw)
}

func decodeCatalog(raw []byte) (domain.Catalog, error) {
	catalog := domain.Catalog{}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil && !errors.Is(err, io.EOF) {
		return domain.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return catalog, nil
}
