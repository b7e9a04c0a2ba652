package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"jsoncheck/internal/modules/manifest/domain"
	manifestout "jsoncheck/internal/modules/manifest/port/out"
)

type FileManifestStore struct{}

func NewFileManifestStore() *FileManifestStore {
	return &FileManifestStore{}
}

var (
	_ manifestout.ManifestStore = (*FileManifestStore)(nil)
	_ manifestout.Encoder       = (*FileManifestStore)(nil)
)

func (s *FileManifestStore) Load(_ context.Context, dir string) (domain.Manifest, string, error) {
	for _, name := range domain.FileNames {
		path := filepath.Join(dir, name)
		b, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return domain.Manifest{}, "", fmt.Errorf("read %s: %w", name, err)
		}
		manifest, err := decode(b, filepath.Ext(name))
		if err != nil {
			return domain.Manifest{}, "", fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return manifest, path, nil
	}
	return domain.Manifest{}, "", fmt.Errorf("%w in %s", domain.ErrManifestNotFound, dir)
}

func decode(b []byte, ext string) (domain.Manifest, error) {
	var manifest domain.Manifest
	if ext == ".json" {
		decoder := json.NewDecoder(bytes.NewReader(b))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&manifest); err != nil {
			return domain.Manifest{}, err
		}
		return manifest, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil {
		return domain.Manifest{}, err
	}
	return manifest, nil
}

func (s *FileManifestStore) Encode(manifest domain.Manifest, format domain.Format) ([]byte, error) {
	switch format {
	case domain.FormatJSON:
		raw, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(raw, '\n'), nil
	case domain.FormatYAML:
		buf := bytes.Buffer{}
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(manifest); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown manifest format: %s", format)
	}
}
