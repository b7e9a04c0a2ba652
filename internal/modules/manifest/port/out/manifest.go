package out

import (
	"context"

	"jsoncheck/internal/modules/manifest/domain"
)

type ManifestStore interface {
	// Load reads the first manifest file found in dir and returns it along
	// with the path it was read from.
	Load(ctx context.Context, dir string) (domain.Manifest, string, error)
}

type Encoder interface {
	Encode(manifest domain.Manifest, format domain.Format) ([]byte, error)
}
