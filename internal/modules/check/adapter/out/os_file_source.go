package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	checkout "jsoncheck/internal/modules/check/port/out"
	apperrors "jsoncheck/internal/platform/errors"
)

type OSFileSource struct{}

func NewOSFileSource() checkout.FileSource {
	return OSFileSource{}
}

func (OSFileSource) Read(_ context.Context, path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, path)
		}
		return nil, err
	}
	return b, nil
}
