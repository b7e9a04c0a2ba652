package out

import "context"

// FileSource reads candidate files. A missing file must be reported with an
// error wrapping apperrors.ErrNotFound.
type FileSource interface {
	Read(ctx context.Context, path string) ([]byte, error)
}
