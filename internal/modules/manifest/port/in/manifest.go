package in

import (
	"context"

	"jsoncheck/internal/modules/manifest/dto"
)

type Usecase interface {
	Render(ctx context.Context, format string) (dto.RenderOutput, error)
	Validate(ctx context.Context, dir string) (dto.ValidateOutput, error)
}
