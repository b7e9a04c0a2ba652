package in

import (
	"context"

	"jsoncheck/internal/modules/manifest/dto"
	manifestin "jsoncheck/internal/modules/manifest/port/in"
)

type CLIHandler struct {
	usecase manifestin.Usecase
}

func NewCLIHandler(usecase manifestin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Render(ctx context.Context, format string) (dto.RenderOutput, error) {
	return h.usecase.Render(ctx, format)
}

func (h CLIHandler) Validate(ctx context.Context, dir string) (dto.ValidateOutput, error) {
	return h.usecase.Validate(ctx, dir)
}
