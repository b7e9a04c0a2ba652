package usecase

import (
	"context"

	"jsoncheck/internal/modules/manifest/dto"
	manifestin "jsoncheck/internal/modules/manifest/port/in"
	"jsoncheck/internal/modules/manifest/service"
)

type Interactor struct {
	svc *service.ManifestService
}

func NewInteractor(svc *service.ManifestService) manifestin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Render(ctx context.Context, format string) (dto.RenderOutput, error) {
	return i.svc.Render(ctx, format)
}

func (i *Interactor) Validate(ctx context.Context, dir string) (dto.ValidateOutput, error) {
	return i.svc.Validate(ctx, dir)
}
