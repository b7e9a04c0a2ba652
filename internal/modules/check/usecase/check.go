package usecase

import (
	"context"

	"jsoncheck/internal/modules/check/dto"
	checkin "jsoncheck/internal/modules/check/port/in"
	"jsoncheck/internal/modules/check/service"
)

type Interactor struct {
	svc *service.CheckService
}

func NewInteractor(svc *service.CheckService) checkin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Check(ctx context.Context, input dto.CheckInput) (dto.CheckOutput, error) {
	return i.svc.Check(ctx, input)
}
