package in

import (
	"context"

	"jsoncheck/internal/modules/check/dto"
)

type Usecase interface {
	Check(ctx context.Context, input dto.CheckInput) (dto.CheckOutput, error)
}
