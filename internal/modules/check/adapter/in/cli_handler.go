package in

import (
	"context"

	"jsoncheck/internal/modules/check/dto"
	checkin "jsoncheck/internal/modules/check/port/in"
)

const commandCheck = "check"

type CLIHandler struct {
	usecase checkin.Usecase
}

func NewCLIHandler(usecase checkin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Lint(ctx context.Context, files []string) (dto.CheckOutput, error) {
	return h.usecase.Check(ctx, dto.CheckInput{Command: commandCheck, Files: files})
}
