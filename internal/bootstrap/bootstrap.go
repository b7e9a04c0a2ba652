package bootstrap

import (
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	checkinadapter "jsoncheck/internal/modules/check/adapter/in"
	checkoutadapter "jsoncheck/internal/modules/check/adapter/out"
	checkdomain "jsoncheck/internal/modules/check/domain"
	checkservice "jsoncheck/internal/modules/check/service"
	checkusecase "jsoncheck/internal/modules/check/usecase"
	manifestinadapter "jsoncheck/internal/modules/manifest/adapter/in"
	manifestoutadapter "jsoncheck/internal/modules/manifest/adapter/out"
	manifestdomain "jsoncheck/internal/modules/manifest/domain"
	manifestservice "jsoncheck/internal/modules/manifest/service"
	manifestusecase "jsoncheck/internal/modules/manifest/usecase"
	"jsoncheck/internal/platform/config"
	"jsoncheck/internal/platform/version"
)

type App struct {
	CheckProtocol checkinadapter.ProtocolHandler
	CheckCLI      checkinadapter.CLIHandler
	ManifestCLI   manifestinadapter.CLIHandler
}

func New(cfg config.Config, logger hclog.Logger) (*App, error) {
	opts := checkdomain.FormatOptions{IndentSize: cfg.IndentSize, SortKeys: cfg.SortKeys}
	checkSvc, err := checkservice.NewCheckService(checkoutadapter.NewOSFileSource(), opts, logger)
	if err != nil {
		return nil, fmt.Errorf("new check service: %w", err)
	}
	checkUC := checkusecase.NewInteractor(checkSvc)

	manifestStore := manifestoutadapter.NewFileManifestStore()
	manifestUC := manifestusecase.NewInteractor(manifestservice.NewManifestService(
		manifestStore,
		manifestStore,
		manifestdomain.Default(version.Version, cfg.IndentSize, cfg.SortKeys),
	))

	return &App{
		CheckProtocol: checkinadapter.NewProtocolHandler(checkUC, logger),
		CheckCLI:      checkinadapter.NewCLIHandler(checkUC),
		ManifestCLI:   manifestinadapter.NewCLIHandler(manifestUC),
	}, nil
}
