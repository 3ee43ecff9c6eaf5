package injector

import (
	"github.com/google/wire"

	"github.com/McGIllicuddy7/psi/internal/app"
	"github.com/McGIllicuddy7/psi/internal/config"
	"github.com/McGIllicuddy7/psi/internal/core/observability/log"
	"github.com/McGIllicuddy7/psi/internal/core/quadrature"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideIntegrator,
	app.New,
)

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.New(cfg.Level())
}

func ProvideIntegrator(logger log.Log, cfg *config.Config) *quadrature.Integrator {
	return quadrature.NewIntegrator(logger, cfg.Workers)
}
