// Package app runs the psi driver: render the density field to an image and
// print the integral over the configured region.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/McGIllicuddy7/psi/internal/config"
	"github.com/McGIllicuddy7/psi/internal/core/density"
	"github.com/McGIllicuddy7/psi/internal/core/observability/log"
	"github.com/McGIllicuddy7/psi/internal/core/quadrature"
	"github.com/McGIllicuddy7/psi/internal/render"
)

type App struct {
	cfg        *config.Config
	logger     log.Log
	integrator *quadrature.Integrator
	out        io.Writer
}

// Report summarizes a finished run.
type Report struct {
	RunID    uuid.UUID
	Integral quadrature.Result
	Image    string
}

func New(cfg *config.Config, logger log.Log, integrator *quadrature.Integrator) *App {
	return &App{
		cfg:        cfg,
		logger:     logger,
		integrator: integrator,
		out:        os.Stdout,
	}
}

// SetOutput redirects where the integral is printed.
func (a *App) SetOutput(w io.Writer) { a.out = w }

func (a *App) Run(ctx context.Context) (Report, error) {
	report := Report{RunID: uuid.New(), Image: a.cfg.Image.Output}
	logger := a.logger.With(log.String("run_id", report.RunID.String()))

	field := density.NewFieldState(a.cfg.Field.Location.Vector(), a.cfg.Field.Velocity.Vector())

	format, err := render.ParseFormat(a.cfg.Image.Format, a.cfg.Image.Output)
	if err != nil {
		return report, err
	}

	start := time.Now()
	grid, err := render.SampleGrid(ctx, field.DensityFunction(), a.cfg.Image.Width, a.cfg.Image.Height, a.cfg.Image.Scale)
	if err != nil {
		return report, fmt.Errorf("sample grid: %w", err)
	}
	if err = render.Export(a.cfg.Image.Output, grid, format); err != nil {
		return report, err
	}
	logger.Info("image exported",
		log.String("path", a.cfg.Image.Output),
		log.String("format", string(format)),
		log.Int("width", grid.Width),
		log.Int("height", grid.Height),
		log.Duration("duration", time.Since(start)),
	)

	report.Integral, err = a.integrator.IntegrateField(ctx, field, a.cfg.Integrate.Region.Physics(), a.cfg.Integrate.Resolution)
	if err != nil {
		return report, fmt.Errorf("integrate: %w", err)
	}
	logger.Info("region integrated",
		log.Float64("value", report.Integral.Value),
		log.Int("cells_x", report.Integral.CountX),
		log.Int("cells_y", report.Integral.CountY),
		log.Duration("duration", report.Integral.Duration),
	)

	if _, err = fmt.Fprintln(a.out, report.Integral.Value); err != nil {
		return report, err
	}
	return report, nil
}
