//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/McGIllicuddy7/psi/internal/app"
	"github.com/McGIllicuddy7/psi/internal/config"
)

func InitializeApp(cfg *config.Config) *app.App {
	wire.Build(ProviderSet)
	return nil
}
