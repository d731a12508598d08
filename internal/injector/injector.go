//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/physunits/internal/app"
	"github.com/zeusync/physunits/internal/config"
)

func InitializeApp() (*app.App, error) {
	wire.Build(config.Load, config.NewLogger, app.New)
	return nil, nil
}
