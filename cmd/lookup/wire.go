//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"goflare.io/lookup"
	"goflare.io/lookup/charge"
	"goflare.io/lookup/config"
	"goflare.io/lookup/display"
	"goflare.io/lookup/handlers"
	"goflare.io/lookup/server"
)

func InitializeApp() (*App, error) {

	wire.Build(
		config.ProvideApplicationConfig,
		config.NewLogger,
		config.ProvideStripeConfig,
		display.ProvideOptions,
		charge.NewStripeRetrieverFactory,
		charge.NewService,
		display.NewFormatter,
		lookup.NewStripeLookup,
		handlers.NewChargeHandler,
		server.NewServer,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil
}
