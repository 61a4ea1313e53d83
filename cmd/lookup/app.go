package main

import (
	"go.uber.org/zap"

	"goflare.io/lookup"
	"goflare.io/lookup/config"
	"goflare.io/lookup/server"
)

type App struct {
	Config *config.Config
	Logger *zap.Logger
	Lookup lookup.Lookup
	Server *server.Server
}
