package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"goflare.io/lookup"
	"goflare.io/lookup/display"
)

func main() {

	serve := pflag.Bool("serve", false, "serve lookups over HTTP instead of printing a single result")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [--serve] <transaction id>\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	app, err := InitializeApp()
	if err != nil {
		log.Fatal(err)
		return
	}

	if *serve {
		app.Logger.Info("serving charge lookups", zap.String("addr", app.Config.Server.Addr))
		if err = app.Server.Run(app.Config.Server.Addr); err != nil {
			app.Logger.Error("server stopped", zap.Error(err))
			_ = app.Logger.Sync()
			os.Exit(1)
		}
		_ = app.Logger.Sync()
		return
	}

	transactionID := strings.Join(pflag.Args(), " ")
	if err = run(context.Background(), app.Lookup, transactionID, os.Stdout); err != nil {
		app.Logger.Error("charge lookup failed", zap.String("transaction_id", transactionID), zap.Error(err))
		_ = app.Logger.Sync()
		os.Exit(1)
	}
	_ = app.Logger.Sync()
}

// run looks up a single transaction and writes the launcher document to w.
// Nothing is written when the lookup fails.
func run(ctx context.Context, l lookup.Lookup, transactionID string, w io.Writer) error {
	items, err := l.Find(ctx, transactionID)
	if err != nil {
		return err
	}
	return display.Write(w, items)
}
