package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"goflare.io/lookup/handlers"
)

type Server struct {
	echo   *echo.Echo
	Charge handlers.ChargeHandler
}

func NewServer(
	Charge handlers.ChargeHandler,
) *Server {
	s := &Server{
		echo:   echo.New(),
		Charge: Charge,
	}
	s.echo.HideBanner = true
	s.registerMiddlewares()
	s.registerRoutes()
	return s
}

// Start begins listening on address and blocks until the server stops.
func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// Run starts the server in the background and blocks until SIGINT or SIGTERM,
// then shuts down, giving in-flight lookups five seconds to finish.
func (s *Server) Run(address string) error {

	go func() {
		if err := s.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.echo.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}

// ServeHTTP exposes the router directly, mainly for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) registerMiddlewares() {
	s.echo.Use(middleware.Recover())
}

func (s *Server) registerRoutes() {
	s.echo.GET("/charges/:id", s.Charge.GetCharge)
}
