package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/paypal/payments-sdk-go/config"
	"github.com/paypal/payments-sdk-go/handlers"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.Namespace = "payments-sdk-go"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	chain := alice.New()

	handlers.Register(router, *cfg)

	server := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: chain.Then(router),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting payments-sdk-go demo server", log.Data{"bind_addr": cfg.BindAddr, "environment": cfg.Environment})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error(err)
	}
	log.Trace("Exiting payments-sdk-go demo server")
}
