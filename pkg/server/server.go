/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"context"
	"flag"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/checkout/pkg/config"
	serverrors "github.com/unikorn-cloud/checkout/pkg/server/errors"
	"github.com/unikorn-cloud/checkout/pkg/server/handler"
	"github.com/unikorn-cloud/checkout/pkg/server/metrics"
	"github.com/unikorn-cloud/checkout/pkg/server/store"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Options are HTTP server options.
type Options struct {
	// ListenAddress is the address the server binds to.
	ListenAddress string

	// ReadTimeout bounds reading a whole request.
	ReadTimeout time.Duration

	// ReadHeaderTimeout bounds reading request headers.
	ReadHeaderTimeout time.Duration

	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds draining in flight requests.
	ShutdownTimeout time.Duration

	// PropertiesFile defines the paths operations are served on.
	PropertiesFile string

	// ExpiredPoints seeds the loyalty account with expired points.
	ExpiredPoints int64
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "server-listen-address", ":3000", "API listener address.")
	f.DurationVar(&o.ReadTimeout, "server-read-timeout", time.Second, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.ReadHeaderTimeout, "server-read-header-timeout", time.Second, "How long to wait for the client to send headers.")
	f.DurationVar(&o.WriteTimeout, "server-write-timeout", 10*time.Second, "How long to wait for the API to respond to the client.")
	f.DurationVar(&o.ShutdownTimeout, "server-shutdown-timeout", 5*time.Second, "How long to wait for in flight requests on shutdown.")
	f.StringVar(&o.PropertiesFile, "properties-file", config.DefaultPropertiesFile, "Properties file defining endpoint paths.")
	f.Int64Var(&o.ExpiredPoints, "expired-points", 0, "Expired loyalty points seeded into the account.")
}

// Server is the mock checkout service.
type Server struct {
	// Options are server specific options.
	Options Options

	// HandlerOptions sets options for the HTTP handler.
	HandlerOptions handler.Options

	// ZapOptions configure logging.
	ZapOptions zap.Options
}

func (s *Server) AddFlags(goflags *flag.FlagSet, flags *pflag.FlagSet) {
	s.ZapOptions.BindFlags(goflags)

	s.Options.AddFlags(flags)
	s.HandlerOptions.AddFlags(flags)
}

func (s *Server) SetupLogging() {
	log.SetLogger(zap.New(zap.UseFlagOptions(&s.ZapOptions)))
}

// requestLogger scopes the context logger to the request.
func requestLogger(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			requestLogger := logger.WithValues("requestID", middleware.GetReqID(ctx), "method", r.Method, "path", r.URL.Path)

			next.ServeHTTP(w, r.WithContext(log.IntoContext(ctx, requestLogger)))
		})
	}
}

// recoverer turns panics into internal server error envelopes.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:errorlint
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				log.FromContext(r.Context()).Info("recovered from panic", "panic", rvr)

				serverrors.HandleError(w, r, serverrors.HTTPInternalServerError())
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// NewRouter builds the complete HTTP handler.  The store is owned by the
// caller, who may reset it between uses.
func NewRouter(ctx context.Context, store *store.Memory, options *handler.Options, endpoints config.Endpoints, metrics *metrics.Metrics) (http.Handler, error) {
	handler, err := handler.New(store, options, endpoints)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestLogger(log.FromContext(ctx)))
	router.Use(metrics.Middleware)
	router.Use(recoverer)
	router.NotFound(handler.NotFound)
	router.MethodNotAllowed(handler.NotFound)

	router.Handle("/metrics", metrics.Handler())

	handler.Routes(router)

	return router, nil
}

// GetServer returns a configured HTTP server backed by a freshly seeded store.
func (s *Server) GetServer(ctx context.Context) (*http.Server, error) {
	config, err := config.Load(ctx, config.WithPropertiesFile(s.Options.PropertiesFile))
	if err != nil {
		return nil, err
	}

	router, err := NewRouter(ctx, store.New(store.WithExpiredPoints(s.Options.ExpiredPoints)), &s.HandlerOptions, config.Endpoints, metrics.New())
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              s.Options.ListenAddress,
		ReadTimeout:       s.Options.ReadTimeout,
		ReadHeaderTimeout: s.Options.ReadHeaderTimeout,
		WriteTimeout:      s.Options.WriteTimeout,
		Handler:           router,
	}

	return server, nil
}

// Run serves until the context is cancelled, then drains in flight requests.
func (s *Server) Run(ctx context.Context) error {
	log := log.FromContext(ctx)

	server, err := s.GetServer(ctx)
	if err != nil {
		return err
	}

	errs := make(chan error, 1)

	go func() {
		log.Info("server listening", "address", server.Addr)

		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Options.ShutdownTimeout)
	defer cancel()

	log.Info("server shutting down")

	//nolint:contextcheck
	return server.Shutdown(shutdownCtx)
}
