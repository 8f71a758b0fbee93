// Package app assembles the bitekit service from configuration and runs its
// HTTP server until a termination signal arrives.
package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/bitekit/internal/pkg/config"
	"github.com/shandysiswandi/bitekit/internal/pkg/hash"
	"github.com/shandysiswandi/bitekit/internal/pkg/instrument"
	"github.com/shandysiswandi/bitekit/internal/pkg/random"
	"github.com/shandysiswandi/bitekit/internal/pkg/router"
	"github.com/shandysiswandi/bitekit/internal/pkg/uid"
	"github.com/shandysiswandi/bitekit/internal/pkg/validator"
)

// closer releases one resource during Stop.
type closer struct {
	name string
	fn   func(context.Context) error
}

// App owns every long-lived dependency of the service.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	config config.Config
	ins    instrument.Instrumentation

	validator validator.Validator
	uuid      uid.StringID
	random    random.HexGenerator
	digests   digesters

	router     *router.Router
	httpServer *http.Server

	closers []closer
}

// digesters groups the hash implementations handed to the toolkit module.
// hmac stays nil unless a secret is configured.
type digesters struct {
	md5     hash.Hash
	blake2b hash.Hash
	hmac    hash.Hash
}

// New builds the application. Any wiring failure is logged and exits the
// process.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{ctx: ctx, cancel: cancel}

	for _, step := range []func(){
		a.initConfig,
		a.initInstrument,
		a.initLibraries,
		a.initHTTPServer,
		a.initModules,
		a.initClosers,
	} {
		step()
	}

	return a
}
