package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/rs/cors"
	"github.com/shandysiswandi/bitekit/internal/pkg/config"
	"github.com/shandysiswandi/bitekit/internal/pkg/hash"
	"github.com/shandysiswandi/bitekit/internal/pkg/instrument"
	"github.com/shandysiswandi/bitekit/internal/pkg/random"
	"github.com/shandysiswandi/bitekit/internal/pkg/router"
	"github.com/shandysiswandi/bitekit/internal/pkg/uid"
	"github.com/shandysiswandi/bitekit/internal/pkg/validator"
)

// configPath resolves CONFIG_PATH, falling back to the container path or to
// the repository copy when LOCAL=true.
func configPath() string {
	if p := strings.TrimSpace(os.Getenv("CONFIG_PATH")); p != "" {
		return p
	}
	if os.Getenv("LOCAL") == "true" {
		return "./config/config.yaml"
	}
	return "/config/config.yaml"
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

func (a *App) initConfig() {
	path := configPath()

	cfg, err := config.NewViper(path)
	if err != nil {
		fatal("failed to load config", "path", path, "error", err)
	}

	if tz := cfg.GetString("app.tz"); tz != "" {
		//nolint:errcheck,gosec // a bad TZ only affects log timestamps
		os.Setenv("TZ", tz)
	}

	a.config = cfg
}

func (a *App) instrumentConfig() *instrument.Config {
	key := func(k string) string { return "instrument." + k }

	return &instrument.Config{
		Enabled:          a.config.GetBool(key("enabled")),
		ServiceName:      a.config.GetString(key("service_name")),
		ServiceVersion:   a.config.GetString(key("service_version")),
		Environment:      a.config.GetString(key("env")),
		OTLPEndpoint:     a.config.GetString(key("otlp_endpoint")),
		OTLPSecure:       a.config.GetBool(key("otlp_secure")),
		TraceSampleRatio: a.config.GetFloat64(key("trace_sample_ratio")),
		MetricsInterval:  a.config.GetSecond(key("metric_interval_seconds")),
		MaskFields:       a.config.GetArray(key("log_mask_fields")),
	}
}

func (a *App) initInstrument() {
	ins, err := instrument.New(a.ctx, a.instrumentConfig())
	if err != nil {
		fatal("failed to init instrumentation", "error", err)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	v, err := validator.NewV10Validator()
	if err != nil {
		fatal("failed to init validator", "error", err)
	}

	a.validator = v
	a.uuid = uid.NewUUID()
	a.random = random.New()
	a.digests = digesters{
		md5:     hash.NewMD5(),
		blake2b: hash.NewBLAKE2b256(),
	}

	if secret := strings.TrimSpace(a.config.GetString("hash.hmac.secret")); secret != "" {
		a.digests.hmac = hash.NewHMACSHA256(secret)
	} else {
		slog.Warn("hash.hmac.secret is empty, hmac-sha256 digests are disabled")
	}
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins:   a.config.GetArray("app.server.cors"),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(a.router)

	key := func(k string) string { return "app.server.http." + k }
	a.httpServer = &http.Server{
		Addr:              a.config.GetString(key("address")),
		Handler:           handler,
		ReadTimeout:       a.config.GetSecond(key("read_timeout_seconds")),
		ReadHeaderTimeout: a.config.GetSecond(key("read_header_timeout_seconds")),
		WriteTimeout:      a.config.GetSecond(key("write_timeout_seconds")),
		IdleTimeout:       a.config.GetSecond(key("idle_timeout_seconds")),
	}
}

// initClosers registers resources in release order: telemetry is flushed
// before the config watcher goes away.
func (a *App) initClosers() {
	a.closers = append(a.closers,
		closer{name: "Instrument", fn: a.ins.Shutdown},
		closer{name: "Config", fn: func(context.Context) error { return a.config.Close() }},
	)
}
