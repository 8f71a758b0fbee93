package app

import (
	"github.com/shandysiswandi/bitekit/internal/toolkit"
)

func (a *App) initModules() {
	if !a.config.GetBool("modules.toolkit.enabled") {
		return
	}

	if err := toolkit.New(toolkit.Dependency{
		Router:     a.router,
		Config:     a.config,
		Instrument: a.ins,
		Validator:  a.validator,
		Random:     a.random,
		MD5:        a.digests.md5,
		BLAKE2b:    a.digests.blake2b,
		HMAC:       a.digests.hmac,
	}); err != nil {
		fatal("failed to init module toolkit", "error", err)
	}
}
