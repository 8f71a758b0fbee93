package toolkit

import (
	"github.com/shandysiswandi/bitekit/internal/pkg/config"
	"github.com/shandysiswandi/bitekit/internal/pkg/hash"
	"github.com/shandysiswandi/bitekit/internal/pkg/instrument"
	"github.com/shandysiswandi/bitekit/internal/pkg/random"
	"github.com/shandysiswandi/bitekit/internal/pkg/router"
	"github.com/shandysiswandi/bitekit/internal/pkg/validator"
	"github.com/shandysiswandi/bitekit/internal/toolkit/inbound"
	"github.com/shandysiswandi/bitekit/internal/toolkit/usecase"
)

type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Random     random.HexGenerator        `validate:"required"`
	MD5        hash.Hash                  `validate:"required"`
	BLAKE2b    hash.Hash                  `validate:"required"`
	HMAC       hash.Hash
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		Config:     dep.Config,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
		Random:     dep.Random,
		MD5:        dep.MD5,
		BLAKE2b:    dep.BLAKE2b,
		HMAC:       dep.HMAC,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
