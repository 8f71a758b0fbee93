package usecase

import (
	"context"
	"slices"

	"github.com/samber/lo"
	"github.com/shandysiswandi/bitekit/internal/pkg/config"
	"github.com/shandysiswandi/bitekit/internal/pkg/hash"
	"github.com/shandysiswandi/bitekit/internal/pkg/instrument"
	"github.com/shandysiswandi/bitekit/internal/pkg/random"
	"github.com/shandysiswandi/bitekit/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

const (
	// AlgorithmMD5 selects the unkeyed MD5 digest.
	AlgorithmMD5 = "md5"
	// AlgorithmHMACSHA256 selects the keyed HMAC-SHA256 digest.
	AlgorithmHMACSHA256 = "hmac-sha256"
	// AlgorithmBLAKE2b256 selects the unkeyed BLAKE2b-256 digest.
	AlgorithmBLAKE2b256 = "blake2b-256"

	// EncodingUTF8 hashes the input text as is.
	EncodingUTF8 = "utf8"
	// EncodingBase64 decodes the input from base64 before hashing.
	EncodingBase64 = "base64"
)

// knownAlgorithms are the names Digest understands; which of them are served
// depends on the configured hashers.
var knownAlgorithms = []string{AlgorithmMD5, AlgorithmHMACSHA256, AlgorithmBLAKE2b256}

const (
	defaultRandomBytes = 16
	defaultMaxBytes    = 1024
)

type Usecase struct {
	cfg       config.Config
	validator validator.Validator
	ins       instrument.Instrumentation
	random    random.HexGenerator
	digests   map[string]hash.Hash
}

type Dependency struct {
	Config     config.Config
	Validator  validator.Validator
	Instrument instrument.Instrumentation
	Random     random.HexGenerator
	MD5        hash.Hash
	BLAKE2b    hash.Hash
	// HMAC is optional; hmac-sha256 digests are refused when it is nil.
	HMAC hash.Hash
}

func New(dep Dependency) *Usecase {
	digests := map[string]hash.Hash{
		AlgorithmMD5:        dep.MD5,
		AlgorithmBLAKE2b256: dep.BLAKE2b,
	}
	if dep.HMAC != nil {
		digests[AlgorithmHMACSHA256] = dep.HMAC
	}

	return &Usecase{
		cfg:       dep.Config,
		validator: dep.Validator,
		ins:       dep.Instrument,
		random:    dep.Random,
		digests:   digests,
	}
}

// Algorithms returns the digest algorithms currently available, sorted.
func (s *Usecase) Algorithms() []string {
	names := lo.Keys(s.digests)
	slices.Sort(names)
	return names
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("toolkit.usecase").Start(ctx, name)
}

func (s *Usecase) intOr(key string, def int) int {
	if v := s.cfg.GetInt(key); v > 0 {
		return v
	}
	return def
}
