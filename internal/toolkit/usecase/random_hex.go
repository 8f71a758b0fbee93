package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/bitekit/internal/pkg/goerror"
	"github.com/shandysiswandi/bitekit/internal/pkg/random"
)

type RandomHexInput struct {
	// Bytes is the number of random bytes; nil uses the configured default.
	Bytes *int `validate:"omitnil,gte=0"`
}

type RandomHexOutput struct {
	Value string
	Bytes int
}

func (s *Usecase) RandomHex(ctx context.Context, in RandomHexInput) (*RandomHexOutput, error) {
	ctx, span := s.startSpan(ctx, "RandomHex")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	n := s.intOr("modules.toolkit.random.default_bytes", defaultRandomBytes)
	if in.Bytes != nil {
		n = *in.Bytes
	}

	if limit := s.intOr("modules.toolkit.random.max_bytes", defaultMaxBytes); n > limit {
		return nil, goerror.NewInvalidInput(nil, "bytes", "bytes must be "+strconv.Itoa(limit)+" or less")
	}

	value, err := s.random.Hex(n)
	if errors.Is(err, random.ErrInvalidByteCount) {
		return nil, goerror.NewInvalidInput(nil, "bytes", "bytes must be 0 or greater")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate random hex", "bytes", n, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RandomHexOutput{Value: value, Bytes: n}, nil
}
