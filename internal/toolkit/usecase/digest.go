package usecase

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/shandysiswandi/bitekit/internal/pkg/codec"
	"github.com/shandysiswandi/bitekit/internal/pkg/goerror"
)

type DigestInput struct {
	Algorithm string
	Encoding  string `validate:"omitempty,oneof=utf8 base64"`
	Input     string
}

type DigestOutput struct {
	Algorithm string
	Digest    string
}

func (s *Usecase) Digest(ctx context.Context, in DigestInput) (*DigestOutput, error) {
	ctx, span := s.startSpan(ctx, "Digest")
	defer span.End()

	in.Algorithm = strings.ToLower(strings.TrimSpace(in.Algorithm))
	in.Encoding = strings.ToLower(strings.TrimSpace(in.Encoding))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Algorithm == "" {
		in.Algorithm = AlgorithmMD5
	}

	if !slices.Contains(knownAlgorithms, in.Algorithm) {
		return nil, goerror.NewInvalidInput(nil, "algorithm",
			"algorithm must be one of ["+strings.Join(s.Algorithms(), " ")+"]")
	}

	hasher, ok := s.digests[in.Algorithm]
	if !ok {
		slog.WarnContext(ctx, "digest algorithm requested but not configured", "algorithm", in.Algorithm)
		return nil, goerror.NewBusiness("Algorithm "+in.Algorithm+" is not configured", goerror.CodeUnavailable)
	}

	payload := in.Input
	if in.Encoding == EncodingBase64 {
		raw, err := codec.DecodeBase64Raw(in.Input)
		if err != nil {
			return nil, goerror.NewInvalidInput(nil, "input", "input is not valid base64")
		}
		payload = string(raw)
	}

	sum, err := hasher.Hash(payload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash input", "algorithm", in.Algorithm, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DigestOutput{Algorithm: in.Algorithm, Digest: string(sum)}, nil
}
