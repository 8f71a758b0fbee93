package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/bitekit/internal/pkg/codec"
	"github.com/shandysiswandi/bitekit/internal/pkg/goerror"
)

type Base64EncodeInput struct {
	Value any
}

type Base64EncodeOutput struct {
	Text string
}

func (s *Usecase) Base64Encode(ctx context.Context, in Base64EncodeInput) (*Base64EncodeOutput, error) {
	ctx, span := s.startSpan(ctx, "Base64Encode")
	defer span.End()

	text, err := codec.EncodeBase64(in.Value)
	if errors.Is(err, codec.ErrSerialization) {
		slog.WarnContext(ctx, "value is not json serializable", "error", err)
		return nil, goerror.NewInvalidInput(nil, "value", "value cannot be represented as JSON")
	}
	if err != nil {
		return nil, goerror.NewServer(err)
	}

	return &Base64EncodeOutput{Text: text}, nil
}

type Base64DecodeInput struct {
	Text string
}

type Base64DecodeOutput struct {
	Value any
}

func (s *Usecase) Base64Decode(ctx context.Context, in Base64DecodeInput) (*Base64DecodeOutput, error) {
	ctx, span := s.startSpan(ctx, "Base64Decode")
	defer span.End()

	value, err := codec.DecodeBase64(in.Text)
	switch {
	case errors.Is(err, codec.ErrDecode):
		slog.WarnContext(ctx, "base64 decode rejected", "error", err)
		return nil, goerror.NewInvalidInput(nil, "text", "text is not valid base64")
	case errors.Is(err, codec.ErrParse):
		slog.WarnContext(ctx, "base64 payload is not json", "error", err)
		return nil, goerror.NewInvalidInput(nil, "text", "text does not contain valid JSON")
	case err != nil:
		return nil, goerror.NewServer(err)
	}

	return &Base64DecodeOutput{Value: value}, nil
}
