package inbound

import (
	"context"

	"github.com/shandysiswandi/bitekit/internal/pkg/router"
	"github.com/shandysiswandi/bitekit/internal/toolkit/usecase"
)

type uc interface {
	RandomHex(ctx context.Context, in usecase.RandomHexInput) (*usecase.RandomHexOutput, error)
	Digest(ctx context.Context, in usecase.DigestInput) (*usecase.DigestOutput, error)
	Algorithms() []string

	Base64Encode(ctx context.Context, in usecase.Base64EncodeInput) (*usecase.Base64EncodeOutput, error)
	Base64Decode(ctx context.Context, in usecase.Base64DecodeInput) (*usecase.Base64DecodeOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/toolkit/random/hex", end.RandomHex)

	r.GET("/api/v1/toolkit/digest/algorithms", end.DigestAlgorithms)
	r.POST("/api/v1/toolkit/digest", end.Digest)

	r.POST("/api/v1/toolkit/base64/encode", end.Base64Encode)
	r.POST("/api/v1/toolkit/base64/decode", end.Base64Decode)
}
