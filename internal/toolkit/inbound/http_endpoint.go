package inbound

import (
	"github.com/shandysiswandi/bitekit/internal/pkg/goerror"
	"github.com/shandysiswandi/bitekit/internal/pkg/router"
	"github.com/shandysiswandi/bitekit/internal/toolkit/usecase"
)

// HTTPEndpoint exposes HTTP handlers for the toolkit operations.
type HTTPEndpoint struct {
	uc uc
}

// RandomHex returns a random lowercase hex token.
// @Summary Generate random hex
// @Description Draws the requested number of bytes from a secure source and returns them hex encoded.
// @Tags Toolkit
// @Produce json
// @Param bytes query int false "Number of random bytes"
// @Success 200 {object} router.successResponse{data=RandomHexResponse} "Random token"
// @Failure 400 {object} router.errorResponse "Invalid query bytes"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/toolkit/random/hex [get]
func (h *HTTPEndpoint) RandomHex(r *router.Request) (any, error) {
	var in usecase.RandomHexInput
	if r.GetQuery("bytes") != "" {
		n, err := r.GetQueryInt("bytes", 0)
		if err != nil {
			return nil, err
		}
		in.Bytes = &n
	}

	resp, err := h.uc.RandomHex(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return RandomHexResponse{Value: resp.Value, Bytes: resp.Bytes}, nil
}

// DigestAlgorithms lists the digest algorithms this instance can serve.
// @Summary List digest algorithms
// @Tags Toolkit
// @Produce json
// @Success 200 {object} router.successResponse{data=DigestAlgorithmsResponse} "Available algorithms"
// @Router /api/v1/toolkit/digest/algorithms [get]
func (h *HTTPEndpoint) DigestAlgorithms(*router.Request) (any, error) {
	return DigestAlgorithmsResponse{Algorithms: h.uc.Algorithms()}, nil
}

// Digest hashes the input and returns the hex digest.
// @Summary Compute digest
// @Description Hashes the input with md5 (default), blake2b-256 or hmac-sha256. Input may be utf8 text or base64 bytes.
// @Tags Toolkit
// @Accept json
// @Produce json
// @Param request body DigestRequest true "Digest payload"
// @Success 200 {object} router.successResponse{data=DigestResponse} "Hex digest"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 503 {object} router.errorResponse "Algorithm not configured"
// @Router /api/v1/toolkit/digest [post]
func (h *HTTPEndpoint) Digest(r *router.Request) (any, error) {
	var req DigestRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Digest(r.Context(), usecase.DigestInput{
		Algorithm: req.Algorithm,
		Encoding:  req.Encoding,
		Input:     req.Input,
	})
	if err != nil {
		return nil, err
	}

	return DigestResponse{Algorithm: resp.Algorithm, Digest: resp.Digest}, nil
}

// Base64Encode serializes a JSON value and returns it base64 encoded.
// @Summary Encode JSON as base64
// @Tags Toolkit
// @Accept json
// @Produce json
// @Param request body Base64EncodeRequest true "Value to encode"
// @Success 200 {object} router.successResponse{data=Base64EncodeResponse} "Encoded text"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/toolkit/base64/encode [post]
func (h *HTTPEndpoint) Base64Encode(r *router.Request) (any, error) {
	var req Base64EncodeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if req.Value == nil {
		return nil, goerror.NewInvalidInput(nil, "value", "value is required")
	}

	resp, err := h.uc.Base64Encode(r.Context(), usecase.Base64EncodeInput{Value: req.Value})
	if err != nil {
		return nil, err
	}

	return Base64EncodeResponse{Text: resp.Text}, nil
}

// Base64Decode decodes base64 text and parses the JSON value it carries.
// @Summary Decode base64 JSON
// @Tags Toolkit
// @Accept json
// @Produce json
// @Param request body Base64DecodeRequest true "Text to decode"
// @Success 200 {object} router.successResponse{data=Base64DecodeResponse} "Decoded value"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/toolkit/base64/decode [post]
func (h *HTTPEndpoint) Base64Decode(r *router.Request) (any, error) {
	var req Base64DecodeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Base64Decode(r.Context(), usecase.Base64DecodeInput{Text: req.Text})
	if err != nil {
		return nil, err
	}

	return Base64DecodeResponse{Value: resp.Value}, nil
}
