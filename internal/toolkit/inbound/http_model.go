package inbound

import "encoding/json"

type RandomHexResponse struct {
	Value string `json:"value"`
	Bytes int    `json:"bytes"`
}

type DigestRequest struct {
	Algorithm string `json:"algorithm"`
	Input     string `json:"input"`
	Encoding  string `json:"encoding"`
}

type DigestResponse struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
}

type DigestAlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}

type Base64EncodeRequest struct {
	// Value is kept raw so the exact JSON document the client sent is the
	// one that gets encoded.
	Value json.RawMessage `json:"value"`
}

type Base64EncodeResponse struct {
	Text string `json:"text"`
}

type Base64DecodeRequest struct {
	Text string `json:"text"`
}

type Base64DecodeResponse struct {
	Value any `json:"value"`
}

func (Base64DecodeResponse) Message() string {
	return "Payload decoded successfully"
}
