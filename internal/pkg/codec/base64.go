package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrSerialization indicates the value cannot be represented as JSON.
	ErrSerialization = errors.New("codec: value is not JSON serializable")
	// ErrDecode indicates the text is not valid standard base64.
	ErrDecode = errors.New("codec: invalid base64 text")
	// ErrParse indicates the decoded bytes are not a valid JSON value.
	ErrParse = errors.New("codec: invalid JSON payload")
)

// EncodeBase64 serializes v to JSON and returns it as padded standard base64.
//
// NaN, infinities, channels, functions and cyclic structures fail with
// ErrSerialization.
func EncodeBase64(v any) (string, error) {
	data, err := marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// EncodeBase64Raw encodes b as padded standard base64 without any JSON step.
func EncodeBase64Raw(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64Raw decodes padded standard base64 text without any JSON step.
func DecodeBase64Raw(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return data, nil
}

// DecodeBase64 decodes base64 text and parses the result as a JSON value.
func DecodeBase64(text string) (any, error) {
	var v any
	if err := DecodeBase64Into(text, &v); err != nil {
		return nil, err
	}

	return v, nil
}

// DecodeBase64Into decodes base64 text and unmarshals the JSON into dst.
func DecodeBase64Into(text string, dst any) error {
	data, err := DecodeBase64Raw(text)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	return nil
}

func marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// Encoder always terminates the value with a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
