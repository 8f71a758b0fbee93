package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type digestRequest struct {
	Algorithm string `validate:"required,oneof=md5 hmac-sha256"`
	ByteCount int    `validate:"gte=0,lte=1024"`
	Encoding  string `json:"enc,omitempty" validate:"omitempty,oneof=utf8 base64"`
}

func TestV10Validator_Validate(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(digestRequest{Algorithm: "md5", ByteCount: 16}))
	})

	t.Run("fields keyed by json or snake case name", func(t *testing.T) {
		err := v.Validate(digestRequest{Algorithm: "sha1", ByteCount: -1, Encoding: "hex"})

		var verr V10ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Values(), 3)
		assert.Contains(t, verr.Values(), "algorithm")
		assert.Contains(t, verr.Values(), "byte_count")
		assert.Contains(t, verr.Values(), "enc")
		assert.Contains(t, verr.Error(), "algorithm")
	})

	t.Run("non struct", func(t *testing.T) {
		err := v.Validate("nope")
		require.Error(t, err)

		var verr V10ValidationError
		assert.NotErrorAs(t, err, &verr)
	})
}

func TestV10ValidationError_Empty(t *testing.T) {
	assert.Equal(t, "validation error", V10ValidationError{}.Error())
}
