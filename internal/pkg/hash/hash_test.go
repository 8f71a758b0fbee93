package hash

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMD5Hex(t *testing.T) {
	tests := []struct {
		input []byte
		want  string
	}{
		{input: []byte(""), want: "d41d8cd98f00b204e9800998ecf8427e"},
		{input: []byte("abc"), want: "900150983cd24fb0d6963f7d28e17f72"},
		{input: []byte("hello world"), want: "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{input: []byte{0x00, 0xff, 0x10}, want: "481e4551ec039aada760901cf52b1917"},
	}

	reHex := regexp.MustCompile(`^[0-9a-f]{32}$`)
	for _, tt := range tests {
		got := MD5Hex(tt.input)
		assert.Equal(t, tt.want, got)
		assert.Regexp(t, reHex, got)
		assert.Equal(t, tt.want, MD5HexString(string(tt.input)))
	}
}

func TestMD5_HashVerify(t *testing.T) {
	var h Hash = NewMD5()

	got, err := h.Hash("abc")
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", string(got))

	assert.True(t, h.Verify(string(got), "abc"))
	assert.False(t, h.Verify(string(got), "abd"))
	assert.False(t, h.Verify("", "abc"))
}

func TestHMACSHA256_HashVerify(t *testing.T) {
	var h Hash = NewHMACSHA256("secret")

	got, err := h.Hash("hello world")
	require.NoError(t, err)
	assert.Equal(t, "734cc62f32841568f45715aeb9f4d7891324e6d948e4c6c60c0621cdac48623a", string(got))

	assert.True(t, h.Verify(string(got), "hello world"))
	assert.False(t, h.Verify(string(got), "hello world!"))
	assert.False(t, NewHMACSHA256("other").Verify(string(got), "hello world"))
}

func TestBLAKE2b256_HashVerify(t *testing.T) {
	var h Hash = NewBLAKE2b256()

	empty, err := h.Hash("")
	require.NoError(t, err)
	assert.Equal(t, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8", string(empty))

	got, err := h.Hash("abc")
	require.NoError(t, err)
	assert.Equal(t, "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319", string(got))

	assert.True(t, h.Verify(string(got), "abc"))
	assert.False(t, h.Verify(string(got), "abd"))
}
