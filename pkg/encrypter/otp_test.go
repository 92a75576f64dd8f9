package encrypter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := GenerateOTPCode()
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
		seen[code] = true
	}
	// 20 draws from a million values colliding down to one code would mean
	// the generator is broken.
	assert.Greater(t, len(seen), 1)
}

func TestHashOTPCode(t *testing.T) {
	hash, err := HashOTPCode("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, CheckOTPCode("123456", hash))
	assert.False(t, CheckOTPCode("654321", hash))
}
