package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	s, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, s, DefaultLength)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	s, err := GenerateWithPrefix(PrefixCustomer, 10)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "cus_mock_"))
	assert.Len(t, s, len("cus_mock_")+10)

	other := MustGenerateWithPrefix(PrefixCustomer, 10)
	assert.NotEqual(t, s, other)
}
