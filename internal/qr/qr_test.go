package qr

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURL(t *testing.T) {
	t.Run("encodes a url", func(t *testing.T) {
		got, err := DataURL("http://localhost:8080")
		require.NoError(t, err)

		require.True(t, strings.HasPrefix(got, "data:image/png;base64,"))

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/png;base64,"))
		require.NoError(t, err)
		// PNG magic bytes
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
	})

	t.Run("empty text rejected", func(t *testing.T) {
		_, err := DataURL("")
		assert.Error(t, err)
	})
}
