package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeULID(t *testing.T) {
	t.Parallel()

	t.Run("zero value encodes to all zeros", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "00000000000000000000000000", encodeULID(0, 0, 0))
	})

	t.Run("max value uses top 128 bits only", func(t *testing.T) {
		t.Parallel()
		got := encodeULID(0xFFFFFFFFFFFF, 0xFFFF, 0xFFFFFFFFFFFFFFFF)
		assert.Equal(t, "7ZZZZZZZZZZZZZZZZZZZZZZZZZ", got)
	})

	t.Run("timestamp occupies first ten characters", func(t *testing.T) {
		t.Parallel()
		a := encodeULID(1, 0, 0)
		b := encodeULID(2, 0, 0)
		assert.Equal(t, "0000000001", a[:10])
		assert.Equal(t, "0000000002", b[:10])
		assert.Equal(t, a[10:], b[10:])
	})
}
