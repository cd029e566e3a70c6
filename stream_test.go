package optional

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional_Stream(t *testing.T) {
	assert.Empty(t, slices.Collect(Empty[string]().Stream()))

	seq := Of("TEST").Stream()
	assert.Equal(t, []string{"TEST"}, slices.Collect(seq))

	// sequences are restartable and independent
	assert.Equal(t, []string{"TEST"}, slices.Collect(seq))
	assert.Equal(t, []string{"TEST"}, slices.Collect(Of("TEST").Stream()))
}

func TestOptional_Stream_EarlyStop(t *testing.T) {
	var seen int
	for range Of("TEST").Stream() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestOptional_Stream_Flatten(t *testing.T) {
	opts := []Optional[string]{
		Of("TEST"),
		Of("TEST2"),
		Empty[string](),
		Of("TEST3"),
		Empty[string](),
	}

	var out []string
	for _, opt := range opts {
		out = slices.AppendSeq(out, opt.Stream())
	}

	assert.Equal(t, []string{"TEST", "TEST2", "TEST3"}, out)
}
