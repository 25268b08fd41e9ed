//go:build linux && !tinygo

package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFBSize(t *testing.T) {
	w, h, err := parseFBSize("1920,1080\n")
	require.NoError(t, err)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	for _, bad := range []string{"", "1920", "x,1080", "1920,y"} {
		_, _, err := parseFBSize(bad)
		assert.Error(t, err, "%q", bad)
	}
}
