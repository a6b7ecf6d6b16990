//go:build !windows

package stderr

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_DeliversLines(t *testing.T) {
	c, err := Start()
	require.NoError(t, err)

	_, err = os.Stderr.WriteString("[ao/alsa] underrun\n\n")
	require.NoError(t, err)

	select {
	case line := <-c.Lines():
		assert.Equal(t, "[ao/alsa] underrun", line)
	case <-time.After(2 * time.Second):
		t.Fatal("no line captured")
	}

	require.NoError(t, c.Close())
	_, open := <-c.Lines()
	assert.False(t, open)
	require.NoError(t, c.Close())
}
