package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCmd(t *testing.T) {
	open := testOpener(t)
	seedStore(t, open)

	s, err := open()
	require.NoError(t, err)
	require.NoError(t, s.Rate(0, 5))
	require.NoError(t, s.SaveAll())

	out, err := executeCmd(t, NewStatsCmd(open))
	require.NoError(t, err)
	assert.Contains(t, out, "Quotes:     3")
	assert.Contains(t, out, "Categories: 3")
	assert.Contains(t, out, "Authors:    3")
	assert.Contains(t, out, "Rated:      1")
	assert.Contains(t, out, "Category names: design, motivation, programming")
}

func TestStatsCmdEmpty(t *testing.T) {
	out, err := executeCmd(t, NewStatsCmd(testOpener(t)))
	require.NoError(t, err)
	assert.Contains(t, out, "Quotes:     0")
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCmd(t, NewVersionCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "quotetray v")
}
