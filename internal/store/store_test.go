package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colding10/finch/internal/board"
	"github.com/colding10/finch/internal/engine"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)

	killer := engine.NewKillerTable(64)
	move := board.Move{From: board.E1, To: board.E1 + board.North, Promotion: 'Q'}
	killer.Set(12345, move)

	require.NoError(t, s.Save(killer))
	require.NoError(t, s.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	reloaded := engine.NewKillerTable(64)
	require.NoError(t, s2.Load(reloaded))

	assert.True(t, reloaded.Has(12345))
	assert.Equal(t, move, reloaded.Get(12345))
}
