package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	table := NewTable()
	assert.Equal(t, 0, table.Len())
	_, ok := table.Peek("abc")
	assert.False(t, ok)

	abc := table.Intern("abc")
	assert.Equal(t, 1, table.Len())
	id, ok := table.Peek("abc")
	assert.True(t, ok)
	assert.Equal(t, abc, id)
	assert.Equal(t, abc, table.Intern("abc"))
	assert.Equal(t, 1, table.Len())

	s, ok := table.Symbol(abc)
	assert.True(t, ok)
	assert.Equal(t, "abc", s)

	xyz := table.Intern("xyz")
	assert.NotEqual(t, abc, xyz)
	assert.Equal(t, 2, table.Len())
}

func TestInternAll(t *testing.T) {
	table := NewTable()
	ids := InternAll(table, "a", "b", "a")
	require.Len(t, ids, 3)
	assert.Equal(t, ids[0], ids[2])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestDefaultGlobalTable(t *testing.T) {
	id := Intern("symbol-test-default-global")
	assert.Equal(t, "symbol-test-default-global", id.String())
	unknown := ID(0xfffffff0)
	assert.Contains(t, unknown.String(), "#<symbol")
}
