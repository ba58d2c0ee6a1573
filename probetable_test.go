package probetable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikhailWahib/probetable"
)

func TestNew(t *testing.T) {
	tbl, err := probetable.New(probetable.QuadraticProbe, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, tbl.Size())
	assert.Equal(t, probetable.QuadraticProbe, tbl.Strategy())

	tbl, err = probetable.New(probetable.Chaining, &probetable.Config{Size: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Size())

	_, err = probetable.New(probetable.LinearProbe, &probetable.Config{Size: -1})
	assert.Error(t, err)
}

func TestTableFull(t *testing.T) {
	tbl, err := probetable.New(probetable.LinearProbe, &probetable.Config{Size: 3})
	require.NoError(t, err)

	for _, v := range []int{0, 3, 6} {
		require.NoError(t, tbl.Insert(v))
	}
	assert.ErrorIs(t, tbl.Insert(9), probetable.ErrTableFull)
}

func TestRun(t *testing.T) {
	res, err := probetable.Run(&probetable.Config{Strategy: "chaining"}, probetable.DemoScript())
	require.NoError(t, err)
	assert.Equal(t, "Index 0: 10, Deleted, 30, null", res.Final[0])

	res, err = probetable.Run(nil, []probetable.Op{
		probetable.Insert(5),
		probetable.Remove(5),
		probetable.Contains(5),
		probetable.Snapshot(),
	})
	require.NoError(t, err)
	require.Len(t, res.Queries(), 1)
	assert.False(t, res.Queries()[0].Found)
	assert.Equal(t, "Index 5: Deleted", res.Snapshots[0][5])
}
