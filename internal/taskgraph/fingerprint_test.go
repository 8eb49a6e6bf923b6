package taskgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a := New()
	a.AddSuccessor(1, 2)
	a.AddSuccessor(1, 3)

	b := New()
	b.AddSuccessor(1, 3)
	b.AddSuccessor(1, 2)

	fa, err := a.Fingerprint()
	require.NoError(t, err)
	fb, err := b.Fingerprint()
	require.NoError(t, err)

	assert.Len(t, fa, 64)
	assert.Equal(t, fa, fb, "insertion order must not change the fingerprint")

	b.AddSuccessor(1, 3)
	fdup, err := b.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, fa, fdup, "duplicate edges change the fingerprint")

	c := Build([]TaskID{1, 2, 3, 4}, map[TaskID][]TaskID{1: {2, 3}})
	fc, err := c.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, fa, fc, "extra isolated task changes the fingerprint")
}

func TestCanonicalize(t *testing.T) {
	g := Build(nil, map[TaskID][]TaskID{2: {3, 1}})

	data, err := g.Canonicalize()
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":1,"successors":[]},{"id":2,"successors":[1,3]},{"id":3,"successors":[]}]`,
		string(data))
}
