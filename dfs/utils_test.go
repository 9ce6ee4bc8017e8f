package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cavepaths/dfs"
)

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, dfs.Compare([]string{"a", "b"}, []string{"a", "b"}))
	assert.Equal(t, -1, dfs.Compare([]string{"a", "B"}, []string{"a", "b"}))
	assert.Equal(t, 1, dfs.Compare([]string{"b"}, []string{"a", "z"}))
	assert.Equal(t, -1, dfs.Compare([]string{"a"}, []string{"a", "b"}), "prefix sorts first")
	assert.Equal(t, 1, dfs.Compare([]string{"a", "b"}, []string{"a"}))
	assert.Equal(t, 0, dfs.Compare(nil, []string{}))
}

func TestJoinSig(t *testing.T) {
	assert.Equal(t, "start,A,end", dfs.JoinSig([]string{"start", "A", "end"}))
	assert.Equal(t, "", dfs.JoinSig(nil))
}

func TestPathSet(t *testing.T) {
	a := dfs.Path{"start", "A", "end"}
	b := dfs.Path{"start", "b", "end"}

	s := dfs.NewPathSet(b, a, dfs.Path{"start", "A", "end"})
	assert.Equal(t, 2, s.Len(), "equal sequences collapse")
	assert.True(t, s.Contains(dfs.Path{"start", "A", "end"}), "membership by value, not identity")
	assert.False(t, s.Contains(dfs.Path{"start", "A"}))
	assert.Equal(t, []dfs.Path{a, b}, s.Paths())

	a[1] = "Z"
	assert.False(t, s.Contains(a), "NewPathSet stores copies")

	assert.True(t, s.Equal(dfs.NewPathSet(dfs.Path{"start", "b", "end"}, dfs.Path{"start", "A", "end"})))
	assert.False(t, s.Equal(dfs.NewPathSet(b)))

	var nilSet *dfs.PathSet
	assert.Zero(t, nilSet.Len())
	assert.False(t, nilSet.Contains(b))
	assert.Empty(t, nilSet.Paths())
}

func TestPath_EqualString(t *testing.T) {
	p := dfs.Path{"start", "A", "end"}
	assert.True(t, p.Equal(dfs.Path{"start", "A", "end"}))
	assert.False(t, p.Equal(dfs.Path{"start", "A"}))
	assert.Equal(t, "start,A,end", p.String())
}
