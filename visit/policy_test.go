package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavepaths/visit"
)

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "single-visit", visit.SingleVisit.String())
	assert.Equal(t, "one-small-twice", visit.OneSmallTwice.String())
	assert.Equal(t, "Policy(9)", visit.Policy(9).String())
	assert.Equal(t, []visit.Policy{visit.SingleVisit, visit.OneSmallTwice}, visit.Policies())
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]visit.Policy{
		"single":          visit.SingleVisit,
		"single-visit":    visit.SingleVisit,
		" Twice ":         visit.OneSmallTwice,
		"one-small-twice": visit.OneSmallTwice,
	} {
		got, err := visit.ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := visit.ParsePolicy("thrice")
	assert.ErrorIs(t, err, visit.ErrUnknownPolicy)
}

func TestSingleVisit_Allows(t *testing.T) {
	h := visit.HistoryOf("start", "A", "b", "A")

	assert.False(t, visit.SingleVisit.Allows("start", h), "start is never re-entered")
	assert.False(t, visit.SingleVisit.Allows("b", h), "small node already visited")
	assert.True(t, visit.SingleVisit.Allows("A", h), "large nodes are unrestricted")
	assert.True(t, visit.SingleVisit.Allows("c", h))
	assert.True(t, visit.SingleVisit.Allows("end", h))
}

func TestOneSmallTwice_Allows(t *testing.T) {
	fresh := visit.HistoryOf("start", "A", "b", "A")
	assert.False(t, visit.OneSmallTwice.Allows("start", fresh))
	assert.True(t, visit.OneSmallTwice.Allows("b", fresh), "doubling still available")
	assert.True(t, visit.OneSmallTwice.Allows("c", fresh))

	used := visit.HistoryOf("start", "A", "b", "A", "b", "A")
	assert.True(t, used.Doubled())
	assert.False(t, visit.OneSmallTwice.Allows("b", used), "b would be visited three times")
	assert.True(t, visit.OneSmallTwice.Allows("c", used), "unvisited small node")
	assert.True(t, visit.OneSmallTwice.Allows("A", used))
	assert.True(t, visit.OneSmallTwice.Allows("end", used))

	other := used.Extend("c")
	assert.False(t, visit.OneSmallTwice.Allows("c", other), "doubling already spent on b")
}

func TestAllowsFrom_CustomStart(t *testing.T) {
	h := visit.NewHistory("home")

	assert.False(t, visit.SingleVisit.AllowsFrom("home", "home", h))
	assert.True(t, visit.SingleVisit.AllowsFrom("home", "start", h), "only the configured start is barred")
}

func TestUnknownPolicy_AllowsOnlyLarge(t *testing.T) {
	h := visit.NewHistory("start")
	p := visit.Policy(42)

	assert.False(t, p.Allows("b", h))
	assert.True(t, p.Allows("B", h))
}
