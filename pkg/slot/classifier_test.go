package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("compound lab field matches as a whole", func(t *testing.T) {
		c := Classify("L1+L2", catalog)

		assert.Equal(t, Lab, c.Kind)
		assert.Equal(t, []string{"L1+L2"}, c.Keys)
		require.Len(t, c.Meetings, 1)
		assert.Equal(t, Monday, c.Meetings[0].Day)
		assert.Empty(t, c.Misses)
	})

	t.Run("theory combination resolves each token", func(t *testing.T) {
		c := Classify("A1+TA1", catalog)

		assert.Equal(t, Theory, c.Kind)
		assert.Equal(t, []string{"A1", "TA1"}, c.Keys)
		assert.Empty(t, c.Misses)

		a1, _ := catalog.LookupTheory("A1")
		ta1, _ := catalog.LookupTheory("TA1")
		assert.Equal(t, append(append([]Meeting{}, a1...), ta1...), c.Meetings)
	})

	t.Run("unknown L-prefixed token is a lab miss", func(t *testing.T) {
		c := Classify("L99", catalog)

		assert.Equal(t, Lab, c.Kind)
		assert.Equal(t, []string{"L99"}, c.Keys)
		assert.Empty(t, c.Meetings)
		assert.Equal(t, []string{"L99"}, c.Misses)
	})

	t.Run("unknown theory token is skipped, rest still resolves", func(t *testing.T) {
		c := Classify("A1+Z9", catalog)

		assert.Equal(t, Theory, c.Kind)
		assert.Equal(t, []string{"A1"}, c.Keys)
		assert.Equal(t, []string{"Z9"}, c.Misses)
		assert.NotEmpty(t, c.Meetings)
	})

	t.Run("field is case-insensitive", func(t *testing.T) {
		c := Classify(" l31+l32 ", catalog)

		assert.Equal(t, Lab, c.Kind)
		assert.Equal(t, []string{"L31+L32"}, c.Keys)
		assert.NotEmpty(t, c.Meetings)
	})

	t.Run("empty field yields an empty theory classification", func(t *testing.T) {
		c := Classify("", catalog)

		assert.Equal(t, Theory, c.Kind)
		assert.Empty(t, c.Keys)
		assert.Empty(t, c.Meetings)
		assert.Empty(t, c.Misses)
	})
}
