package modelguard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/modelguard"
)

func TestResult(t *testing.T) {
	t.Run("OK starts valid and empty", func(t *testing.T) {
		r := modelguard.OK()
		assert.True(t, r.Valid())
		assert.Empty(t, r.Fields())
	})

	t.Run("Fail starts invalid without itemizing", func(t *testing.T) {
		r := modelguard.Fail()
		assert.False(t, r.Valid())
		assert.Empty(t, r.Fields())
	})

	t.Run("AddViolation flips validity and chains", func(t *testing.T) {
		r := modelguard.OK().
			AddViolation("orderNumber", "already exists").
			AddViolation("orderNumber", "reserved prefix")

		assert.False(t, r.Valid())
		assert.Equal(t, []string{"already exists", "reserved prefix"}, r.Violations("orderNumber"))
	})
}

func TestResultMerge(t *testing.T) {
	t.Run("valid merged into valid stays valid", func(t *testing.T) {
		r := modelguard.OK().Merge(modelguard.OK())
		assert.True(t, r.Valid())
		assert.Empty(t, r.Fields())
	})

	t.Run("failure propagates", func(t *testing.T) {
		r := modelguard.OK().Merge(modelguard.Fail())
		assert.False(t, r.Valid())
	})

	t.Run("violations are unioned without loss", func(t *testing.T) {
		a := modelguard.OK().AddViolation("x", "first")
		b := modelguard.OK().AddViolation("x", "first").AddViolation("y", "other")

		a.Merge(b)

		assert.Equal(t, []string{"first", "first"}, a.Violations("x"), "duplicates are preserved, never deduplicated")
		assert.Equal(t, []string{"other"}, a.Violations("y"))
		assert.Equal(t, []string{"x", "y"}, a.Fields())
	})

	t.Run("merging valid empty result is a no-op", func(t *testing.T) {
		r := modelguard.OK().AddViolation("x", "msg")
		before := r.Violations("x")
		r.Merge(modelguard.OK())
		assert.Equal(t, before, r.Violations("x"))
		assert.False(t, r.Valid())
	})

	t.Run("nil other is a no-op", func(t *testing.T) {
		r := modelguard.OK().Merge(nil)
		assert.True(t, r.Valid())
	})

	t.Run("merge is associative over violation sets", func(t *testing.T) {
		build := func() (*modelguard.Result, *modelguard.Result, *modelguard.Result) {
			return modelguard.OK().AddViolation("a", "1"),
				modelguard.OK().AddViolation("b", "2"),
				modelguard.Fail()
		}

		a1, b1, c1 := build()
		left := a1.Merge(b1).Merge(c1)

		a2, b2, c2 := build()
		right := a2.Merge(b2.Merge(c2))

		require.Equal(t, left.Valid(), right.Valid())
		assert.Equal(t, left.Fields(), right.Fields())
		for _, f := range left.Fields() {
			assert.Equal(t, left.Violations(f), right.Violations(f))
		}
	})
}
