package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoader(t *testing.T) {
	t.Run("single request is latest", func(t *testing.T) {
		l := NewLoader()
		tk := l.Begin("home")
		assert.True(t, l.Finish(tk))
		assert.Zero(t, l.Pending())
	})

	t.Run("older request is stale regardless of completion order", func(t *testing.T) {
		l := NewLoader()
		older := l.Begin("category")
		newer := l.Begin("category")

		assert.True(t, l.Finish(newer))
		assert.False(t, l.Finish(older))
		assert.Zero(t, l.Pending())
	})

	t.Run("views are independent", func(t *testing.T) {
		l := NewLoader()
		a := l.Begin("a:/category/birthday")
		b := l.Begin("b:/category/birthday")

		assert.True(t, l.Finish(a))
		assert.True(t, l.Finish(b))
	})

	t.Run("unknown ticket is stale", func(t *testing.T) {
		l := NewLoader()
		assert.False(t, l.Finish(Ticket{View: "x", Seq: 7}))
	})
}
