package arena

import (
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

type node struct {
	id   int
	name string
}

func TestMake(t *testing.T) {
	var a Arena[node]
	n := a.Make()
	assert.NotNil(t, n)
	assert.Equal(t, 0, n.id)
	n.id = 7
	n.name = "seven"
	assert.Equal(t, 1, a.Len())
}

func TestNew(t *testing.T) {
	var a Arena[node]
	n := a.New(node{id: 3, name: "three"})
	assert.Equal(t, 3, n.id)
	assert.Equal(t, "three", n.name)
}

func TestPointerStability(t *testing.T) {
	// Pointers handed out early must survive later growth across many
	// chunk boundaries.
	var a Arena[node]
	ptrs := make([]*node, 0, 1000)
	for i := 0; i < 1000; i++ {
		n := a.Make()
		n.id = i
		ptrs = append(ptrs, n)
	}
	assert.Equal(t, 1000, a.Len())
	for i, p := range ptrs {
		assert.Equal(t, i, p.id, "ptrs[%d]", i)
	}
}

func TestReset(t *testing.T) {
	var a Arena[node]
	for i := 0; i < 100; i++ {
		a.Make()
	}
	a.Reset()
	assert.Equal(t, 0, a.Len())
	n := a.Make()
	assert.Equal(t, 0, n.id)
	assert.Equal(t, 1, a.Len())
}
