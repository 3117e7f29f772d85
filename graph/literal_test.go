package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archgraph/graphcore/graph"
)

func TestLiteralAccessorsMatchConstructor(t *testing.T) {
	b := graph.Bool(true)
	v, ok := b.AsBool()
	assert.True(t, ok)
	assert.True(t, v)
	_, ok = b.AsInt()
	assert.False(t, ok)

	i := graph.Int(42)
	iv, ok := i.AsInt()
	assert.True(t, ok)
	assert.EqualValues(t, 42, iv)

	f := graph.Float(3.5)
	fv, ok := f.AsFloat()
	assert.True(t, ok)
	assert.InDelta(t, 3.5, fv, 0.0001)

	s := graph.String("hello")
	sv, ok := s.AsString()
	assert.True(t, ok)
	assert.Equal(t, "hello", sv)
}

func TestLiteralStringRendersEachKind(t *testing.T) {
	assert.Equal(t, "true", graph.Bool(true).String())
	assert.Equal(t, "7", graph.Int(7).String())
	assert.Equal(t, "hi", graph.String("hi").String())
}

func TestDynamicAttributesPutGetDelete(t *testing.T) {
	attrs := graph.NewDynamicAttributes()
	attrs.Put("count", graph.Int(3))

	v, ok := attrs.Get("count")
	assert.True(t, ok)
	n, _ := v.AsInt()
	assert.EqualValues(t, 3, n)

	assert.Equal(t, 1, attrs.Len())
	assert.True(t, attrs.Delete("count"))
	assert.False(t, attrs.Delete("count"))
	assert.Equal(t, 0, attrs.Len())

	_, ok = attrs.Get("missing")
	assert.False(t, ok)
}

func TestDynamicAttributesCloneIsIndependent(t *testing.T) {
	src := graph.NewDynamicAttributes()
	src.Put("a", graph.Int(1))

	clone := src.Clone()
	clone.Put("a", graph.Int(2))

	v, _ := src.Get("a")
	n, _ := v.AsInt()
	assert.EqualValues(t, 1, n)

	v, _ = clone.Get("a")
	n, _ = v.AsInt()
	assert.EqualValues(t, 2, n)
}
