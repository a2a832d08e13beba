package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroup_Followers(t *testing.T) {
	g := &Group{Name: "apps", Master: "m", Members: []string{"a", "m", "b"}}
	assert.Equal(t, []string{"a", "b"}, g.Followers())

	noMaster := &Group{Name: "apps", Members: []string{"a", "b"}}
	assert.False(t, noMaster.HasMaster())
	assert.Equal(t, []string{"a", "b"}, noMaster.Followers())
}

func TestGroup_AddMember(t *testing.T) {
	g := NewGroup("apps")

	assert.True(t, g.AddMember("a"))
	assert.False(t, g.AddMember("a"))
	assert.True(t, g.AddMember("b"))
	assert.Equal(t, []string{"a", "b"}, g.Members)
	assert.True(t, g.HasMember("b"))
	assert.False(t, g.HasMember("c"))
}

func TestGroup_Clone(t *testing.T) {
	g := &Group{Name: "apps", Master: "m", Members: []string{"m"}}
	c := g.Clone()
	c.AddMember("x")
	c.Master = ""

	assert.Equal(t, []string{"m"}, g.Members)
	assert.Equal(t, "m", g.Master)

	empty := (&Group{Name: "e"}).Clone()
	assert.NotNil(t, empty.Members)
}
