package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_HasToken(t *testing.T) {
	u := &User{Tokens: []Token{{Access: "auth", Token: "a"}, {Access: "auth", Token: "b"}}}

	assert.True(t, u.HasToken("a"))
	assert.True(t, u.HasToken("b"))
	assert.False(t, u.HasToken("c"))
	assert.False(t, (&User{}).HasToken(""))
}
