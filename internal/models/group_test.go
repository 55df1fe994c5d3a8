package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddMemberIsIdempotent(t *testing.T) {
	group := Group{MemberIDs: []string{"u1"}}

	group.AddMember("u2")
	group.AddMember("u2")

	assert.Equal(t, []string{"u1", "u2"}, group.MemberIDs)
	assert.Equal(t, 2, group.MemberCount())
}

func TestRemoveMemberNonMemberIsNoOp(t *testing.T) {
	group := Group{MemberIDs: []string{"u1", "u2"}}

	group.RemoveMember("stranger")
	assert.Equal(t, []string{"u1", "u2"}, group.MemberIDs)

	group.RemoveMember("u1")
	assert.Equal(t, []string{"u2"}, group.MemberIDs)
}

func TestIsMember(t *testing.T) {
	group := Group{MemberIDs: []string{"u1"}}

	assert.True(t, group.IsMember("u1"))
	assert.False(t, group.IsMember("u2"))
}
