package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelshare/travelshare-backend/internal/models"
)

func TestCreateGroupOwnerBecomesFirstMember(t *testing.T) {
	groups := newFakeGroupStore()
	svc := NewGroupService(groups)

	group, err := svc.CreateGroup("owner-1", models.CreateGroupRequest{
		Name:        "Alps hikers",
		Description: "Trips around the Alps",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner-1", group.OwnerID)
	assert.Equal(t, []string{"owner-1"}, group.MemberIDs)

	stored, err := groups.GetByID(group.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsMember("owner-1"))
	assert.Equal(t, 1, stored.MemberCount())
}

func TestCreateGroupRequiresLogin(t *testing.T) {
	svc := NewGroupService(newFakeGroupStore())

	_, err := svc.CreateGroup("", models.CreateGroupRequest{Name: "x"})
	assert.EqualError(t, err, "must be logged in to create a group")
}

func TestJoinGroupIsIdempotent(t *testing.T) {
	groups := newFakeGroupStore()
	svc := NewGroupService(groups)
	groups.Create(&models.Group{ID: "g1", OwnerID: "owner-1", MemberIDs: []string{"owner-1"}})

	require.NoError(t, svc.JoinGroup("g1", "user-b"))
	require.NoError(t, svc.JoinGroup("g1", "user-b"))

	group, _ := groups.GetByID("g1")
	assert.Equal(t, []string{"owner-1", "user-b"}, group.MemberIDs)
}

func TestJoinGroupRequiresExistingGroup(t *testing.T) {
	svc := NewGroupService(newFakeGroupStore())

	err := svc.JoinGroup("missing", "user-b")
	assert.EqualError(t, err, "group not found")
}

func TestLeaveGroupNonMemberIsNoOp(t *testing.T) {
	groups := newFakeGroupStore()
	svc := NewGroupService(groups)
	groups.Create(&models.Group{ID: "g1", OwnerID: "owner-1", MemberIDs: []string{"owner-1"}})

	require.NoError(t, svc.LeaveGroup("g1", "stranger"))

	group, _ := groups.GetByID("g1")
	assert.Equal(t, []string{"owner-1"}, group.MemberIDs)
}

func TestLeaveGroupRemovesMember(t *testing.T) {
	groups := newFakeGroupStore()
	svc := NewGroupService(groups)
	groups.Create(&models.Group{ID: "g1", OwnerID: "owner-1", MemberIDs: []string{"owner-1", "user-b"}})

	require.NoError(t, svc.LeaveGroup("g1", "user-b"))

	group, _ := groups.GetByID("g1")
	assert.Equal(t, []string{"owner-1"}, group.MemberIDs)
}

func TestSearchGroupsMatchesNameAndDescription(t *testing.T) {
	groups := newFakeGroupStore()
	svc := NewGroupService(groups)
	groups.Create(&models.Group{ID: "g1", Name: "Alps hikers", Description: "Mountain trips"})
	groups.Create(&models.Group{ID: "g2", Name: "City walkers", Description: "Urban photography"})
	groups.Create(&models.Group{ID: "g3", Name: "Beach crew", Description: "Sunsets and alps views"})

	matches, err := svc.SearchGroups("alps")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = svc.SearchGroups("URBAN")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "g2", matches[0].ID)
}

func TestGetUserGroups(t *testing.T) {
	groups := newFakeGroupStore()
	svc := NewGroupService(groups)
	groups.Create(&models.Group{ID: "g1", MemberIDs: []string{"user-a"}})
	groups.Create(&models.Group{ID: "g2", MemberIDs: []string{"user-b"}})

	mine, err := svc.GetUserGroups("user-a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "g1", mine[0].ID)
}
