package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/travelshare/travelshare-backend/internal/models"
)

type GroupService struct {
	groups GroupStore
}

func NewGroupService(groups GroupStore) *GroupService {
	return &GroupService{
		groups: groups,
	}
}

func (s *GroupService) GetUserGroups(userID string) ([]models.Group, error) {
	return s.groups.GetByMember(userID)
}

// CreateGroup creates a group owned by the caller, who becomes its first
// member.
func (s *GroupService) CreateGroup(ownerID string, req models.CreateGroupRequest) (*models.Group, error) {
	if ownerID == "" {
		return nil, errors.New("must be logged in to create a group")
	}

	group := &models.Group{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		OwnerID:     ownerID,
		MemberIDs:   []string{ownerID},
		CreatedAt:   time.Now(),
	}

	if err := s.groups.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetGroup(groupID string) (*models.Group, error) {
	group, err := s.groups.GetByID(groupID)
	if err != nil {
		return nil, errors.New("group not found")
	}
	return group, nil
}

// JoinGroup adds the user to the group. Joining twice is a no-op.
func (s *GroupService) JoinGroup(groupID, userID string) error {
	if userID == "" {
		return errors.New("must be logged in to join a group")
	}
	if _, err := s.groups.GetByID(groupID); err != nil {
		return errors.New("group not found")
	}
	return s.groups.AddMember(groupID, userID)
}

// LeaveGroup removes the user from the group. Leaving a group the user is
// not in is a no-op.
func (s *GroupService) LeaveGroup(groupID, userID string) error {
	if userID == "" {
		return errors.New("must be logged in to leave a group")
	}
	return s.groups.RemoveMember(groupID, userID)
}

// SearchGroups filters groups by name or description, case-insensitively.
func (s *GroupService) SearchGroups(query string) ([]models.Group, error) {
	groups, err := s.groups.GetAll()
	if err != nil {
		return nil, err
	}

	lowerQuery := strings.ToLower(query)
	var matches []models.Group
	for _, group := range groups {
		if strings.Contains(strings.ToLower(group.Name), lowerQuery) ||
			strings.Contains(strings.ToLower(group.Description), lowerQuery) {
			matches = append(matches, group)
		}
	}
	return matches, nil
}
