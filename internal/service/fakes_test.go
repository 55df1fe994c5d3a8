package service

import (
	"errors"
	"io"

	"github.com/travelshare/travelshare-backend/internal/models"
	"github.com/travelshare/travelshare-backend/pkg/planner"
)

// In-memory fakes for the store contracts.

type fakeBlobStorage struct {
	uploads     map[string][]byte
	failUpload  bool
	failResolve bool
	failDelete  bool
	deleted     []string
}

func newFakeBlobStorage() *fakeBlobStorage {
	return &fakeBlobStorage{uploads: make(map[string][]byte)}
}

func (f *fakeBlobStorage) Upload(key string, reader io.Reader) error {
	if f.failUpload {
		return errors.New("transfer failed")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.uploads[key] = data
	return nil
}

func (f *fakeBlobStorage) ResolveURL(key string) (string, error) {
	if f.failResolve {
		return "", errors.New("head request failed")
	}
	if _, ok := f.uploads[key]; !ok {
		return "", errors.New("object not found")
	}
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeBlobStorage) Delete(key string) error {
	if f.failDelete {
		return errors.New("delete failed")
	}
	delete(f.uploads, key)
	f.deleted = append(f.deleted, key)
	return nil
}

type fakePhotoStore struct {
	photos    map[string]*models.Photo
	createErr error
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{photos: make(map[string]*models.Photo)}
}

func (f *fakePhotoStore) Create(photo *models.Photo) error {
	if f.createErr != nil {
		return f.createErr
	}
	copied := *photo
	f.photos[photo.ID] = &copied
	return nil
}

func (f *fakePhotoStore) GetByID(id string) (*models.Photo, error) {
	photo, ok := f.photos[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *photo
	return &copied, nil
}

func (f *fakePhotoStore) GetPublic(limit int) ([]models.Photo, error) {
	var photos []models.Photo
	for _, photo := range f.photos {
		if photo.IsPublic {
			photos = append(photos, *photo)
		}
	}
	if limit > 0 && len(photos) > limit {
		photos = photos[:limit]
	}
	return photos, nil
}

func (f *fakePhotoStore) GetByType(photoType string) ([]models.Photo, error) {
	var photos []models.Photo
	for _, photo := range f.photos {
		if photo.IsPublic && photo.PhotoType == photoType {
			photos = append(photos, *photo)
		}
	}
	return photos, nil
}

func (f *fakePhotoStore) GetByAuthor(authorID string) ([]models.Photo, error) {
	var photos []models.Photo
	for _, photo := range f.photos {
		if photo.AuthorID == authorID {
			photos = append(photos, *photo)
		}
	}
	return photos, nil
}

func (f *fakePhotoStore) GetBySharedGroup(groupID string) ([]models.Photo, error) {
	var photos []models.Photo
	for _, photo := range f.photos {
		for _, id := range photo.SharedWithGroupIDs {
			if id == groupID {
				photos = append(photos, *photo)
				break
			}
		}
	}
	return photos, nil
}

func (f *fakePhotoStore) IncrementLikes(photoID, likerID string) error {
	photo, ok := f.photos[photoID]
	if !ok {
		return errors.New("record not found")
	}
	photo.LikesCount++
	photo.LastLikerID = likerID
	return nil
}

func (f *fakePhotoStore) DecrementLikes(photoID string) error {
	photo, ok := f.photos[photoID]
	if !ok {
		return errors.New("record not found")
	}
	photo.LikesCount--
	return nil
}

func (f *fakePhotoStore) IncrementComments(photoID string) error {
	photo, ok := f.photos[photoID]
	if !ok {
		return errors.New("record not found")
	}
	photo.CommentsCount++
	return nil
}

func (f *fakePhotoStore) DecrementComments(photoID string) error {
	photo, ok := f.photos[photoID]
	if !ok {
		return errors.New("record not found")
	}
	photo.CommentsCount--
	return nil
}

func (f *fakePhotoStore) IncrementReports(photoID string) error {
	photo, ok := f.photos[photoID]
	if !ok {
		return errors.New("record not found")
	}
	photo.ReportsCount++
	return nil
}

func (f *fakePhotoStore) UpdateSharedGroups(photoID string, groupIDs []string) error {
	photo, ok := f.photos[photoID]
	if !ok {
		return errors.New("record not found")
	}
	photo.SharedWithGroupIDs = groupIDs
	return nil
}

func (f *fakePhotoStore) RemoveSharedGroup(photoID, groupID string) error {
	photo, ok := f.photos[photoID]
	if !ok {
		return errors.New("record not found")
	}
	for i, id := range photo.SharedWithGroupIDs {
		if id == groupID {
			photo.SharedWithGroupIDs = append(photo.SharedWithGroupIDs[:i], photo.SharedWithGroupIDs[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakePhotoStore) Delete(id string) error {
	delete(f.photos, id)
	return nil
}

type fakeCommentStore struct {
	comments map[string]*models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[string]*models.Comment)}
}

func (f *fakeCommentStore) Create(comment *models.Comment) error {
	copied := *comment
	f.comments[comment.ID] = &copied
	return nil
}

func (f *fakeCommentStore) GetByID(id string) (*models.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *comment
	return &copied, nil
}

func (f *fakeCommentStore) GetByPhotoID(photoID string) ([]models.Comment, error) {
	var comments []models.Comment
	for _, comment := range f.comments {
		if comment.PhotoID == photoID {
			comments = append(comments, *comment)
		}
	}
	return comments, nil
}

func (f *fakeCommentStore) Delete(id string) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentStore) DeleteByPhotoID(photoID string) error {
	for id, comment := range f.comments {
		if comment.PhotoID == photoID {
			delete(f.comments, id)
		}
	}
	return nil
}

type fakeNotificationStore struct {
	notifications []models.Notification
	createErr     error
}

func (f *fakeNotificationStore) Create(notification *models.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.notifications = append(f.notifications, *notification)
	return nil
}

func (f *fakeNotificationStore) GetByUserID(userID string, limit int) ([]models.Notification, error) {
	var result []models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeNotificationStore) MarkRead(id string) error {
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications[i].Read = true
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeNotificationStore) MarkAllRead(userID string) error {
	for i := range f.notifications {
		if f.notifications[i].UserID == userID {
			f.notifications[i].Read = true
		}
	}
	return nil
}

func (f *fakeNotificationStore) CountUnread(userID string) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationStore) DeleteByPhotoID(photoID string) error {
	var kept []models.Notification
	for _, n := range f.notifications {
		if n.RelatedPhotoID != photoID {
			kept = append(kept, n)
		}
	}
	f.notifications = kept
	return nil
}

type fakeReportStore struct {
	reports []models.Report
}

func (f *fakeReportStore) Create(report *models.Report) error {
	f.reports = append(f.reports, *report)
	return nil
}

func (f *fakeReportStore) CountByPhotoID(photoID string) (int64, error) {
	var count int64
	for _, report := range f.reports {
		if report.PhotoID == photoID {
			count++
		}
	}
	return count, nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(user *models.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeUserStore) EmailExists(email string) (bool, error) {
	_, err := f.GetByEmail(email)
	return err == nil, nil
}

func (f *fakeUserStore) Update(user *models.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) UpdateFCMToken(userID, token string) error {
	user, ok := f.users[userID]
	if !ok {
		return errors.New("record not found")
	}
	user.FCMToken = token
	return nil
}

type fakeGroupStore struct {
	groups map[string]*models.Group
}

func newFakeGroupStore() *fakeGroupStore {
	return &fakeGroupStore{groups: make(map[string]*models.Group)}
}

func (f *fakeGroupStore) Create(group *models.Group) error {
	copied := *group
	f.groups[group.ID] = &copied
	return nil
}

func (f *fakeGroupStore) GetByID(id string) (*models.Group, error) {
	group, ok := f.groups[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *group
	return &copied, nil
}

func (f *fakeGroupStore) GetAll() ([]models.Group, error) {
	var groups []models.Group
	for _, group := range f.groups {
		groups = append(groups, *group)
	}
	return groups, nil
}

func (f *fakeGroupStore) GetByMember(userID string) ([]models.Group, error) {
	var groups []models.Group
	for _, group := range f.groups {
		if group.IsMember(userID) {
			groups = append(groups, *group)
		}
	}
	return groups, nil
}

func (f *fakeGroupStore) AddMember(groupID, userID string) error {
	group, ok := f.groups[groupID]
	if !ok {
		return errors.New("record not found")
	}
	group.AddMember(userID)
	return nil
}

func (f *fakeGroupStore) RemoveMember(groupID, userID string) error {
	group, ok := f.groups[groupID]
	if !ok {
		return errors.New("record not found")
	}
	group.RemoveMember(userID)
	return nil
}

type fakePlanner struct {
	waypoints []planner.Waypoint
	err       error
}

func (f *fakePlanner) AddWaypoint(wp planner.Waypoint) error {
	if f.err != nil {
		return f.err
	}
	f.waypoints = append(f.waypoints, wp)
	return nil
}

type fakeSubscriber struct {
	topics []string
	tokens []string
	err    error
}

func (f *fakeSubscriber) Subscribe(topic, token string) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, topic)
	f.tokens = append(f.tokens, token)
	return nil
}
