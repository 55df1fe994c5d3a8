package service

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/travelshare/travelshare-backend/internal/models"
	"github.com/travelshare/travelshare-backend/pkg/planner"
	"github.com/travelshare/travelshare-backend/pkg/storage"
	"go.uber.org/zap"
)

// UploadError reports a failed image transfer. Nothing has been persisted
// when it is returned.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return "image upload failed: " + e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// URLResolutionError reports that the uploaded image's URL could not be
// retrieved. The blob is already in storage; no metadata has been written.
type URLResolutionError struct {
	Err error
}

func (e *URLResolutionError) Error() string {
	return "image URL resolution failed: " + e.Err.Error()
}

func (e *URLResolutionError) Unwrap() error {
	return e.Err
}

type PhotoService struct {
	photos        PhotoStore
	comments      CommentStore
	notifications NotificationStore
	reports       ReportStore
	storage       storage.BlobStorage
	planner       RoutePlanner
	logger        *zap.Logger
}

func NewPhotoService(
	photos PhotoStore,
	comments CommentStore,
	notifications NotificationStore,
	reports ReportStore,
	blobStorage storage.BlobStorage,
	routePlanner RoutePlanner,
	logger *zap.Logger,
) *PhotoService {
	return &PhotoService{
		photos:        photos,
		comments:      comments,
		notifications: notifications,
		reports:       reports,
		storage:       blobStorage,
		planner:       routePlanner,
		logger:        logger,
	}
}

// Photos with at least this many reports are surfaced for moderation.
const reportReviewThreshold = 3

// blobKey is the storage path convention for photo images.
func blobKey(photoID string) string {
	return "photos/" + photoID + ".jpg"
}

// PublishPhoto turns a draft into a durable record. The image is uploaded
// and its URL resolved before any metadata is written, so a record never
// exists without a reachable image. A failure after upload leaves an
// orphaned blob behind; no compensation is attempted.
func (s *PhotoService) PublishPhoto(authorID, authorName string, req models.PublishPhotoRequest, image io.Reader) (*models.PublishPhotoResponse, error) {
	if authorID == "" {
		return nil, errors.New("must be logged in to publish a photo")
	}
	if image == nil {
		return nil, errors.New("no image selected")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, errors.New("description is required")
	}

	var takenDate *time.Time
	if req.TakenDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.TakenDate)
		if err != nil {
			return nil, errors.New("invalid taken date")
		}
		takenDate = &parsed
	}

	photoID := uuid.NewString()
	key := blobKey(photoID)

	// Step 1: upload.
	if err := s.storage.Upload(key, image); err != nil {
		return nil, &UploadError{Err: err}
	}

	// Step 2: resolve the durable URL.
	imageURL, err := s.storage.ResolveURL(key)
	if err != nil {
		return nil, &URLResolutionError{Err: err}
	}

	// Step 3: persist the metadata record, schema-complete.
	photoType := req.PhotoType
	if photoType == "" {
		photoType = models.PhotoTypeOther
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	sharedWith := req.SharedWithGroupIDs
	if sharedWith == nil {
		sharedWith = []string{}
	}

	now := time.Now()
	photo := &models.Photo{
		ID:          photoID,
		AuthorID:    authorID,
		AuthorName:  authorName,
		ImageURL:    imageURL,
		Description: req.Description,
		HasLocation: req.HasLocation,
		Location: models.Location{
			Latitude:            req.Latitude,
			Longitude:           req.Longitude,
			Address:             req.Address,
			City:                req.City,
			Country:             req.Country,
			IsExact:             req.IsExact,
			ApproximationRadius: req.ApproximationRadius,
		},
		TakenDate:          takenDate,
		Period:             req.Period,
		Tags:               tags,
		PhotoType:          photoType,
		HowToGetThere:      req.HowToGetThere,
		LikesCount:         0,
		CommentsCount:      0,
		ReportsCount:       0,
		IsPublic:           req.IsPublic,
		SharedWithGroupIDs: sharedWith,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.photos.Create(photo); err != nil {
		return nil, err
	}

	return &models.PublishPhotoResponse{
		PhotoID:  photoID,
		ImageURL: imageURL,
	}, nil
}

// GetRandomPhotos returns the public discovery feed, newest first.
func (s *PhotoService) GetRandomPhotos(limit int) ([]models.Photo, error) {
	photos, err := s.photos.GetPublic(limit)
	if err != nil {
		return nil, err
	}
	models.SortPhotosByDate(photos)
	return photos, nil
}

func (s *PhotoService) GetPhotosByType(photoType string) ([]models.Photo, error) {
	photos, err := s.photos.GetByType(photoType)
	if err != nil {
		return nil, err
	}
	models.SortPhotosByDate(photos)
	return photos, nil
}

func (s *PhotoService) GetPhotosByAuthor(authorID string) ([]models.Photo, error) {
	photos, err := s.photos.GetByAuthor(authorID)
	if err != nil {
		return nil, err
	}
	models.SortPhotosByDate(photos)
	return photos, nil
}

func (s *PhotoService) GetGroupPhotos(groupID string) ([]models.Photo, error) {
	photos, err := s.photos.GetBySharedGroup(groupID)
	if err != nil {
		return nil, err
	}
	models.SortPhotosByDate(photos)
	return photos, nil
}

// SearchPhotosByLocation matches the query against city and country,
// case-insensitively.
func (s *PhotoService) SearchPhotosByLocation(query string) ([]models.Photo, error) {
	photos, err := s.photos.GetPublic(0)
	if err != nil {
		return nil, err
	}

	lowerQuery := strings.ToLower(query)
	var matches []models.Photo
	for _, photo := range photos {
		if strings.Contains(strings.ToLower(photo.Location.City), lowerQuery) ||
			strings.Contains(strings.ToLower(photo.Location.Country), lowerQuery) {
			matches = append(matches, photo)
		}
	}

	models.SortPhotosByDate(matches)
	return matches, nil
}

func (s *PhotoService) GetPhotoDetails(photoID string) (*models.Photo, error) {
	photo, err := s.photos.GetByID(photoID)
	if err != nil {
		return nil, errors.New("photo not found")
	}
	return photo, nil
}

// LikePhoto increments the like counter atomically and notifies the photo
// author. The notification is best-effort and never fails the like.
func (s *PhotoService) LikePhoto(photoID, likerID, likerName string) error {
	if likerID == "" {
		return errors.New("must be logged in to like a photo")
	}

	photo, err := s.photos.GetByID(photoID)
	if err != nil {
		return errors.New("photo not found")
	}

	if err := s.photos.IncrementLikes(photoID, likerID); err != nil {
		return err
	}

	if photo.AuthorID != likerID {
		notification := &models.Notification{
			ID:             uuid.NewString(),
			UserID:         photo.AuthorID,
			Type:           models.NotificationTypeNewLike,
			Title:          "New like",
			Message:        likerName + " liked your photo",
			RelatedPhotoID: photoID,
			RelatedUserID:  likerID,
			Read:           false,
			CreatedAt:      time.Now(),
		}
		if err := s.notifications.Create(notification); err != nil {
			s.logger.Warn("failed to create like notification",
				zap.String("photo_id", photoID),
				zap.Error(err))
		}
	}

	return nil
}

func (s *PhotoService) UnlikePhoto(photoID string) error {
	return s.photos.DecrementLikes(photoID)
}

// ReportPhoto records a report and bumps the photo's report counter.
func (s *PhotoService) ReportPhoto(photoID, reporterID, reason string) error {
	if reporterID == "" {
		return errors.New("must be logged in to report a photo")
	}

	report := &models.Report{
		ID:         uuid.NewString(),
		PhotoID:    photoID,
		ReporterID: reporterID,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}

	if err := s.reports.Create(report); err != nil {
		return err
	}

	if err := s.photos.IncrementReports(photoID); err != nil {
		s.logger.Warn("failed to increment report counter",
			zap.String("photo_id", photoID),
			zap.Error(err))
	}

	if count, err := s.reports.CountByPhotoID(photoID); err == nil && count >= reportReviewThreshold {
		s.logger.Warn("photo reached report review threshold",
			zap.String("photo_id", photoID),
			zap.Int64("report_count", count))
	}

	return nil
}

// DeletePhoto removes a photo. Only the author may delete; the blob delete
// and the comment/notification cascade are best-effort.
func (s *PhotoService) DeletePhoto(photoID, userID string) error {
	if userID == "" {
		return errors.New("must be logged in to delete a photo")
	}

	photo, err := s.photos.GetByID(photoID)
	if err != nil {
		return errors.New("photo not found")
	}

	if photo.AuthorID != userID {
		return errors.New("you can only delete your own photos")
	}

	if photo.ImageURL != "" {
		if err := s.storage.Delete(blobKey(photoID)); err != nil {
			s.logger.Warn("failed to delete photo blob",
				zap.String("photo_id", photoID),
				zap.Error(err))
		}
	}

	if err := s.photos.Delete(photoID); err != nil {
		return err
	}

	if err := s.comments.DeleteByPhotoID(photoID); err != nil {
		s.logger.Warn("failed to delete photo comments",
			zap.String("photo_id", photoID),
			zap.Error(err))
	}
	if err := s.notifications.DeleteByPhotoID(photoID); err != nil {
		s.logger.Warn("failed to delete photo notifications",
			zap.String("photo_id", photoID),
			zap.Error(err))
	}

	return nil
}

// SharePhotoToGroups merges the given group ids into the photo's shared
// list without duplicates.
func (s *PhotoService) SharePhotoToGroups(photoID string, groupIDs []string) error {
	if len(groupIDs) == 0 {
		return errors.New("select at least one group")
	}

	photo, err := s.photos.GetByID(photoID)
	if err != nil {
		return errors.New("photo not found")
	}

	updated := append([]string{}, photo.SharedWithGroupIDs...)
	for _, groupID := range groupIDs {
		exists := false
		for _, current := range updated {
			if current == groupID {
				exists = true
				break
			}
		}
		if !exists {
			updated = append(updated, groupID)
		}
	}

	return s.photos.UpdateSharedGroups(photoID, updated)
}

func (s *PhotoService) UnsharePhotoFromGroup(photoID, groupID string) error {
	return s.photos.RemoveSharedGroup(photoID, groupID)
}

// ExportToPlanner hands the photo's location to the external travel
// planner as a waypoint. An unreachable or uninstalled planner surfaces
// as a user-visible message instead of a raw transport error.
func (s *PhotoService) ExportToPlanner(photoID string) error {
	photo, err := s.photos.GetByID(photoID)
	if err != nil {
		return errors.New("photo not found")
	}
	if !photo.HasLocation {
		return errors.New("photo has no location to export")
	}

	wp := planner.Waypoint{
		Latitude:    photo.Location.Latitude,
		Longitude:   photo.Location.Longitude,
		Name:        photo.Location.FormattedLocation(),
		Description: photo.Description,
		PointType:   photo.PhotoType,
	}

	if err := s.planner.AddWaypoint(wp); err != nil {
		if errors.Is(err, planner.ErrTargetUnavailable) {
			s.logger.Warn("travel planner unavailable",
				zap.String("photo_id", photoID),
				zap.Error(err))
			return errors.New("travel planner is not available")
		}
		return err
	}
	return nil
}
