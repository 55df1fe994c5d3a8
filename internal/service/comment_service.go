package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/travelshare/travelshare-backend/internal/models"
	"go.uber.org/zap"
)

// Comment excerpts in notifications are capped at this length.
const commentPreviewLength = 50

type CommentService struct {
	comments      CommentStore
	photos        PhotoStore
	notifications NotificationStore
	logger        *zap.Logger
}

func NewCommentService(
	comments CommentStore,
	photos PhotoStore,
	notifications NotificationStore,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		comments:      comments,
		photos:        photos,
		notifications: notifications,
		logger:        logger,
	}
}

func (s *CommentService) GetCommentsForPhoto(photoID string) ([]models.Comment, error) {
	return s.comments.GetByPhotoID(photoID)
}

// AddComment creates the comment, bumps the photo's comment counter
// atomically and notifies the photo author best-effort. Authors commenting
// on their own photos are not notified.
func (s *CommentService) AddComment(photoID, authorID, authorName, content string) (*models.Comment, error) {
	if authorID == "" {
		return nil, errors.New("must be logged in to comment")
	}

	photo, err := s.photos.GetByID(photoID)
	if err != nil {
		return nil, errors.New("photo not found")
	}

	comment := &models.Comment{
		ID:         uuid.NewString(),
		PhotoID:    photoID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    content,
		CreatedAt:  time.Now(),
	}

	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}

	if err := s.photos.IncrementComments(photoID); err != nil {
		s.logger.Warn("failed to increment comment counter",
			zap.String("photo_id", photoID),
			zap.Error(err))
	}

	if photo.AuthorID != authorID {
		preview := content
		if runes := []rune(preview); len(runes) > commentPreviewLength {
			preview = string(runes[:commentPreviewLength]) + "..."
		}
		notification := &models.Notification{
			ID:             uuid.NewString(),
			UserID:         photo.AuthorID,
			Type:           models.NotificationTypeNewComment,
			Title:          "New comment",
			Message:        authorName + " commented on your photo: " + preview,
			RelatedPhotoID: photoID,
			RelatedUserID:  authorID,
			Read:           false,
			CreatedAt:      time.Now(),
		}
		if err := s.notifications.Create(notification); err != nil {
			s.logger.Warn("failed to create comment notification",
				zap.String("photo_id", photoID),
				zap.Error(err))
		}
	}

	return comment, nil
}

// DeleteComment removes a comment and decrements the photo's counter.
// Only the comment author may delete.
func (s *CommentService) DeleteComment(commentID, userID string) error {
	if userID == "" {
		return errors.New("must be logged in to delete a comment")
	}

	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		return errors.New("comment not found")
	}

	if comment.AuthorID != userID {
		return errors.New("you can only delete your own comments")
	}

	if err := s.comments.Delete(commentID); err != nil {
		return err
	}

	if err := s.photos.DecrementComments(comment.PhotoID); err != nil {
		s.logger.Warn("failed to decrement comment counter",
			zap.String("photo_id", comment.PhotoID),
			zap.Error(err))
	}

	return nil
}
