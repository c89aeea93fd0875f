package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/friendfinder/backend/internal/models"
	"github.com/friendfinder/backend/internal/storage"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

const (
	feedPageSize      = 5
	mediaFeedPageSize = 10
	timelinePageSize  = 5
)

// Upload describes one incoming media file.
type Upload struct {
	FileName string
	Reader   io.Reader
	Size     int64
}

// PostService owns posts and assembles the friend feed.
type PostService struct {
	db       *gorm.DB
	friends  *FriendService
	activity *ActivityService
	store    storage.Storage
}

func NewPostService(db *gorm.DB, friends *FriendService, activity *ActivityService, store storage.Storage) *PostService {
	return &PostService{db: db, friends: friends, activity: activity, store: store}
}

// FriendPosts returns every post authored by the user's friends, newest
// first, in a single user_id IN query.
func (s *PostService) FriendPosts(userID uint) ([]models.Post, error) {
	friends, err := s.friends.FriendsOf(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(friends))
	for _, f := range friends {
		ids = append(ids, f.ID)
	}

	var posts []models.Post
	if len(ids) == 0 {
		return posts, nil
	}
	err = s.db.Where("user_id IN ?", ids).
		Preload("User").
		Order("id DESC").
		Find(&posts).Error
	return posts, err
}

// FeedPage pages the friend feed, five per page, newest first. The friend
// ids are taken from the friend-post union rather than the friend list, so
// a friend with no posts never widens the query.
func (s *PostService) FeedPage(viewerID uint, page int) ([]models.Post, int64, error) {
	union, err := s.FriendPosts(viewerID)
	if err != nil {
		return nil, 0, err
	}

	friendIDs := make([]uint, 0, len(union))
	for _, p := range union {
		friendIDs = append(friendIDs, p.UserID)
	}
	if len(friendIDs) == 0 {
		return nil, 0, nil
	}

	var total int64
	if err := s.db.Model(&models.Post{}).Where("user_id IN ?", friendIDs).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err = s.db.Where("user_id IN ?", friendIDs).
		Preload("User").
		Order("id DESC").
		Offset((page - 1) * feedPageSize).
		Limit(feedPageSize).
		Find(&posts).Error
	return posts, total, err
}

// ImageFeedPage pages friend posts by the image filenames present in the
// union, ten per page.
func (s *PostService) ImageFeedPage(viewerID uint, page int) ([]models.Post, int64, error) {
	union, err := s.FriendPosts(viewerID)
	if err != nil {
		return nil, 0, err
	}
	names := make([]string, 0, len(union))
	for _, p := range union {
		// Video-only posts store an empty image name; matching on it
		// would pull in unrelated posts.
		if p.ImageName != "" {
			names = append(names, p.ImageName)
		}
	}
	return s.pageByColumn(names, "image_name", page)
}

// VideoFeedPage is ImageFeedPage for video filenames.
func (s *PostService) VideoFeedPage(viewerID uint, page int) ([]models.Post, int64, error) {
	union, err := s.FriendPosts(viewerID)
	if err != nil {
		return nil, 0, err
	}
	names := make([]string, 0, len(union))
	for _, p := range union {
		if p.VideoName != "" {
			names = append(names, p.VideoName)
		}
	}
	return s.pageByColumn(names, "video_name", page)
}

func (s *PostService) pageByColumn(names []string, column string, page int) ([]models.Post, int64, error) {
	if len(names) == 0 {
		return nil, 0, nil
	}

	var total int64
	if err := s.db.Model(&models.Post{}).Where(column+" IN ?", names).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := s.db.Where(column+" IN ?", names).
		Preload("User").
		Order("id DESC").
		Offset((page - 1) * mediaFeedPageSize).
		Limit(mediaFeedPageSize).
		Find(&posts).Error
	return posts, total, err
}

// TimelinePage pages one user's own posts, five per page, newest first.
func (s *PostService) TimelinePage(userID uint, page int) ([]models.Post, int64, error) {
	var total int64
	if err := s.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := s.db.Where("user_id = ?", userID).
		Preload("User").
		Order("id DESC").
		Offset((page - 1) * timelinePageSize).
		Limit(timelinePageSize).
		Find(&posts).Error
	return posts, total, err
}

// Create stores the uploaded media, stamps the post, and records the
// matching activity entry. An image upload wins the activity wording when
// both files are present.
func (s *PostService) Create(ctx context.Context, ownerID uint, description string, image, video *Upload) (*models.Post, error) {
	if image == nil && video == nil {
		return nil, errors.New("post needs an image or a video")
	}

	var imageName, videoName string
	var err error
	if image != nil {
		imageName, err = s.store.Upload(ctx, "posts/images", image.FileName, image.Reader, image.Size)
		if err != nil {
			return nil, fmt.Errorf("image upload: %w", err)
		}
	}
	if video != nil {
		videoName, err = s.store.Upload(ctx, "posts/videos", video.FileName, video.Reader, video.Size)
		if err != nil {
			return nil, fmt.Errorf("video upload: %w", err)
		}
	}

	post := models.Post{
		Description: description,
		ImageName:   imageName,
		VideoName:   videoName,
		PostedAt:    time.Now(),
		UserID:      ownerID,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if imageName != "" {
		s.recordActivity(ownerID, "posted a photo")
	} else {
		s.recordActivity(ownerID, "posted a video")
	}

	return &post, nil
}

// recordActivity never fails the post; the log is display-only.
func (s *PostService) recordActivity(userID uint, text string) {
	if err := s.activity.Record(userID, text); err != nil {
		slog.Error("failed to record activity", "user_id", userID, "action", text, "error", err)
	}
}

func (s *PostService) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, id).Error; err != nil {
		return nil, ErrPostNotFound
	}
	return &post, nil
}

// Delete removes a post and its dependents. Missing posts are reported,
// not swallowed. Stored media is removed best-effort after the rows.
func (s *PostService) Delete(id uint) error {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		return ErrPostNotFound
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("post_id = ?", id).Delete(&models.PostLike{})
		tx.Where("post_id = ?", id).Delete(&models.Comment{})
		return tx.Delete(&post).Error
	})
	if err != nil {
		return err
	}

	for _, name := range []string{post.ImageName, post.VideoName} {
		if name == "" {
			continue
		}
		if err := s.store.Delete(context.Background(), name); err != nil {
			slog.Error("failed to delete post media", "post_id", id, "object", name, "error", err)
		}
	}
	return nil
}

// MediaURL resolves a stored object name into a short-lived presigned URL.
func (s *PostService) MediaURL(ctx context.Context, objectName string) (string, error) {
	return s.store.URL(ctx, objectName, 15*time.Minute)
}
