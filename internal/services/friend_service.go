package services

import (
	"errors"
	"fmt"

	"github.com/friendfinder/backend/internal/mail"
	"github.com/friendfinder/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrFriendRequestExists   = errors.New("friend request already exists between these users")
	ErrFriendRequestNotFound = errors.New("friend request not found")
	ErrSelfFriendRequest     = errors.New("cannot send a friend request to yourself")
)

const friendsPageSize = 12

// FriendService manages the directed request records and derives friendship
// from them: two users are friends iff an ACCEPTED request connects them in
// either direction.
type FriendService struct {
	db     *gorm.DB
	mailer mail.Mailer
}

func NewFriendService(db *gorm.DB, mailer mail.Mailer) *FriendService {
	return &FriendService{db: db, mailer: mailer}
}

// Send inserts a PENDING request unless one already exists in either
// direction. The notification mail to the receiver fires regardless of
// whether the insert happened.
func (s *FriendService) Send(senderID, receiverID uint) (*models.FriendRequest, error) {
	if senderID == receiverID {
		return nil, ErrSelfFriendRequest
	}

	var sender, receiver models.User
	if err := s.db.First(&sender, senderID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if err := s.db.First(&receiver, receiverID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	exists := s.findDirectional(senderID, receiverID) != nil ||
		s.findDirectional(receiverID, senderID) != nil

	var request *models.FriendRequest
	if !exists {
		request = &models.FriendRequest{
			SenderID:   senderID,
			ReceiverID: receiverID,
			Status:     models.FriendStatusPending,
		}
		if err := s.db.Create(request).Error; err != nil {
			return nil, fmt.Errorf("failed to create friend request: %w", err)
		}
	}

	// The receiver is notified even when the insert was skipped.
	s.mailer.Send(receiver.Email, "You have a new friend request",
		fmt.Sprintf("Hi, %s. You have a friend request from %s %s", receiver.Name, sender.Name, sender.Surname))

	if exists {
		return nil, ErrFriendRequestExists
	}
	return request, nil
}

// findDirectional is a point lookup in one direction only; callers that
// need "any request between a and b" must check both orders.
func (s *FriendService) findDirectional(senderID, receiverID uint) *models.FriendRequest {
	var request models.FriendRequest
	if err := s.db.Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		First(&request).Error; err != nil {
		return nil
	}
	return &request
}

// FindBetween returns the request connecting the two users in the given
// direction, or ErrFriendRequestNotFound.
func (s *FriendService) FindBetween(senderID, receiverID uint) (*models.FriendRequest, error) {
	request := s.findDirectional(senderID, receiverID)
	if request == nil {
		return nil, ErrFriendRequestNotFound
	}
	return request, nil
}

// Accept sets the request to ACCEPTED unconditionally and notifies the
// original sender. Re-accepting is a no-op in effect.
func (s *FriendService) Accept(senderID, receiverID uint) (*models.FriendRequest, error) {
	request := s.findDirectional(senderID, receiverID)
	if request == nil {
		return nil, ErrFriendRequestNotFound
	}

	request.Status = models.FriendStatusAccepted
	if err := s.db.Model(request).Update("status", models.FriendStatusAccepted).Error; err != nil {
		return nil, fmt.Errorf("failed to accept friend request: %w", err)
	}

	var sender, receiver models.User
	if s.db.First(&sender, request.SenderID).Error == nil &&
		s.db.First(&receiver, request.ReceiverID).Error == nil {
		s.mailer.Send(sender.Email, "Your friend request is accepted",
			fmt.Sprintf("Hi, %s. %s accepted your request.", sender.Name, receiver.Name))
	}

	return request, nil
}

// Remove deletes whichever request exists between the two users, trying
// a→b before b→a.
func (s *FriendService) Remove(userA, userB uint) error {
	if request := s.findDirectional(userA, userB); request != nil {
		return s.deleteByID(request.ID)
	}
	if request := s.findDirectional(userB, userA); request != nil {
		return s.deleteByID(request.ID)
	}
	return ErrFriendRequestNotFound
}

// deleteByID reports not-found when the row was already removed by a
// concurrent call, via the affected-rows count.
func (s *FriendService) deleteByID(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&models.FriendRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFriendRequestNotFound
	}
	return nil
}

// FriendsOf lists the counterpart user of every accepted request touching
// the given user, in one indexed query.
func (s *FriendService) FriendsOf(userID uint) ([]models.User, error) {
	var requests []models.FriendRequest
	err := s.db.
		Where("status = ? AND (sender_id = ? OR receiver_id = ?)", models.FriendStatusAccepted, userID, userID).
		Preload("Sender").
		Preload("Receiver").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	friends := make([]models.User, 0, len(requests))
	for _, r := range requests {
		if r.SenderID == userID {
			friends = append(friends, r.Receiver)
		} else {
			friends = append(friends, r.Sender)
		}
	}
	return friends, nil
}

// FriendCount counts accepted requests touching the user without loading them.
func (s *FriendService) FriendCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.FriendRequest{}).
		Where("status = ? AND (sender_id = ? OR receiver_id = ?)", models.FriendStatusAccepted, userID, userID).
		Count(&count).Error
	return count, err
}

// FriendsPage pages through the friend list, twelve per page, newest user
// ids first.
func (s *FriendService) FriendsPage(userID uint, page int) ([]models.User, int64, error) {
	friends, err := s.FriendsOf(userID)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, 0, len(friends))
	for _, f := range friends {
		ids = append(ids, f.ID)
	}

	var users []models.User
	if len(ids) == 0 {
		return users, 0, nil
	}
	err = s.db.Where("id IN ?", ids).
		Order("id DESC").
		Offset((page - 1) * friendsPageSize).
		Limit(friendsPageSize).
		Find(&users).Error
	return users, int64(len(ids)), err
}

// IncomingSenders lists the senders of all PENDING requests addressed to
// the receiver, for the incoming-requests view.
func (s *FriendService) IncomingSenders(receiverID uint) ([]models.User, error) {
	var requests []models.FriendRequest
	err := s.db.
		Where("receiver_id = ? AND status = ?", receiverID, models.FriendStatusPending).
		Preload("Sender").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	senders := make([]models.User, 0, len(requests))
	for _, r := range requests {
		senders = append(senders, r.Sender)
	}
	return senders, nil
}

// AddFriendCandidates lists every user with no request in either direction
// relative to the viewer, excluding the viewer.
func (s *FriendService) AddFriendCandidates(viewerID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Where("id <> ?", viewerID).
		Where("id NOT IN (?)",
			s.db.Model(&models.FriendRequest{}).
				Select("sender_id").
				Where("receiver_id = ?", viewerID)).
		Where("id NOT IN (?)",
			s.db.Model(&models.FriendRequest{}).
				Select("receiver_id").
				Where("sender_id = ?", viewerID)).
		Find(&users).Error
	return users, err
}
