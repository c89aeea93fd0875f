package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCreate_RejectsSelf(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewChatService(db)

	_, err := svc.Create(3, 3)
	assert.ErrorIs(t, err, ErrSelfChat)
}

func TestChatCreate_OpensChat(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewChatService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(userRows().AddRow(2, "Bob", "Baker", "bob@example.com"))
	mock.ExpectQuery(`SELECT (.+) FROM "chats" WHERE first_user_id = \$1 AND second_user_id = \$2`).
		WithArgs(1, 2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT (.+) FROM "chats" WHERE first_user_id = \$1 AND second_user_id = \$2`).
		WithArgs(2, 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "chats"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	chat, err := svc.Create(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(5), chat.ID)
	assert.Equal(t, uint(1), chat.FirstUserID)
	assert.Equal(t, uint(2), chat.SecondUserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatCreate_RejectsReversedDuplicate(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewChatService(db)

	// A chat opened earlier by user 2 toward user 1 blocks 1 -> 2 as well.
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(userRows().AddRow(2, "Bob", "Baker", "bob@example.com"))
	mock.ExpectQuery(`SELECT (.+) FROM "chats" WHERE first_user_id = \$1 AND second_user_id = \$2`).
		WithArgs(1, 2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT (.+) FROM "chats" WHERE first_user_id = \$1 AND second_user_id = \$2`).
		WithArgs(2, 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_user_id", "second_user_id"}).
			AddRow(5, 2, 1))

	_, err := svc.Create(1, 2)
	assert.ErrorIs(t, err, ErrChatExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatCreate_UnknownUser(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewChatService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(userRows())

	_, err := svc.Create(1, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendMessage_RejectsEmptyContent(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewChatService(db)

	_, err := svc.SendMessage(1, 2, 5, "")
	assert.ErrorIs(t, err, ErrMessageRejected)
}

func TestSendMessage_StampsAndStores(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewChatService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(userRows().AddRow(2, "Bob", "Baker", "bob@example.com"))
	mock.ExpectQuery(`SELECT (.+) FROM "chats" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_user_id", "second_user_id"}).
			AddRow(5, 1, 2))
	mock.ExpectQuery(`INSERT INTO "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))

	message, err := svc.SendMessage(1, 2, 5, "hello")
	require.NoError(t, err)
	assert.Equal(t, uint(31), message.ID)
	assert.Equal(t, uint(5), message.ChatID)
	assert.False(t, message.SentAt.IsZero())
	assert.True(t, message.SentBy(1))
	assert.False(t, message.SentBy(2))

	assert.NoError(t, mock.ExpectationsWereMet())
}
