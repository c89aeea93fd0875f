package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentAdd_RequiresText(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewCommentService(db, NewActivityService(db))

	_, err := svc.Add(1, 4, "")
	assert.Error(t, err)
}

func TestCommentAdd_MissingPost(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewCommentService(db, NewActivityService(db))

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Add(1, 99, "nice post")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentAdd_StoresAndLogsActivity(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewCommentService(db, NewActivityService(db))

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(4, 2))
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectQuery(`INSERT INTO "user_activities"`).
		WithArgs(1, "commented on a post", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	comment, err := svc.Add(1, 4, "nice post")
	require.NoError(t, err)
	assert.Equal(t, uint(8), comment.ID)
	assert.False(t, comment.CommentedAt.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentAdd_ActivityFailureDoesNotFailComment(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewCommentService(db, NewActivityService(db))

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(4, 2))
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectQuery(`INSERT INTO "user_activities"`).
		WillReturnError(assert.AnError)

	comment, err := svc.Add(1, 4, "nice post")
	require.NoError(t, err)
	assert.NotNil(t, comment)
}

func TestCommentDelete_Missing(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewCommentService(db, NewActivityService(db))

	mock.ExpectQuery(`SELECT (.+) FROM "comments" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.Delete(99)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
