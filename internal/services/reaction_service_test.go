package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/friendfinder/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReact_FirstLikeCreatesRowAndBumpsCounter(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewReactionService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "like_count", "dislike_count"}).AddRow(4, 0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM "post_likes" WHERE user_id = \$1 AND post_id = \$2`).
		WithArgs(1, 4, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "post_likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(20))
	mock.ExpectExec(`UPDATE "posts" SET "like_count"=like_count \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reaction, err := svc.React(1, 4, models.LikeStatusLike)
	require.NoError(t, err)
	require.NotNil(t, reaction)
	assert.Equal(t, models.LikeStatusLike, reaction.Status)
	assert.Equal(t, uint(20), reaction.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReact_SecondReactionTogglesStoredOneOff(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewReactionService(db)

	// The stored reaction is a LIKE; a DISLIKE request must still decrement
	// like_count, because the removal follows the stored status.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "like_count", "dislike_count"}).AddRow(4, 1, 0))
	mock.ExpectQuery(`SELECT (.+) FROM "post_likes" WHERE user_id = \$1 AND post_id = \$2`).
		WithArgs(1, 4, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "post_id", "user_id"}).
			AddRow(20, "LIKE", 4, 1))
	mock.ExpectExec(`DELETE FROM "post_likes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "posts" SET "like_count"=like_count - 1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reaction, err := svc.React(1, 4, models.LikeStatusDislike)
	require.NoError(t, err)
	assert.Nil(t, reaction)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReact_MissingPost(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewReactionService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.React(1, 99, models.LikeStatusLike)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestReact_RejectsUnknownStatus(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewReactionService(db)

	_, err := svc.React(1, 4, models.LikeStatus("MEH"))
	assert.Error(t, err)
}
