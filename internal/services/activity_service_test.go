package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRecent_CapsAtFourNewestFirst(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewActivityService(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "user_activities" WHERE user_id = \$1 ORDER BY occurred_at DESC LIMIT \$2`).
		WithArgs(1, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "occurred_at"}).
			AddRow(12, 1, "posted a photo", now).
			AddRow(11, 1, "commented on a post", now.Add(-time.Hour)))

	activities, err := svc.Recent(1)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "posted a photo", activities[0].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRecord(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewActivityService(db)

	mock.ExpectQuery(`INSERT INTO "user_activities"`).
		WithArgs(1, "posted a video", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(13))

	err := svc.Record(1, "posted a video")
	assert.NoError(t, err)
}
