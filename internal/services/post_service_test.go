package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage records uploads and hands back predictable object names.
type fakeStorage struct {
	uploads []string
}

func (f *fakeStorage) Upload(_ context.Context, folder, fileName string, _ io.Reader, _ int64) (string, error) {
	name := folder + "/" + fileName
	f.uploads = append(f.uploads, name)
	return name, nil
}

func (f *fakeStorage) Delete(context.Context, string) error { return nil }

func (f *fakeStorage) URL(context.Context, string, time.Duration) (string, error) {
	return "", nil
}

func postServiceForTest(t *testing.T) (*PostService, sqlmock.Sqlmock, *fakeStorage) {
	t.Helper()
	db, mock := newTestDB(t)
	store := &fakeStorage{}
	friends := NewFriendService(db, &recordingMailer{})
	activity := NewActivityService(db)
	return NewPostService(db, friends, activity, store), mock, store
}

// expectFriendsOf mocks the accepted-requests query and its two preloads.
// Preloads run in field-name order, Receiver before Sender, and each must
// return exactly the users its IN-list selects.
func expectFriendsOf(mock sqlmock.Sqlmock, friendRows, receivers, senders *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT (.+) FROM "friend_requests" WHERE status = \$1`).
		WillReturnRows(friendRows)
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).WillReturnRows(receivers)
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).WillReturnRows(senders)
}

func TestFeedPage_FriendIDsComeFromPostUnion(t *testing.T) {
	svc, mock, _ := postServiceForTest(t)

	// User 1 is friends with 2 and 3, but only 2 has posted. The paged
	// query must therefore restrict to user 2 alone.
	expectFriendsOf(mock,
		sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "status"}).
			AddRow(10, 1, 2, "ACCEPTED").
			AddRow(11, 1, 3, "ACCEPTED"),
		userRows().
			AddRow(2, "Bob", "Baker", "bob@example.com").
			AddRow(3, "Cora", "Clark", "cora@example.com"),
		userRows().
			AddRow(1, "Alice", "Anders", "alice@example.com"))
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE user_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "description"}).
			AddRow(100, 2, "hello"))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(userRows().AddRow(2, "Bob", "Baker", "bob@example.com"))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" WHERE user_id IN \(\$1\)`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE user_id IN \(\$1\)`).
		WithArgs(2, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "description"}).
			AddRow(100, 2, "hello"))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(userRows().AddRow(2, "Bob", "Baker", "bob@example.com"))

	posts, total, err := svc.FeedPage(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, posts, 1)
	assert.Equal(t, uint(100), posts[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedPage_EmptyWhenFriendsNeverPosted(t *testing.T) {
	svc, mock, _ := postServiceForTest(t)

	expectFriendsOf(mock,
		sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "status"}).
			AddRow(10, 1, 2, "ACCEPTED"),
		userRows().
			AddRow(2, "Bob", "Baker", "bob@example.com"),
		userRows().
			AddRow(1, "Alice", "Anders", "alice@example.com"))
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE user_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	posts, total, err := svc.FeedPage(1, 1)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Zero(t, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedPage_EmptyWithoutFriends(t *testing.T) {
	svc, mock, _ := postServiceForTest(t)

	mock.ExpectQuery(`SELECT (.+) FROM "friend_requests" WHERE status = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	posts, total, err := svc.FeedPage(1, 1)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Zero(t, total)
}

func TestImageFeedPage_FiltersByFilenamesFromUnion(t *testing.T) {
	svc, mock, _ := postServiceForTest(t)

	expectFriendsOf(mock,
		sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "status"}).
			AddRow(10, 1, 2, "ACCEPTED"),
		userRows().
			AddRow(2, "Bob", "Baker", "bob@example.com"),
		userRows().
			AddRow(1, "Alice", "Anders", "alice@example.com"))
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE user_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "image_name", "video_name"}).
			AddRow(100, 2, "posts/images/a.jpg", "").
			AddRow(101, 2, "", "posts/videos/b.mp4"))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(userRows().AddRow(2, "Bob", "Baker", "bob@example.com"))

	// Filtering runs on the filename list, not on the author ids, and the
	// video-only post's empty image name stays out of the list.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" WHERE image_name IN \(\$1\)`).
		WithArgs("posts/images/a.jpg").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE image_name IN \(\$1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "image_name"}).
			AddRow(100, 2, "posts/images/a.jpg"))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(userRows().AddRow(2, "Bob", "Baker", "bob@example.com"))

	posts, total, err := svc.ImageFeedPage(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, posts, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageFeedPage_EmptyWhenFriendsPostedOnlyVideos(t *testing.T) {
	svc, mock, _ := postServiceForTest(t)

	// An image_name IN ('') query would match every video-only post in
	// the system, not just the friends'. The feed must not issue one.
	expectFriendsOf(mock,
		sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "status"}).
			AddRow(10, 1, 2, "ACCEPTED"),
		userRows().
			AddRow(2, "Bob", "Baker", "bob@example.com"),
		userRows().
			AddRow(1, "Alice", "Anders", "alice@example.com"))
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE user_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "image_name", "video_name"}).
			AddRow(100, 2, "", "posts/videos/b.mp4"))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(userRows().AddRow(2, "Bob", "Baker", "bob@example.com"))

	posts, total, err := svc.ImageFeedPage(1, 1)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Zero(t, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoFeedPage_EmptyWhenFriendsPostedOnlyImages(t *testing.T) {
	svc, mock, _ := postServiceForTest(t)

	expectFriendsOf(mock,
		sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "status"}).
			AddRow(10, 1, 2, "ACCEPTED"),
		userRows().
			AddRow(2, "Bob", "Baker", "bob@example.com"),
		userRows().
			AddRow(1, "Alice", "Anders", "alice@example.com"))
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE user_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "image_name", "video_name"}).
			AddRow(100, 2, "posts/images/a.jpg", ""))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(userRows().AddRow(2, "Bob", "Baker", "bob@example.com"))

	posts, total, err := svc.VideoFeedPage(1, 1)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Zero(t, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimelinePage(t *testing.T) {
	svc, mock, _ := postServiceForTest(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" WHERE user_id = \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(103, 2).
			AddRow(101, 2))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(userRows().AddRow(2, "Bob", "Baker", "bob@example.com"))

	posts, total, err := svc.TimelinePage(2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, posts, 2)
}

func TestPostCreate_RequiresMedia(t *testing.T) {
	svc, _, _ := postServiceForTest(t)

	_, err := svc.Create(context.Background(), 1, "no media here", nil, nil)
	assert.Error(t, err)
}

func TestPostCreate_ImageWinsActivityWording(t *testing.T) {
	svc, mock, store := postServiceForTest(t)

	mock.ExpectQuery(`INSERT INTO "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(50))
	mock.ExpectQuery(`INSERT INTO "user_activities"`).
		WithArgs(1, "posted a photo", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	image := &Upload{FileName: "a.jpg", Reader: strings.NewReader("img"), Size: 3}
	video := &Upload{FileName: "b.mp4", Reader: strings.NewReader("vid"), Size: 3}

	post, err := svc.Create(context.Background(), 1, "both files", image, video)
	require.NoError(t, err)
	assert.Equal(t, uint(50), post.ID)
	assert.Equal(t, "posts/images/a.jpg", post.ImageName)
	assert.Equal(t, "posts/videos/b.mp4", post.VideoName)
	assert.Len(t, store.uploads, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostDelete_RemovesDependentsInOneTransaction(t *testing.T) {
	svc, mock, _ := postServiceForTest(t)

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(50, 1))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "post_likes"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "comments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "posts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.Delete(50)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostDelete_Missing(t *testing.T) {
	svc, mock, _ := postServiceForTest(t)

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.Delete(99)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
