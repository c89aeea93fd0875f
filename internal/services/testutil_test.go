package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens gorm over a sqlmock connection. Default per-statement
// transactions are disabled so only explicit Transaction calls produce
// BEGIN/COMMIT expectations.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// recordingMailer captures outbound mail instead of delivering it.
type recordingMailer struct {
	Sent []sentMail
}

func (m *recordingMailer) Send(to, subject, body string) {
	m.Sent = append(m.Sent, sentMail{To: to, Subject: subject, Body: body})
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "surname", "email"})
}
