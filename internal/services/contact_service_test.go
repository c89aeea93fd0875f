package services

import (
	"testing"

	"github.com/friendfinder/backend/internal/config"
	"github.com/friendfinder/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmit_ForwardsToSiteOwner(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewContactService(&config.Config{ContactTo: "owner@friendfinder.local"}, mailer)

	err := svc.Submit(&dto.ContactRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Hi",
		Text:    "I found a bug",
	})
	require.NoError(t, err)

	require.Len(t, mailer.Sent, 1)
	assert.Equal(t, "owner@friendfinder.local", mailer.Sent[0].To)
	assert.Equal(t, "Hi", mailer.Sent[0].Subject)
	assert.Contains(t, mailer.Sent[0].Body, "Sender: Alice, alice@example.com")
	assert.Contains(t, mailer.Sent[0].Body, "message: I found a bug")
}

func TestContactSubmit_Validation(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewContactService(&config.Config{ContactTo: "owner@friendfinder.local"}, mailer)

	cases := []dto.ContactRequest{
		{Name: "", Email: "a@b.c", Text: "hi"},
		{Name: "   ", Email: "a@b.c", Text: "hi"},
		{Name: "Alice", Email: "not-an-email", Text: "hi"},
		{Name: "Alice", Email: "a@b.c", Text: ""},
	}
	for _, req := range cases {
		err := svc.Submit(&req)
		assert.ErrorIs(t, err, ErrContactValidation)
	}
	assert.Empty(t, mailer.Sent)
}
