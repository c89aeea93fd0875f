package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/friendfinder/backend/internal/config"
	"github.com/friendfinder/backend/internal/dto"
	"github.com/friendfinder/backend/internal/mail"
)

var ErrContactValidation = errors.New("contact form validation failed")

// ContactService forwards contact-form submissions to the site owner.
type ContactService struct {
	cfg    *config.Config
	mailer mail.Mailer
}

func NewContactService(cfg *config.Config, mailer mail.Mailer) *ContactService {
	return &ContactService{cfg: cfg, mailer: mailer}
}

func (s *ContactService) Submit(req *dto.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Text) == "" ||
		!strings.Contains(req.Email, "@") {
		return ErrContactValidation
	}

	s.mailer.Send(s.cfg.ContactTo, req.Subject,
		fmt.Sprintf("Sender: %s, %s\nmessage: %s", req.Name, req.Email, req.Text))
	return nil
}
