package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/cleanblog/internal/db"
	"gorm.io/gorm"
)

// Notifier delivers a stored contact message to the site owner.
type Notifier interface {
	NotifyContact(ctx context.Context, msg db.ContactMessage) error
}

// ContactInput holds the public contact form fields.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Validate checks that every field is present.
func (in ContactInput) Validate() error {
	err := requireFields([][2]string{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"message", in.Message},
	})
	if err != nil {
		return err
	}
	if _, parseErr := mail.ParseAddress(strings.TrimSpace(in.Email)); parseErr != nil {
		return &ValidationError{Fields: []string{"email"}}
	}
	return nil
}

// ContactService stores contact messages and hands them to the notifier.
type ContactService struct {
	db       *gorm.DB
	notifier Notifier
}

// NewContactService creates a ContactService instance.
func NewContactService(gdb *gorm.DB, notifier Notifier) *ContactService {
	return &ContactService{db: gdb, notifier: notifier}
}

// Submit persists the message and then attempts exactly one delivery.
// A failed delivery returns a DeliveryError; the stored row is kept.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*db.ContactMessage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	msg := db.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Message: input.Message,
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, storageErr("create contact message", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContact(ctx, msg); err != nil {
			return &msg, &DeliveryError{MessageID: msg.ID, Err: err}
		}
	}

	return &msg, nil
}
