package service

import (
	"context"

	"github.com/example/storefront/internal/email"
	"github.com/example/storefront/internal/localstore"
	"github.com/example/storefront/internal/model"
)

// ContactService records contact form submissions and serves the admin
// inbox
type ContactService struct {
	remote Remote
	local  *localstore.Store
	router *Router
	mailer email.Sender
}

func NewContactService(remote Remote, local *localstore.Store, router *Router, mailer email.Sender) *ContactService {
	return &ContactService{remote: remote, local: local, router: router, mailer: mailer}
}

func (s *ContactService) SendMessage(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	if s.router.UseRemote(ctx) {
		var created model.ContactMessage
		err := s.remote.Post(ctx, "/api/contact", msg, &created)
		if err == nil {
			notify("contact acknowledgement", func() error {
				return s.mailer.SendContactAck(created.Email, created.Name)
			})
			return created, nil
		}
		s.router.fellBack("SendMessage", err)
	}
	return s.local.CreateMessage(msg), nil
}

func (s *ContactService) GetMessages(ctx context.Context) []model.ContactMessage {
	if s.router.UseRemote(ctx) {
		var msgs []model.ContactMessage
		err := s.remote.Get(ctx, "/api/contact", &msgs)
		if err == nil {
			return msgs
		}
		s.router.fellBack("GetMessages", err)
	}
	return s.local.GetMessages()
}

func (s *ContactService) UpdateMessageStatus(ctx context.Context, id, status string) (model.ContactMessage, bool) {
	if s.router.UseRemote(ctx) {
		var updated model.ContactMessage
		err := s.remote.Put(ctx, "/api/contact/"+id+"/status", map[string]string{"status": status}, &updated)
		if err == nil {
			return updated, true
		}
		s.router.fellBack("UpdateMessageStatus", err)
	}
	return s.local.UpdateMessageStatus(id, status)
}
