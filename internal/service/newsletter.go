package service

import (
	"context"

	"github.com/example/storefront/internal/email"
	"github.com/example/storefront/internal/localstore"
	"github.com/example/storefront/internal/model"
)

// NewsletterService manages subscriptions keyed by email. Subscribe is
// an upsert; unsubscribe is idempotent.
type NewsletterService struct {
	remote Remote
	local  *localstore.Store
	router *Router
	mailer email.Sender
}

func NewNewsletterService(remote Remote, local *localstore.Store, router *Router, mailer email.Sender) *NewsletterService {
	return &NewsletterService{remote: remote, local: local, router: router, mailer: mailer}
}

func (s *NewsletterService) Subscribe(ctx context.Context, address string) (model.NewsletterSubscription, error) {
	if s.router.UseRemote(ctx) {
		var sub model.NewsletterSubscription
		body := map[string]string{"email": address}
		err := s.remote.Post(ctx, "/api/newsletter/subscribe", body, &sub)
		if err == nil {
			notify("newsletter welcome", func() error {
				return s.mailer.SendNewsletterWelcome(address)
			})
			return sub, nil
		}
		s.router.fellBack("Subscribe", err)
	}
	return s.local.Subscribe(address), nil
}

// Unsubscribe flips the subscription off. Unknown addresses report
// false without raising, so repeated calls are safe.
func (s *NewsletterService) Unsubscribe(ctx context.Context, address string) (model.NewsletterSubscription, bool) {
	if s.router.UseRemote(ctx) {
		var sub model.NewsletterSubscription
		body := map[string]string{"email": address}
		err := s.remote.Post(ctx, "/api/newsletter/unsubscribe", body, &sub)
		if err == nil {
			return sub, true
		}
		s.router.fellBack("Unsubscribe", err)
	}
	return s.local.Unsubscribe(address)
}

func (s *NewsletterService) GetSubscribers(ctx context.Context) []model.NewsletterSubscription {
	if s.router.UseRemote(ctx) {
		var subs []model.NewsletterSubscription
		err := s.remote.Get(ctx, "/api/newsletter", &subs)
		if err == nil {
			return subs
		}
		s.router.fellBack("GetSubscribers", err)
	}
	return s.local.GetSubscribers()
}
