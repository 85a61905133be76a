package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/model"
)

func TestNewsletterService_Subscribe_RemoteSendsWelcome(t *testing.T) {
	f := newFixture(t, true, true)
	f.remote.respond("POST", "/api/newsletter/subscribe", model.NewsletterSubscription{
		ID: "sub_remote", Email: "a@example.com", Subscribed: true,
	})
	sender := &recordSender{}
	svc := NewNewsletterService(f.remote, f.local, f.router, sender)

	sub, err := svc.Subscribe(context.Background(), "a@example.com")

	require.NoError(t, err)
	assert.True(t, sub.Subscribed)
	assert.Equal(t, []string{"a@example.com"}, sender.welcomes)
}

// Secondary-effect isolation: a failing welcome email never fails the
// subscription.
func TestNewsletterService_Subscribe_EmailFailureIsSwallowed(t *testing.T) {
	f := newFixture(t, true, true)
	f.remote.respond("POST", "/api/newsletter/subscribe", model.NewsletterSubscription{
		ID: "sub_remote", Subscribed: true,
	})
	sender := &failSender{}
	svc := NewNewsletterService(f.remote, f.local, f.router, sender)

	sub, err := svc.Subscribe(context.Background(), "a@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
}

// Upsert: subscribing twice leaves a single record.
func TestNewsletterService_Subscribe_UpsertOnLocalPath(t *testing.T) {
	f := newFixture(t, true, false)
	svc := NewNewsletterService(f.remote, f.local, f.router, &recordSender{})
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "a@example.com")
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, "a@example.com")
	require.NoError(t, err)

	assert.Len(t, svc.GetSubscribers(ctx), 1)
}

// Idempotent unsubscribe: the second call neither raises nor flips
// anything back.
func TestNewsletterService_Unsubscribe_Idempotent(t *testing.T) {
	f := newFixture(t, false, false)
	svc := NewNewsletterService(f.remote, f.local, f.router, &recordSender{})
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "a@example.com")
	require.NoError(t, err)

	first, ok := svc.Unsubscribe(ctx, "a@example.com")
	require.True(t, ok)
	assert.False(t, first.Subscribed)

	second, ok := svc.Unsubscribe(ctx, "a@example.com")
	require.True(t, ok)
	assert.False(t, second.Subscribed)
}

func TestNewsletterService_ResubscribeFlipsBackOn(t *testing.T) {
	f := newFixture(t, false, false)
	svc := NewNewsletterService(f.remote, f.local, f.router, &recordSender{})
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "a@example.com")
	require.NoError(t, err)
	_, ok := svc.Unsubscribe(ctx, "a@example.com")
	require.True(t, ok)

	sub, err := svc.Subscribe(ctx, "a@example.com")
	require.NoError(t, err)

	assert.True(t, sub.Subscribed)
	assert.Len(t, svc.GetSubscribers(ctx), 1)
}

// No secondary effect on the local path.
func TestNewsletterService_LocalSubscribeSendsNoEmail(t *testing.T) {
	f := newFixture(t, true, false)
	sender := &recordSender{}
	svc := NewNewsletterService(f.remote, f.local, f.router, sender)

	_, err := svc.Subscribe(context.Background(), "a@example.com")

	require.NoError(t, err)
	assert.Empty(t, sender.welcomes)
}
