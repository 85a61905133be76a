package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/storefront/internal/model"
)

func TestBuildOrderConfirmationBody(t *testing.T) {
	body := BuildOrderConfirmationBody(model.Order{
		OrderNumber: "ORD-123",
		Total:       89.97,
		Items: []model.OrderItem{
			{Name: "Classic Cotton Tee", Quantity: 3, Price: 29.99, Size: "M", Color: "black"},
		},
	})

	assert.Contains(t, body, "ORD-123")
	assert.Contains(t, body, "Classic Cotton Tee")
	assert.Contains(t, body, "M black")
	assert.Contains(t, body, "$89.97")
}

func TestBuildNewsletterWelcomeBody(t *testing.T) {
	body := BuildNewsletterWelcomeBody("a@example.com")
	assert.Contains(t, body, "a@example.com")
}

func TestBuildContactAckBody(t *testing.T) {
	assert.Contains(t, BuildContactAckBody("Sam"), "Hi Sam")
	assert.Contains(t, BuildContactAckBody(""), "Hi there")
}
