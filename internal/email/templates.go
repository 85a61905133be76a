package email

import (
	"fmt"
	"strings"

	"github.com/example/storefront/internal/model"
)

// BuildOrderConfirmationBody builds the HTML body for the order
// confirmation email
func BuildOrderConfirmationBody(order model.Order) string {
	var itemsHTML strings.Builder
	for _, item := range order.Items {
		variant := ""
		if item.Size != "" || item.Color != "" {
			variant = fmt.Sprintf(" (%s)", strings.TrimPrefix(item.Size+" "+item.Color, " "))
		}
		itemsHTML.WriteString(fmt.Sprintf(
			`<tr><td>%s%s</td><td>%d</td><td>$%.2f</td></tr>`,
			item.Name, variant, item.Quantity, item.Price))
	}

	return fmt.Sprintf(`
<html>
<body>
  <h2>Thank you for your order!</h2>
  <p>Order number: <strong>%s</strong></p>
  <table border="1" cellpadding="6" cellspacing="0">
    <tr><th>Item</th><th>Qty</th><th>Price</th></tr>
    %s
  </table>
  <p>Total: <strong>$%.2f</strong></p>
  <p>We will email you again when your order ships.</p>
</body>
</html>`, order.OrderNumber, itemsHTML.String(), order.Total)
}

// BuildNewsletterWelcomeBody builds the HTML body for the newsletter
// welcome email
func BuildNewsletterWelcomeBody(email string) string {
	return fmt.Sprintf(`
<html>
<body>
  <h2>Welcome aboard!</h2>
  <p>%s is now subscribed to our newsletter.</p>
  <p>Expect new arrivals and offers in your inbox.</p>
</body>
</html>`, email)
}

// BuildContactAckBody builds the HTML body for the contact form
// acknowledgement
func BuildContactAckBody(name string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`
<html>
<body>
  <p>Hi %s,</p>
  <p>Thanks for reaching out. We received your message and will get back to you shortly.</p>
</body>
</html>`, name)
}
