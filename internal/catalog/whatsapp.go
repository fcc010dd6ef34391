package catalog

import (
	"net/url"
	"strings"

	"github.com/yemeli/vitrine-golang/internal/models"
)

// WhatsAppLink builds a wa.me chat link with a prefilled message.
func WhatsAppLink(number, message string) string {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + escaped
}

// OrderLink builds the WhatsApp ordering link for a product. The product's
// custom message wins; otherwise the dataset default template gets the
// product name appended.
func OrderLink(d *models.Dataset, p models.Product) string {
	message := p.WhatsAppMessage
	if message == "" {
		message = d.WhatsApp.DefaultMessage + p.Name
	}
	return WhatsAppLink(d.WhatsApp.Number, message)
}

// ContactLink builds the generic contact link shown in the header/footer.
func ContactLink(d *models.Dataset) string {
	return WhatsAppLink(d.WhatsApp.Number, d.WhatsApp.DefaultMessage)
}
