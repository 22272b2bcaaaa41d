package mailer

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/wneessen/go-mail"

	"atelier_back_end/internal/models"
)

// SendCheckoutConfirmation envoie le récapitulatif de commande (démo, sans paiement).
// Best-effort : un échec d'envoi n'annule jamais le checkout.
func SendCheckoutConfirmation(to, name string, lines []models.CartLine, total decimal.Decimal) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@atelier.example"
	}

	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Votre commande Atelier")
	msg.SetBodyString(mail.TypeTextHTML, checkoutHTML(name, lines, total))

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi du récapitulatif de commande à", to)
	return client.DialAndSend(msg)
}

func checkoutHTML(name string, lines []models.CartLine, total decimal.Decimal) string {
	itemsHTML := ""
	for _, line := range lines {
		lineTotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%s€</td>
				<td>%s€</td>
			</tr>`, line.Title, line.Quantity, line.Price.StringFixed(2), lineTotal.StringFixed(2))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body>
	<h2>Merci pour votre commande, %s !</h2>
	<p>Ceci est une confirmation de démonstration — aucun paiement n'a été effectué.</p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>Article</th><th>Quantité</th><th>Prix</th><th>Total</th></tr>
		%s
	</table>
	<p><strong>Total : %s€</strong></p>
</body>
</html>`, name, itemsHTML, total.StringFixed(2))
}
