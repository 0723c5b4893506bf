package ses

import (
	"context"
	"fmt"
	"strconv"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"cotizador/internal/domain"
	"cotizador/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendQuoteEmail(ctx context.Context, toEmail, toName string, quote domain.Quote) error {
	price := FormatCOP(quote.Total)
	subject := "Tu cotización de seguro"
	htmlBody := buildQuoteHTML(toName, string(quote.Product), price)
	textBody := fmt.Sprintf("Hola %s,\n\nGracias por cotizar con nosotros. El valor de tu seguro (%s) es de %s al año.\n\nUn asesor te contactará pronto.", toName, quote.Product, price)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// FormatCOP renders a whole-unit peso amount with dot thousand separators.
func FormatCOP(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return "$ " + string(out)
}

func buildQuoteHTML(name, product, price string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Tu cotización está lista</h2>
  <p>Hola %s,</p>
  <p>Gracias por cotizar tu seguro de <strong>%s</strong> con nosotros. Este es el valor anual de tu plan:</p>
  <p style="text-align: center; margin: 30px 0; font-size: 28px; color: #1A4D8F;"><strong>%s</strong></p>
  <p>Un asesor se comunicará contigo para acompañarte en la compra.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Este valor es informativo y puede variar según la verificación de tus datos.</p>
</body>
</html>`, name, product, price)
}
