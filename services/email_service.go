package services

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"golang.org/x/net/html"

	"backend/apperrors"
)

// EmailData carries the variables substituted into notification templates.
type EmailData struct {
	Email       string
	ClientName  string
	ProjectRef  string
	QuoteRef    string
	InvoiceRef  string
	Amount      string
	CompanyName string
}

// EmailService sends client-facing notification emails (quote sent, invoice
// created) over SMTP.
type EmailService struct{}

func NewEmailService() *EmailService {
	return &EmailService{}
}

// Built-in templates. Bodies are authored as HTML in the settings UI and
// converted to plain text before sending.
var emailTemplates = map[string]struct {
	Subject string
	Body    string
}{
	"quote_sent": {
		Subject: "Votre devis {{quote_ref}} - {{company_name}}",
		Body: "<p>Bonjour {{client_name}},</p>" +
			"<p>Veuillez trouver ci-joint votre devis <b>{{quote_ref}}</b> pour le projet {{project_ref}}, d'un montant de {{amount}} € TTC.</p>" +
			"<p>Cordialement,<br>{{company_name}}</p>",
	},
	"invoice_created": {
		Subject: "Votre facture {{invoice_ref}} - {{company_name}}",
		Body: "<p>Bonjour {{client_name}},</p>" +
			"<p>Votre facture <b>{{invoice_ref}}</b> d'un montant de {{amount}} € est disponible.</p>" +
			"<p>Cordialement,<br>{{company_name}}</p>",
	},
}

// SendTemplatedEmail sends a notification using one of the built-in
// templates with variable substitution.
func (es *EmailService) SendTemplatedEmail(templateType string, data EmailData) error {
	tmpl, ok := emailTemplates[templateType]
	if !ok {
		return apperrors.Validation("modèle d'email inconnu: %q", templateType)
	}

	subject := processTemplate(tmpl.Subject, data)
	body := convertHTMLToText(processTemplate(tmpl.Body, data))

	return es.sendEmail(data.Email, subject, body)
}

func processTemplate(templateStr string, data EmailData) string {
	variables := map[string]string{
		"client_name":  data.ClientName,
		"project_ref":  data.ProjectRef,
		"quote_ref":    data.QuoteRef,
		"invoice_ref":  data.InvoiceRef,
		"amount":       data.Amount,
		"company_name": data.CompanyName,
	}

	result := templateStr
	for key, value := range variables {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{%s}}", key), value)
	}
	return result
}

// convertHTMLToText converts HTML content to plain text for email sending.
func convertHTMLToText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}

	var text strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			text.WriteString(n.Data)
		case html.ElementNode:
			switch n.Data {
			case "p", "div", "br", "h1", "h2", "h3", "h4", "h5", "h6":
				text.WriteString("\n")
			case "li":
				text.WriteString("• ")
			case "table", "tr":
				text.WriteString("\n")
			case "td", "th":
				text.WriteString(" | ")
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			extractText(child)
		}
	}
	extractText(doc)

	result := text.String()
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	return strings.TrimSpace(result)
}

func (es *EmailService) sendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")
	if host == "" || port == "" || user == "" || from == "" {
		return apperrors.Configuration("configuration SMTP incomplète")
	}

	auth := smtp.PlainAuth("", user, password, host)

	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}
	msg := []byte(strings.Join(headers, "\r\n") + "\r\n")

	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}
