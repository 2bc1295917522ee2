package services

import (
	"strings"
	"testing"
)

func TestProcessTemplateSubstitution(t *testing.T) {
	got := processTemplate("Votre devis {{quote_ref}} - {{company_name}}", EmailData{
		QuoteRef:    "DEV-CD54321",
		CompanyName: "Renov Energie",
	})
	want := "Votre devis DEV-CD54321 - Renov Energie"
	if got != want {
		t.Errorf("processTemplate = %q, want %q", got, want)
	}
}

func TestConvertHTMLToText(t *testing.T) {
	text := convertHTMLToText("<p>Bonjour <b>Marie</b>,</p><p>Votre facture est disponible.</p>")
	if strings.Contains(text, "<") {
		t.Errorf("tags must be stripped, got %q", text)
	}
	if !strings.Contains(text, "Bonjour Marie,") {
		t.Errorf("inline markup should flatten to text, got %q", text)
	}
	if !strings.Contains(text, "Votre facture est disponible.") {
		t.Errorf("missing paragraph content in %q", text)
	}
}

func TestSendTemplatedEmailUnknownTemplate(t *testing.T) {
	err := NewEmailService().SendTemplatedEmail("nope", EmailData{Email: "a@b.fr"})
	if err == nil {
		t.Fatal("unknown template must be rejected")
	}
}
