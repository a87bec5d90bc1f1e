package generator

import (
	"strings"
	"testing"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

func TestRenderSignature(t *testing.T) {
	user := domain.UserProfile{
		Name:     "John Doe",
		JobTitle: "Business Development Manager",
		Phone:    "+1 (555) 123-4567",
		Email:    "john.doe@company.com",
	}
	company := domain.CompanyProfile{
		CompanyName: "TechVentures Inc.",
		Website:     "www.techventures.com",
	}

	got := RenderSignature("{{name}} — {{jobTitle}}, {{companyName}} ({{website}})", user, company)
	expected := "John Doe — Business Development Manager, TechVentures Inc. (www.techventures.com)"
	if got != expected {
		t.Errorf("получено %q, ожидалось %q", got, expected)
	}
}

func TestRenderSignatureUnknownToken(t *testing.T) {
	// Неизвестные токены остаются в тексте как есть
	got := RenderSignature("{{name}} {{unknown}}", domain.UserProfile{Name: "John"}, domain.CompanyProfile{})
	if got != "John {{unknown}}" {
		t.Errorf("получено %q", got)
	}
}

func TestRenderSignatureEmptyFields(t *testing.T) {
	// Пустые поля профиля заменяются пустой строкой
	got := RenderSignature("[{{phone}}][{{email}}]", domain.UserProfile{}, domain.CompanyProfile{})
	if got != "[][]" {
		t.Errorf("получено %q", got)
	}
}

func TestRenderSignatureRepeatedTokens(t *testing.T) {
	// Замена глобальная: каждое вхождение токена подставляется
	got := RenderSignature("{{name}} / {{name}}", domain.UserProfile{Name: "John"}, domain.CompanyProfile{})
	if got != "John / John" {
		t.Errorf("получено %q", got)
	}
}

func TestRenderSignatureDefaultTemplate(t *testing.T) {
	settings := domain.DefaultSettings()
	got := RenderSignature(settings.EmailSettings.SignatureTemplate, settings.UserProfile, settings.CompanyProfile)

	if strings.Contains(got, "{{") {
		t.Errorf("в шаблоне по умолчанию остались неподставленные токены:\n%s", got)
	}
	for _, want := range []string{"John Doe", "Business Development Manager", "TechVentures Inc.", "www.techventures.com"} {
		if !strings.Contains(got, want) {
			t.Errorf("в подписи нет %q", want)
		}
	}
}
