package template

import (
	"strings"
	"testing"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/generator"
)

var allTemplates = []domain.BodyTemplate{
	domain.TemplateClassic,
	domain.TemplateModern,
	domain.TemplateMinimal,
	domain.TemplateColorful,
	domain.TemplateElegant,
}

// fullSettings возвращает настройки, включающие все блоки письма
func fullSettings() domain.AppSettings {
	settings := domain.DefaultSettings()
	settings.EmailSettings.IncludeCompliance = true
	settings.CompanyProfile.LogoURL = "/logo.png"
	return settings
}

func followUpMeeting() domain.MeetingSummary {
	return domain.MeetingSummary{
		ID:             "m-001",
		RecipientName:  "Sarah Johnson",
		RecipientEmail: "sarah@acme.com",
		MeetingDate:    "2026-08-28",
		MeetingTime:    "14:00",
		Summary:        "Discussed project scope and budget.\nClient wants a demo next week.",
		ActionItems:    []string{"Send proposal", "Schedule demo"},
		KeyDecisions:   []string{"React for frontend", "Launch in Q2"},
		Mode:           domain.ModeInPerson,
		CompanyName:    "Acme Corp",
	}
}

func invitationMeeting() domain.MeetingSummary {
	return domain.MeetingSummary{
		ID:             "m-002",
		RecipientName:  "Sarah Johnson",
		RecipientEmail: "sarah@acme.com",
		Mode:           domain.ModeVirtual,
		ScheduledDate:  "2026-09-05",
		ScheduledTime:  "10:00",
		Platform:       "Zoom",
		MeetingLink:    "https://zoom.us/j/123",
	}
}

// textLines возвращает непустые строки текстовой версии письма
// Количество пустых строк зависит от вложенности контейнеров шаблона,
// поэтому сравнивается только содержимое
func textLines(html string) []string {
	var lines []string
	for _, line := range strings.Split(generator.ToPlainText(html), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// Текстовая версия письма не зависит от выбранного визуального шаблона
func TestRenderPlainTextInvariant(t *testing.T) {
	settings := fullSettings()
	inclusions := domain.DefaultInclusions()
	inclusions.SelectedServices = []string{"1", "2"}

	meetings := map[string]domain.MeetingSummary{
		"follow-up":  followUpMeeting(),
		"invitation": invitationMeeting(),
	}

	for name, meeting := range meetings {
		t.Run(name, func(t *testing.T) {
			set, err := generator.Assemble(meeting, settings, inclusions)
			if err != nil {
				t.Fatal(err)
			}

			reference := textLines(Render(domain.TemplateClassic, set, settings.CompanyProfile))
			if len(reference) == 0 {
				t.Fatal("classic дал пустую текстовую версию")
			}

			for _, id := range allTemplates[1:] {
				lines := textLines(Render(id, set, settings.CompanyProfile))
				if len(lines) != len(reference) {
					t.Errorf("%s: %d строк, у classic %d\n%s: %v\nclassic: %v",
						id, len(lines), len(reference), id, lines, reference)
					continue
				}
				for i := range reference {
					if lines[i] != reference[i] {
						t.Errorf("%s, строка %d: %q != %q", id, i, lines[i], reference[i])
					}
				}
			}
		})
	}
}

func TestRenderFollowUpContent(t *testing.T) {
	settings := fullSettings()
	set, err := generator.Assemble(followUpMeeting(), settings, domain.DefaultInclusions())
	if err != nil {
		t.Fatal(err)
	}

	text := generator.ToPlainText(Render(domain.TemplateClassic, set, settings.CompanyProfile))

	if !strings.HasPrefix(text, "Dear Sarah Johnson,") {
		t.Errorf("письмо не начинается с приветствия:\n%s", text)
	}
	for _, want := range []string{
		generator.TitleMeetingSummary,
		generator.TitleActionItems,
		generator.TitleKeyDecisions,
		"About TechVentures Inc.",
		"1. Send proposal",
		"2. Schedule demo",
		"• React for frontend",
		"Website: www.techventures.com",
		"Best regards,",
		"John Doe",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("в тексте нет %q:\n%s", want, text)
		}
	}
}

func TestRenderInvitationContent(t *testing.T) {
	settings := fullSettings()
	set, err := generator.Assemble(invitationMeeting(), settings, domain.DefaultInclusions())
	if err != nil {
		t.Fatal(err)
	}

	text := generator.ToPlainText(Render(domain.TemplateModern, set, settings.CompanyProfile))

	for _, want := range []string{
		generator.TitleMeetingDetails,
		"Date: 2026-09-05",
		"Time: 10:00",
		"Platform: Zoom",
		"Meeting Link: https://zoom.us/j/123",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("в приглашении нет %q:\n%s", want, text)
		}
	}

	// Итогов встречи в приглашении быть не должно
	if strings.Contains(text, generator.TitleMeetingSummary) {
		t.Error("в приглашении присутствует блок итогов встречи")
	}
}

// Неизвестный идентификатор шаблона откатывается к classic
func TestRenderUnknownTemplateFallback(t *testing.T) {
	settings := fullSettings()
	set, err := generator.Assemble(followUpMeeting(), settings, domain.DefaultInclusions())
	if err != nil {
		t.Fatal(err)
	}

	classic := Render(domain.TemplateClassic, set, settings.CompanyProfile)
	unknown := Render("sparkly", set, settings.CompanyProfile)
	if classic != unknown {
		t.Error("неизвестный шаблон должен давать тот же HTML, что и classic")
	}
}

func TestRenderLogo(t *testing.T) {
	settings := fullSettings()
	set, err := generator.Assemble(followUpMeeting(), settings, domain.DefaultInclusions())
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range allTemplates {
		html := Render(id, set, settings.CompanyProfile)
		if !strings.Contains(html, `<img src="https://www.techventures.com/logo.png"`) {
			t.Errorf("%s: в шапке нет логотипа", id)
		}
	}

	// Без логотипа в настройках шапка не содержит img
	noLogo := settings.CompanyProfile
	noLogo.LogoURL = ""
	html := Render(domain.TemplateClassic, set, noLogo)
	if strings.Contains(html, "<img") {
		t.Error("логотип не задан, но img присутствует")
	}
}

func TestResolveLogoURL(t *testing.T) {
	tests := []struct {
		logo     string
		website  string
		expected string
	}{
		{"https://cdn.example.com/logo.png", "www.x.com", "https://cdn.example.com/logo.png"},
		{"http://cdn.example.com/logo.png", "www.x.com", "http://cdn.example.com/logo.png"},
		{"/logo.png", "www.x.com", "https://www.x.com/logo.png"},
		{"logo.png", "www.x.com", "https://www.x.com/logo.png"},
		{"/logo.png", "https://x.com", "https://x.com/logo.png"},
	}
	for _, tt := range tests {
		if got := ResolveLogoURL(tt.logo, tt.website); got != tt.expected {
			t.Errorf("ResolveLogoURL(%q, %q) = %q, ожидалось %q", tt.logo, tt.website, got, tt.expected)
		}
	}
}
