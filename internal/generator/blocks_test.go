package generator

import (
	"errors"
	"testing"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

// testMeeting возвращает встречу со всеми заполненными полями
func testMeeting() domain.MeetingSummary {
	return domain.MeetingSummary{
		ID:             "m-001",
		RecipientName:  "Sarah Johnson",
		RecipientEmail: "sarah@acme.com",
		MeetingDate:    "2026-08-28",
		MeetingTime:    "14:00",
		Summary:        "Discussed project scope and budget.",
		ActionItems:    []string{"Send proposal", "Schedule demo"},
		KeyDecisions:   []string{"React for frontend"},
		Mode:           domain.ModeInPerson,
		CompanyName:    "Acme Corp",
	}
}

func kinds(set BlockSet) []BlockKind {
	result := make([]BlockKind, len(set.Blocks))
	for i, b := range set.Blocks {
		result[i] = b.Kind
	}
	return result
}

func findBlock(set BlockSet, kind BlockKind) *Block {
	for i := range set.Blocks {
		if set.Blocks[i].Kind == kind {
			return &set.Blocks[i]
		}
	}
	return nil
}

func TestAssembleBlockOrder(t *testing.T) {
	set, err := Assemble(testMeeting(), domain.DefaultSettings(), domain.DefaultInclusions())
	if err != nil {
		t.Fatalf("Assemble() вернул ошибку: %v", err)
	}

	// Услуги не выбраны, юридический текст выключен по умолчанию
	expected := []BlockKind{
		BlockGreeting,
		BlockIntro,
		BlockMeetingSummary,
		BlockActionItems,
		BlockKeyDecisions,
		BlockCompanyProfile,
		BlockCTA,
		BlockClosing,
		BlockSignature,
	}

	got := kinds(set)
	if len(got) != len(expected) {
		t.Fatalf("получено %d блоков, ожидалось %d: %v", len(got), len(expected), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("блок %d: получен %d, ожидался %d", i, got[i], expected[i])
		}
	}
}

func TestAssembleGreetingTone(t *testing.T) {
	settings := domain.DefaultSettings()

	set, err := Assemble(testMeeting(), settings, domain.DefaultInclusions())
	if err != nil {
		t.Fatal(err)
	}
	if got := set.Blocks[0].Text; got != "Dear Sarah Johnson," {
		t.Errorf("формальное приветствие: %q", got)
	}

	settings.EmailSettings.Tone = domain.ToneFriendly
	set, err = Assemble(testMeeting(), settings, domain.DefaultInclusions())
	if err != nil {
		t.Fatal(err)
	}
	if got := set.Blocks[0].Text; got != "Hi Sarah Johnson," {
		t.Errorf("дружелюбное приветствие: %q", got)
	}
}

func TestAssembleVirtualMeeting(t *testing.T) {
	meeting := testMeeting()
	meeting.Mode = domain.ModeVirtual
	meeting.ScheduledDate = "2026-09-05"
	meeting.ScheduledTime = "10:00"
	meeting.Platform = ""
	meeting.MeetingLink = ""

	set, err := Assemble(meeting, domain.DefaultSettings(), domain.DefaultInclusions())
	if err != nil {
		t.Fatal(err)
	}

	// Итоги не показываются в приглашении, даже если флаг включён
	if findBlock(set, BlockMeetingSummary) != nil {
		t.Error("в приглашении не должно быть блока итогов встречи")
	}

	details := findBlock(set, BlockMeetingDetails)
	if details == nil {
		t.Fatal("в приглашении нет блока деталей встречи")
	}
	if details.Details.Platform != "TBD" {
		t.Errorf("заглушка платформы: %q", details.Details.Platform)
	}
	if details.Details.Link != "To be confirmed" {
		t.Errorf("заглушка ссылки: %q", details.Details.Link)
	}

	// Детали идут сразу после вступления
	if set.Blocks[2].Kind != BlockMeetingDetails {
		t.Errorf("детали встречи на позиции %d вместо 2", func() int {
			for i, b := range set.Blocks {
				if b.Kind == BlockMeetingDetails {
					return i
				}
			}
			return -1
		}())
	}
}

func TestAssembleVirtualWithoutSchedule(t *testing.T) {
	meeting := testMeeting()
	meeting.Mode = domain.ModeVirtual

	set, err := Assemble(meeting, domain.DefaultSettings(), domain.DefaultInclusions())
	if err != nil {
		t.Fatal(err)
	}

	// Без даты и времени блок деталей не собирается
	if findBlock(set, BlockMeetingDetails) != nil {
		t.Error("блок деталей не должен появляться без даты и времени")
	}
}

func TestAssembleInclusions(t *testing.T) {
	inclusions := domain.DefaultInclusions()
	inclusions.ActionItems = false
	inclusions.CompanyProfile = false

	set, err := Assemble(testMeeting(), domain.DefaultSettings(), inclusions)
	if err != nil {
		t.Fatal(err)
	}

	if findBlock(set, BlockActionItems) != nil {
		t.Error("блок задач выключен, но присутствует")
	}
	if findBlock(set, BlockCompanyProfile) != nil {
		t.Error("блок о компании выключен, но присутствует")
	}

	// Решения не управляются переключателем
	if findBlock(set, BlockKeyDecisions) == nil {
		t.Error("блок решений должен присутствовать всегда, когда решения есть")
	}
}

func TestAssembleEmptyLists(t *testing.T) {
	meeting := testMeeting()
	meeting.ActionItems = nil
	meeting.KeyDecisions = nil

	set, err := Assemble(meeting, domain.DefaultSettings(), domain.DefaultInclusions())
	if err != nil {
		t.Fatal(err)
	}

	if findBlock(set, BlockActionItems) != nil {
		t.Error("пустой список задач не должен давать блок")
	}
	if findBlock(set, BlockKeyDecisions) != nil {
		t.Error("пустой список решений не должен давать блок")
	}
}

func TestAssembleSelectedServices(t *testing.T) {
	inclusions := domain.DefaultInclusions()
	// Услуга 3 отключена в настройках по умолчанию
	inclusions.SelectedServices = []string{"1", "3"}

	set, err := Assemble(testMeeting(), domain.DefaultSettings(), inclusions)
	if err != nil {
		t.Fatal(err)
	}

	services := findBlock(set, BlockServices)
	if services == nil {
		t.Fatal("блок услуг отсутствует")
	}
	if len(services.Services) != 1 {
		t.Fatalf("получено %d услуг, ожидалась 1", len(services.Services))
	}
	if services.Services[0].Name != "Custom Software Development" {
		t.Errorf("неожиданная услуга: %q", services.Services[0].Name)
	}
}

func TestAssembleCTAText(t *testing.T) {
	set, err := Assemble(testMeeting(), domain.DefaultSettings(), domain.DefaultInclusions())
	if err != nil {
		t.Fatal(err)
	}

	cta := findBlock(set, BlockCTA)
	if cta == nil {
		t.Fatal("блок призыва к действию отсутствует")
	}
	expected := "Would you be available for a follow-up call this week? Let me know your preferred time."
	if cta.Text != expected {
		t.Errorf("текст призыва:\n%q\nожидалось:\n%q", cta.Text, expected)
	}
}

func TestAssembleUnknownCTAStyle(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.EmailSettings.CTAStyle = "carrier_pigeon"

	_, err := Assemble(testMeeting(), settings, domain.DefaultInclusions())
	if !errors.Is(err, ErrUnknownCTAStyle) {
		t.Errorf("ожидалась ErrUnknownCTAStyle, получено: %v", err)
	}
}

func TestAssembleCompliance(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.EmailSettings.IncludeCompliance = true

	set, err := Assemble(testMeeting(), settings, domain.DefaultInclusions())
	if err != nil {
		t.Fatal(err)
	}

	compliance := findBlock(set, BlockCompliance)
	if compliance == nil {
		t.Fatal("юридический текст включён, но блок отсутствует")
	}
	if compliance.Text != settings.EmailSettings.ComplianceText {
		t.Errorf("текст блока не совпадает с настройкой")
	}
}

func TestWebsiteHref(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"www.techventures.com", "https://www.techventures.com"},
		{"https://techventures.com", "https://techventures.com"},
		{"http://techventures.com", "http://techventures.com"},
	}
	for _, tt := range tests {
		if got := WebsiteHref(tt.in); got != tt.expected {
			t.Errorf("WebsiteHref(%q) = %q, ожидалось %q", tt.in, got, tt.expected)
		}
	}
}
