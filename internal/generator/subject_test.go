package generator

import (
	"testing"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

func TestGenerateSubject(t *testing.T) {
	company := domain.CompanyProfile{CompanyName: "TechVentures Inc."}

	tests := []struct {
		name     string
		meeting  domain.MeetingSummary
		expected string
	}{
		{
			name: "follow-up с названием компании получателя",
			meeting: domain.MeetingSummary{
				Mode:        domain.ModeInPerson,
				CompanyName: "Acme Corp",
			},
			expected: "Follow-up: Acme Corp | TechVentures Inc.",
		},
		{
			name:     "заглушка темы, когда данных нет",
			meeting:  domain.MeetingSummary{},
			expected: "Follow-up: Project Discussion | TechVentures Inc.",
		},
		{
			name: "приглашение для онлайн-встречи",
			meeting: domain.MeetingSummary{
				Mode:        domain.ModeVirtual,
				CompanyName: "Acme Corp",
			},
			expected: "Invitation: Acme Corp | TechVentures Inc.",
		},
		{
			name: "тема из первой фразы протокола",
			meeting: domain.MeetingSummary{
				CompanyName: "Acme Corp",
				MOM:         "Discussed project scope, timeline and budget.",
			},
			expected: "Follow-up: Discussed project scope | TechVentures Inc.",
		},
		{
			name: "длинная фраза протокола обрезается",
			meeting: domain.MeetingSummary{
				MOM: "This extremely long meeting agenda topic",
			},
			expected: "Follow-up: This extremely long meeting ag... | TechVentures Inc.",
		},
		{
			name: "пустые фразы в начале протокола пропускаются",
			meeting: domain.MeetingSummary{
				MOM: " , . Budget review, next steps",
			},
			expected: "Follow-up: Budget review | TechVentures Inc.",
		},
		{
			name: "протокол из одних разделителей игнорируется",
			meeting: domain.MeetingSummary{
				CompanyName: "Acme Corp",
				MOM:         ",..,",
			},
			expected: "Follow-up: Acme Corp | TechVentures Inc.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSubject(tt.meeting, company)
			if got != tt.expected {
				t.Errorf("GenerateSubject() = %q, ожидалось %q", got, tt.expected)
			}
		})
	}
}

func TestGenerateSubjectDeterministic(t *testing.T) {
	meeting := domain.MeetingSummary{
		Mode: domain.ModeInPerson,
		MOM:  "Quarterly review, action plan",
	}
	company := domain.CompanyProfile{CompanyName: "TechVentures Inc."}

	first := GenerateSubject(meeting, company)
	for i := 0; i < 10; i++ {
		if got := GenerateSubject(meeting, company); got != first {
			t.Fatalf("повторный вызов дал другой результат: %q != %q", got, first)
		}
	}
}
