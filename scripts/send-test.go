package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Dhivija-tekisho/emaildraft/internal/config"
	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/generator"
	"github.com/Dhivija-tekisho/emaildraft/internal/mailer"
	"github.com/Dhivija-tekisho/emaildraft/internal/template"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Использование: go run send-test.go <smtp-host> <smtp-port> <email-to>")
		fmt.Println("Пример: go run send-test.go smtp.gmail.com 587 test@example.com")
		fmt.Println("Логин и пароль берутся из SMTP_USER и SMTP_PASS")
		os.Exit(1)
	}

	host := os.Args[1]
	port, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatalf("Неверный порт: %v", err)
	}
	to := os.Args[3]

	settings := domain.DefaultSettings()

	// Тестовая встреча со всеми блоками содержимого
	meeting := domain.MeetingSummary{
		ID:             "test-meeting-001",
		RecipientName:  "Sarah Johnson",
		RecipientEmail: to,
		MeetingDate:    "2026-09-01",
		MeetingTime:    "14:00",
		Summary:        "Discussed project scope, timeline and budget. Client is interested in a custom web application.",
		ActionItems: []string{
			"Send project proposal by Friday",
			"Schedule technical review call",
			"Share portfolio examples",
		},
		KeyDecisions: []string{
			"Agreed on React for the frontend",
			"Launch target is Q2",
		},
		Mode:        domain.ModeInPerson,
		CompanyName: "Acme Corp",
	}

	subject := generator.GenerateSubject(meeting, settings.CompanyProfile)

	set, err := generator.Assemble(meeting, settings, domain.DefaultInclusions())
	if err != nil {
		log.Fatalf("Ошибка сборки письма: %v", err)
	}
	html := template.Render(settings.EmailSettings.EmailBodyTemplate, set, settings.CompanyProfile)
	text := generator.ToPlainText(html)

	smtpCfg := config.SMTPConfig{
		Host:     host,
		Port:     port,
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		From:     os.Getenv("SMTP_USER"),
		Secure:   port != 25 && port != 2525,
	}
	if smtpCfg.From == "" {
		smtpCfg.From = "test@example.com"
	}
	limits := config.LimitsConfig{MaxAttachmentSize: 5242880, MaxRecipients: 50}

	fmt.Printf("Отправка тестового письма на %s через %s:%d...\n", to, host, port)

	err = mailer.New(smtpCfg, limits).Send(mailer.Message{
		From:    smtpCfg.From,
		To:      []string{to},
		Subject: subject,
		Text:    text,
		HTML:    html,
	})
	if err != nil {
		log.Fatalf("Ошибка отправки: %v", err)
	}

	fmt.Println("✓ Письмо отправлено успешно!")
	fmt.Printf("Тема: %s\n", subject)
}
