package template

import (
	"fmt"
	"strings"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/generator"
)

// classicRenderer — традиционный деловой стиль
// Arial, тёмно-синие заголовки, нейтральная шапка с логотипом
type classicRenderer struct{}

func (classicRenderer) open(sb *strings.Builder, company domain.CompanyProfile, logoURL string) {
	sb.WriteString(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333333; max-width: 600px; margin: 0 auto;">`)

	if logoURL != "" {
		sb.WriteString(`<div style="background-color: #ffffff; border-bottom: 2px solid #e0e0e0; padding: 20px 0; margin-bottom: 24px; text-align: center;">`)
		fmt.Fprintf(sb, `<img src="%s" alt="%s" style="max-width: 200px; height: auto; display: block; margin: 0 auto;" />`, logoURL, company.CompanyName)
		sb.WriteString(`</div>`)
	}
}

func (classicRenderer) writeBlock(sb *strings.Builder, b generator.Block) {
	switch b.Kind {
	case generator.BlockGreeting, generator.BlockIntro:
		fmt.Fprintf(sb, `<p style="margin: 0 0 16px 0;">%s</p>`, b.Text)

	case generator.BlockMeetingDetails:
		classicHeading(sb, b.Title)
		sb.WriteString(`<div style="margin: 0 0 16px 0;">`)
		for _, line := range detailLines(b.Details) {
			fmt.Fprintf(sb, `<div style="margin: 4px 0;">%s</div>`, line)
		}
		sb.WriteString(`</div>`)

	case generator.BlockMeetingSummary:
		classicHeading(sb, b.Title)
		fmt.Fprintf(sb, `<p style="margin: 0 0 16px 0;">%s</p>`, nl2br(b.Text))

	case generator.BlockActionItems, generator.BlockKeyDecisions:
		classicHeading(sb, b.Title)
		sb.WriteString(`<div style="margin: 0 0 16px 0; padding-left: 8px;">`)
		for _, line := range listLines(b) {
			fmt.Fprintf(sb, `<div style="margin: 4px 0;">%s</div>`, line)
		}
		sb.WriteString(`</div>`)

	case generator.BlockCompanyProfile:
		classicHeading(sb, b.Title)
		fmt.Fprintf(sb, `<p style="margin: 0 0 8px 0;">%s</p>`, b.Text)
		fmt.Fprintf(sb, `<p style="margin: 0 0 16px 0;">%s</p>`, websiteLine(b, "#2563eb"))

	case generator.BlockServices:
		classicHeading(sb, b.Title)
		sb.WriteString(`<div style="margin: 0 0 16px 0; padding-left: 8px;">`)
		for _, s := range b.Services {
			fmt.Fprintf(sb, `<div style="margin: 4px 0;">• %s</div>`, serviceLine(s))
		}
		sb.WriteString(`</div>`)

	case generator.BlockCTA:
		fmt.Fprintf(sb, `<p style="margin: 16px 0;">%s</p>`, b.Text)

	case generator.BlockClosing:
		fmt.Fprintf(sb, `<p style="margin: 16px 0 8px 0;">%s</p>`, b.Text)

	case generator.BlockCompliance:
		sb.WriteString(`<hr style="border: none; border-top: 1px solid #e0e0e0; margin: 24px 0;" />`)
		fmt.Fprintf(sb, `<p style="margin: 0; font-size: 12px; color: #718096;">%s</p>`, b.Text)

	case generator.BlockSignature:
		sb.WriteString(b.HTML)
	}
}

func (classicRenderer) close(sb *strings.Builder) {
	sb.WriteString(`</div>`)
}

// classicHeading пишет заголовок секции в классическом стиле
func classicHeading(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, `<p style="margin: 16px 0 8px 0;"><strong style="font-size: 16px; color: #1a365d;">%s</strong></p>`, title)
}
