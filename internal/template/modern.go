package template

import (
	"fmt"
	"strings"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/generator"
)

// modernRenderer — современный стиль
// Segoe UI, карточка с тенью, градиентная шапка, цветные боковые акценты
type modernRenderer struct{}

func (modernRenderer) open(sb *strings.Builder, company domain.CompanyProfile, logoURL string) {
	sb.WriteString(`<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.7; color: #2d3748; max-width: 650px; margin: 0 auto; background: #f7fafc;">`)

	if logoURL != "" {
		sb.WriteString(`<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px 20px; text-align: center; margin-bottom: 30px;">`)
		fmt.Fprintf(sb, `<img src="%s" alt="%s" style="max-width: 180px; height: auto; display: block; margin: 0 auto; filter: brightness(0) invert(1);" />`, logoURL, company.CompanyName)
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`<div style="background: #ffffff; padding: 30px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">`)
}

func (modernRenderer) writeBlock(sb *strings.Builder, b generator.Block) {
	switch b.Kind {
	case generator.BlockGreeting:
		fmt.Fprintf(sb, `<p style="margin: 0 0 20px 0; font-size: 16px;">%s</p>`, b.Text)

	case generator.BlockIntro:
		fmt.Fprintf(sb, `<p style="margin: 0 0 24px 0; color: #4a5568;">%s</p>`, b.Text)

	case generator.BlockMeetingDetails:
		sb.WriteString(`<div style="background: #ebf8ff; padding: 16px; border-left: 4px solid #4299e1; margin: 20px 0; border-radius: 4px;">`)
		modernHeading(sb, b.Title)
		for _, line := range detailLines(b.Details) {
			fmt.Fprintf(sb, `<div style="margin: 4px 0; color: #4a5568;">%s</div>`, line)
		}
		sb.WriteString(`</div>`)

	case generator.BlockMeetingSummary:
		sb.WriteString(`<div style="background: #edf2f7; padding: 16px; border-left: 4px solid #667eea; margin: 20px 0; border-radius: 4px;">`)
		modernHeading(sb, b.Title)
		fmt.Fprintf(sb, `<p style="margin: 0; color: #4a5568;">%s</p>`, nl2br(b.Text))
		sb.WriteString(`</div>`)

	case generator.BlockActionItems, generator.BlockKeyDecisions:
		sb.WriteString(`<div style="margin: 24px 0;">`)
		modernHeading(sb, b.Title)
		for _, line := range listLines(b) {
			fmt.Fprintf(sb, `<div style="margin: 6px 0; color: #4a5568;">%s</div>`, line)
		}
		sb.WriteString(`</div>`)

	case generator.BlockCompanyProfile:
		sb.WriteString(`<div style="margin: 24px 0;">`)
		modernHeading(sb, b.Title)
		fmt.Fprintf(sb, `<p style="margin: 0 0 8px 0; color: #4a5568;">%s</p>`, b.Text)
		fmt.Fprintf(sb, `<p style="margin: 0; color: #4a5568;">%s</p>`, websiteLine(b, "#667eea"))
		sb.WriteString(`</div>`)

	case generator.BlockServices:
		sb.WriteString(`<div style="margin: 24px 0;">`)
		modernHeading(sb, b.Title)
		for _, s := range b.Services {
			fmt.Fprintf(sb, `<div style="margin: 6px 0; color: #4a5568;">• %s</div>`, serviceLine(s))
		}
		sb.WriteString(`</div>`)

	case generator.BlockCTA:
		sb.WriteString(`<div style="background: #f0fff4; padding: 16px; border-radius: 6px; margin: 24px 0; border-left: 4px solid #48bb78;">`)
		fmt.Fprintf(sb, `<p style="margin: 0; color: #2d3748; font-weight: 500;">%s</p>`, b.Text)
		sb.WriteString(`</div>`)

	case generator.BlockClosing:
		fmt.Fprintf(sb, `<p style="margin: 24px 0 8px 0; color: #2d3748;">%s</p>`, b.Text)

	case generator.BlockCompliance:
		sb.WriteString(`<hr style="border: none; border-top: 1px solid #e2e8f0; margin: 24px 0;" />`)
		fmt.Fprintf(sb, `<p style="margin: 0; font-size: 12px; color: #a0aec0;">%s</p>`, b.Text)

	case generator.BlockSignature:
		fmt.Fprintf(sb, `<div style="padding-top: 20px;">%s</div>`, b.HTML)
	}
}

func (modernRenderer) close(sb *strings.Builder) {
	sb.WriteString(`</div></div>`)
}

// modernHeading пишет заголовок секции в современном стиле
func modernHeading(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, `<p style="margin: 0 0 12px 0; font-weight: 600; color: #2d3748; font-size: 15px;">%s</p>`, title)
}
