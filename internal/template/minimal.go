package template

import (
	"fmt"
	"strings"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/generator"
)

// minimalRenderer — минималистичный стиль
// Системные шрифты, много воздуха, заголовки капителью без украшений
type minimalRenderer struct{}

func (minimalRenderer) open(sb *strings.Builder, company domain.CompanyProfile, logoURL string) {
	sb.WriteString(`<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.8; color: #1a202c; max-width: 580px; margin: 0 auto; padding: 40px 20px;">`)

	if logoURL != "" {
		sb.WriteString(`<div style="text-align: center; margin-bottom: 40px;">`)
		fmt.Fprintf(sb, `<img src="%s" alt="%s" style="max-width: 150px; height: auto;" />`, logoURL, company.CompanyName)
		sb.WriteString(`</div>`)
	}
}

func (minimalRenderer) writeBlock(sb *strings.Builder, b generator.Block) {
	switch b.Kind {
	case generator.BlockGreeting:
		fmt.Fprintf(sb, `<p style="margin: 0 0 24px 0; font-size: 16px;">%s</p>`, b.Text)

	case generator.BlockIntro:
		fmt.Fprintf(sb, `<p style="margin: 0 0 32px 0; color: #4a5568;">%s</p>`, b.Text)

	case generator.BlockMeetingDetails:
		minimalHeading(sb, b.Title)
		sb.WriteString(`<div style="margin: 0 0 32px 0;">`)
		for _, line := range detailLines(b.Details) {
			fmt.Fprintf(sb, `<p style="margin: 4px 0; color: #2d3748;">%s</p>`, line)
		}
		sb.WriteString(`</div>`)

	case generator.BlockMeetingSummary:
		minimalHeading(sb, b.Title)
		fmt.Fprintf(sb, `<p style="margin: 0 0 32px 0; color: #2d3748;">%s</p>`, nl2br(b.Text))

	case generator.BlockActionItems, generator.BlockKeyDecisions:
		minimalHeading(sb, b.Title)
		sb.WriteString(`<div style="margin: 0 0 32px 0;">`)
		for _, line := range listLines(b) {
			fmt.Fprintf(sb, `<p style="margin: 8px 0; color: #2d3748;">%s</p>`, line)
		}
		sb.WriteString(`</div>`)

	case generator.BlockCompanyProfile:
		minimalHeading(sb, b.Title)
		fmt.Fprintf(sb, `<p style="margin: 0 0 8px 0; color: #2d3748;">%s</p>`, b.Text)
		fmt.Fprintf(sb, `<p style="margin: 0 0 32px 0; color: #2d3748;">%s</p>`, websiteLine(b, "#1a202c"))

	case generator.BlockServices:
		minimalHeading(sb, b.Title)
		sb.WriteString(`<div style="margin: 0 0 32px 0;">`)
		for _, s := range b.Services {
			fmt.Fprintf(sb, `<p style="margin: 8px 0; color: #2d3748;">• %s</p>`, serviceLine(s))
		}
		sb.WriteString(`</div>`)

	case generator.BlockCTA:
		fmt.Fprintf(sb, `<p style="margin: 32px 0; color: #2d3748;">%s</p>`, b.Text)

	case generator.BlockClosing:
		fmt.Fprintf(sb, `<p style="margin: 32px 0 0 0; color: #1a202c;">%s</p>`, b.Text)

	case generator.BlockCompliance:
		fmt.Fprintf(sb, `<p style="margin: 32px 0 0 0; font-size: 12px; color: #a0aec0;">%s</p>`, b.Text)

	case generator.BlockSignature:
		fmt.Fprintf(sb, `<div style="margin-top: 40px; padding-top: 32px; border-top: 1px solid #e2e8f0;">%s</div>`, b.HTML)
	}
}

func (minimalRenderer) close(sb *strings.Builder) {
	sb.WriteString(`</div>`)
}

// minimalHeading пишет заголовок секции в минималистичном стиле
func minimalHeading(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, `<p style="margin: 32px 0 12px 0; font-size: 14px; font-weight: 600; letter-spacing: 0.5px; text-transform: uppercase; color: #718096;">%s</p>`, title)
}
