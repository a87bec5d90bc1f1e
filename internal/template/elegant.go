package template

import (
	"fmt"
	"strings"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/generator"
)

// elegantRenderer — строгий премиальный стиль
// Georgia, тёмная шапка, золотые разделители, выравнивание по ширине
type elegantRenderer struct{}

func (elegantRenderer) open(sb *strings.Builder, company domain.CompanyProfile, logoURL string) {
	sb.WriteString(`<div style="font-family: 'Georgia', 'Times New Roman', serif; line-height: 1.8; color: #1a1a1a; max-width: 620px; margin: 0 auto; background: #fafafa;">`)

	if logoURL != "" {
		sb.WriteString(`<div style="background: #1a1a1a; padding: 35px 30px; text-align: center; margin-bottom: 35px;">`)
		fmt.Fprintf(sb, `<img src="%s" alt="%s" style="max-width: 200px; height: auto; filter: brightness(0) invert(1);" />`, logoURL, company.CompanyName)
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`<div style="background: #ffffff; padding: 40px 35px; border: 1px solid #e5e5e5;">`)
}

func (elegantRenderer) writeBlock(sb *strings.Builder, b generator.Block) {
	switch b.Kind {
	case generator.BlockGreeting:
		fmt.Fprintf(sb, `<p style="margin: 0 0 22px 0; font-size: 17px; color: #1a1a1a; font-style: italic;">%s</p>`, b.Text)

	case generator.BlockIntro:
		fmt.Fprintf(sb, `<p style="margin: 0 0 28px 0; color: #4a4a4a; text-align: justify;">%s</p>`, b.Text)

	case generator.BlockMeetingDetails:
		sb.WriteString(`<div style="border-top: 2px solid #d4af37; padding-top: 20px; margin: 28px 0;">`)
		elegantHeading(sb, b.Title)
		for _, line := range detailLines(b.Details) {
			fmt.Fprintf(sb, `<div style="margin: 6px 0; color: #4a4a4a;">%s</div>`, line)
		}
		sb.WriteString(`</div>`)

	case generator.BlockMeetingSummary:
		sb.WriteString(`<div style="border-top: 2px solid #d4af37; padding-top: 20px; margin: 28px 0;">`)
		elegantHeading(sb, b.Title)
		fmt.Fprintf(sb, `<p style="margin: 0; color: #4a4a4a; text-align: justify;">%s</p>`, nl2br(b.Text))
		sb.WriteString(`</div>`)

	case generator.BlockActionItems, generator.BlockKeyDecisions:
		sb.WriteString(`<div style="border-top: 1px solid #e5e5e5; padding-top: 20px; margin: 28px 0;">`)
		elegantHeading(sb, b.Title)
		for _, line := range listLines(b) {
			fmt.Fprintf(sb, `<div style="margin: 8px 0; color: #4a4a4a; text-align: justify;">%s</div>`, line)
		}
		sb.WriteString(`</div>`)

	case generator.BlockCompanyProfile:
		sb.WriteString(`<div style="border-top: 1px solid #e5e5e5; padding-top: 20px; margin: 28px 0;">`)
		elegantHeading(sb, b.Title)
		fmt.Fprintf(sb, `<p style="margin: 0 0 8px 0; color: #4a4a4a;">%s</p>`, b.Text)
		fmt.Fprintf(sb, `<p style="margin: 0; color: #4a4a4a;">%s</p>`, websiteLine(b, "#1a1a1a"))
		sb.WriteString(`</div>`)

	case generator.BlockServices:
		sb.WriteString(`<div style="border-top: 1px solid #e5e5e5; padding-top: 20px; margin: 28px 0;">`)
		elegantHeading(sb, b.Title)
		for _, s := range b.Services {
			fmt.Fprintf(sb, `<div style="margin: 8px 0; color: #4a4a4a;">• %s</div>`, serviceLine(s))
		}
		sb.WriteString(`</div>`)

	case generator.BlockCTA:
		sb.WriteString(`<div style="background: #f9f9f9; padding: 20px; margin: 28px 0; border-left: 4px solid #d4af37;">`)
		fmt.Fprintf(sb, `<p style="margin: 0; color: #1a1a1a; font-style: italic; text-align: center;">%s</p>`, b.Text)
		sb.WriteString(`</div>`)

	case generator.BlockClosing:
		fmt.Fprintf(sb, `<p style="margin: 28px 0 8px 0; color: #1a1a1a;">%s</p>`, b.Text)

	case generator.BlockCompliance:
		sb.WriteString(`<hr style="border: none; border-top: 1px solid #e5e5e5; margin: 28px 0;" />`)
		fmt.Fprintf(sb, `<p style="margin: 0; font-size: 12px; color: #8a8a8a;">%s</p>`, b.Text)

	case generator.BlockSignature:
		fmt.Fprintf(sb, `<div style="padding-top: 30px; border-top: 1px solid #e5e5e5; margin-top: 30px;">%s</div>`, b.HTML)
	}
}

func (elegantRenderer) close(sb *strings.Builder) {
	sb.WriteString(`</div></div>`)
}

// elegantHeading пишет заголовок секции с разрядкой
func elegantHeading(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, `<p style="margin: 0 0 12px 0; font-weight: 600; color: #1a1a1a; font-size: 16px; letter-spacing: 1px;">%s</p>`, title)
}
