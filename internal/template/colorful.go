package template

import (
	"fmt"
	"strings"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/generator"
)

// colorfulRenderer — яркий стиль
// Разноцветная градиентная шапка, секции с цветными подложками и акцентами
type colorfulRenderer struct{}

func (colorfulRenderer) open(sb *strings.Builder, company domain.CompanyProfile, logoURL string) {
	sb.WriteString(`<div style="font-family: 'Helvetica Neue', Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto;">`)

	if logoURL != "" {
		sb.WriteString(`<div style="background: linear-gradient(90deg, #ff6b6b, #4ecdc4, #45b7d1, #96ceb4); padding: 25px; text-align: center; margin-bottom: 25px; border-radius: 8px 8px 0 0;">`)
		fmt.Fprintf(sb, `<img src="%s" alt="%s" style="max-width: 180px; height: auto; background: white; padding: 10px; border-radius: 6px;" />`, logoURL, company.CompanyName)
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`<div style="background: #fff; padding: 25px; border-radius: 0 0 8px 8px;">`)
}

func (colorfulRenderer) writeBlock(sb *strings.Builder, b generator.Block) {
	switch b.Kind {
	case generator.BlockGreeting:
		fmt.Fprintf(sb, `<p style="margin: 0 0 18px 0; font-size: 17px; color: #2c3e50;">%s</p>`, b.Text)

	case generator.BlockIntro:
		fmt.Fprintf(sb, `<p style="margin: 0 0 22px 0; color: #34495e;">%s</p>`, b.Text)

	case generator.BlockMeetingDetails:
		sb.WriteString(`<div style="background: #e3fafc; border-left: 5px solid #45b7d1; padding: 15px; margin: 20px 0; border-radius: 4px;">`)
		colorfulHeading(sb, b.Title, "#0b7285")
		for _, line := range detailLines(b.Details) {
			fmt.Fprintf(sb, `<div style="margin: 5px 0; color: #495057;">%s</div>`, line)
		}
		sb.WriteString(`</div>`)

	case generator.BlockMeetingSummary:
		sb.WriteString(`<div style="background: #fff5f5; border-left: 5px solid #ff6b6b; padding: 15px; margin: 20px 0; border-radius: 4px;">`)
		colorfulHeading(sb, b.Title, "#c92a2a")
		fmt.Fprintf(sb, `<p style="margin: 0; color: #495057;">%s</p>`, nl2br(b.Text))
		sb.WriteString(`</div>`)

	case generator.BlockActionItems:
		sb.WriteString(`<div style="background: #e7f5ff; border-left: 5px solid #4ecdc4; padding: 15px; margin: 20px 0; border-radius: 4px;">`)
		colorfulHeading(sb, b.Title, "#087f5b")
		for _, line := range listLines(b) {
			fmt.Fprintf(sb, `<div style="margin: 5px 0; color: #495057;">%s</div>`, line)
		}
		sb.WriteString(`</div>`)

	case generator.BlockKeyDecisions:
		sb.WriteString(`<div style="background: #fff3cd; border-left: 5px solid #ffd43b; padding: 15px; margin: 20px 0; border-radius: 4px;">`)
		colorfulHeading(sb, b.Title, "#856404")
		for _, line := range listLines(b) {
			fmt.Fprintf(sb, `<div style="margin: 5px 0; color: #495057;">%s</div>`, line)
		}
		sb.WriteString(`</div>`)

	case generator.BlockCompanyProfile:
		sb.WriteString(`<div style="background: #f3f0ff; border-left: 5px solid #845ef7; padding: 15px; margin: 20px 0; border-radius: 4px;">`)
		colorfulHeading(sb, b.Title, "#5f3dc4")
		fmt.Fprintf(sb, `<p style="margin: 0 0 8px 0; color: #495057;">%s</p>`, b.Text)
		fmt.Fprintf(sb, `<p style="margin: 0; color: #495057;">%s</p>`, websiteLine(b, "#5f3dc4"))
		sb.WriteString(`</div>`)

	case generator.BlockServices:
		sb.WriteString(`<div style="background: #ebfbee; border-left: 5px solid #96ceb4; padding: 15px; margin: 20px 0; border-radius: 4px;">`)
		colorfulHeading(sb, b.Title, "#2b8a3e")
		for _, s := range b.Services {
			fmt.Fprintf(sb, `<div style="margin: 5px 0; color: #495057;">• %s</div>`, serviceLine(s))
		}
		sb.WriteString(`</div>`)

	case generator.BlockCTA:
		sb.WriteString(`<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; border-radius: 8px; margin: 25px 0; text-align: center;">`)
		fmt.Fprintf(sb, `<p style="margin: 0; font-weight: 600; font-size: 16px;">%s</p>`, b.Text)
		sb.WriteString(`</div>`)

	case generator.BlockClosing:
		fmt.Fprintf(sb, `<p style="margin: 20px 0 8px 0; color: #2c3e50;">%s</p>`, b.Text)

	case generator.BlockCompliance:
		sb.WriteString(`<hr style="border: none; border-top: 1px solid #dee2e6; margin: 24px 0;" />`)
		fmt.Fprintf(sb, `<p style="margin: 0; font-size: 12px; color: #868e96;">%s</p>`, b.Text)

	case generator.BlockSignature:
		fmt.Fprintf(sb, `<div style="padding-top: 20px; background: #f8f9fa; border-radius: 0 0 8px 8px;">%s</div>`, b.HTML)
	}
}

func (colorfulRenderer) close(sb *strings.Builder) {
	sb.WriteString(`</div></div>`)
}

// colorfulHeading пишет заголовок секции в цвете акцента
func colorfulHeading(sb *strings.Builder, title, color string) {
	fmt.Fprintf(sb, `<p style="margin: 0 0 10px 0; font-weight: 700; color: %s; font-size: 16px;">%s</p>`, color, title)
}
