// Package template содержит визуальные шаблоны писем.
//
// Все шаблоны получают один и тот же набор блоков от генератора и
// отличаются только оформлением: шрифтами, цветами и отступами.
// Контракт каждого шаблона: после преобразования в текст (generator.ToPlainText)
// содержимое письма совпадает с любым другим шаблоном построчно.
// Поэтому списки выводятся строками "1. ..." и "• ..." в контейнерах
// div/p, а не тегами ol/li: закрывающий li не даёт переноса строки
// при преобразовании в текст.
package template

import (
	"fmt"
	"strings"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/generator"
)

// renderer — один визуальный шаблон
// Реализации закрыты внутри пакета: снаружи доступен только Render
type renderer interface {
	// open пишет корневой контейнер и шапку с логотипом (если он задан)
	open(sb *strings.Builder, company domain.CompanyProfile, logoURL string)
	// writeBlock пишет один блок в оформлении шаблона
	writeBlock(sb *strings.Builder, b generator.Block)
	// close закрывает корневой контейнер
	close(sb *strings.Builder)
}

// Render превращает набор блоков в готовый HTML-документ письма
// Неизвестный идентификатор шаблона откатывается к classic
func Render(id domain.BodyTemplate, set generator.BlockSet, company domain.CompanyProfile) string {
	r := rendererFor(id)

	logoURL := ""
	if company.LogoURL != "" {
		logoURL = ResolveLogoURL(company.LogoURL, company.Website)
	}

	var sb strings.Builder
	r.open(&sb, company, logoURL)
	for _, b := range set.Blocks {
		r.writeBlock(&sb, b)
	}
	r.close(&sb)
	return sb.String()
}

// rendererFor выбирает реализацию по идентификатору
func rendererFor(id domain.BodyTemplate) renderer {
	switch id {
	case domain.TemplateModern:
		return modernRenderer{}
	case domain.TemplateMinimal:
		return minimalRenderer{}
	case domain.TemplateColorful:
		return colorfulRenderer{}
	case domain.TemplateElegant:
		return elegantRenderer{}
	default:
		// classic и всё неизвестное
		return classicRenderer{}
	}
}

// ResolveLogoURL приводит адрес логотипа к абсолютному
//
// Абсолютные адреса (http/https) возвращаются как есть. Относительные
// разрешаются от адреса сайта компании; если сайт сохранён без схемы,
// подставляется https://
func ResolveLogoURL(logoURL, website string) string {
	if strings.HasPrefix(logoURL, "http") {
		return logoURL
	}

	base := website
	if !strings.HasPrefix(base, "http") {
		base = "https://" + base
	}
	if strings.HasPrefix(logoURL, "/") {
		return base + logoURL
	}
	return base + "/" + logoURL
}

// nl2br заменяет переводы строк на <br>
// Применяется к свободному тексту итогов встречи; другого экранирования нет
func nl2br(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}

// numbered возвращает элементы нумерованными строками: "1. ...", "2. ..."
func numbered(items []string) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return result
}

// bulleted возвращает элементы маркированными строками: "• ..."
func bulleted(items []string) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = "• " + item
	}
	return result
}

// listLines возвращает строки списка блока с учётом его нумерации
func listLines(b generator.Block) []string {
	if b.Ordered {
		return numbered(b.Items)
	}
	return bulleted(b.Items)
}

// detailLines возвращает строки блока деталей встречи
func detailLines(d *generator.MeetingDetails) []string {
	return []string{
		"Date: " + d.Date,
		"Time: " + d.Time,
		"Platform: " + d.Platform,
		"Meeting Link: " + d.Link,
	}
}

// serviceLine возвращает строку услуги: название выделяется жирным,
// но текст совпадает во всех шаблонах
func serviceLine(s domain.ServiceItem) string {
	return fmt.Sprintf("<strong>%s:</strong> %s", s.Name, s.Description)
}

// websiteLine возвращает строку со ссылкой на сайт компании
func websiteLine(b generator.Block, linkColor string) string {
	return fmt.Sprintf(
		`Website: <a href="%s" style="color: %s; text-decoration: none;">%s</a>`,
		b.WebsiteURL, linkColor, b.WebsiteLabel,
	)
}
