package generator

import (
	"regexp"
	"strings"
)

// Регулярные выражения для преобразования HTML в текст
// Компилируются один раз при загрузке пакета
var (
	reBreak      = regexp.MustCompile(`(?i)<br\s*/?>`)
	reCloseP     = regexp.MustCompile(`(?i)</p>`)
	reCloseDiv   = regexp.MustCompile(`(?i)</div>`)
	reOpenP      = regexp.MustCompile(`(?i)<p[^>]*>`)
	reOpenDiv    = regexp.MustCompile(`(?i)<div[^>]*>`)
	reStrong     = regexp.MustCompile(`(?i)</?strong[^>]*>`)
	reEm         = regexp.MustCompile(`(?i)</?em[^>]*>`)
	reAnyTag     = regexp.MustCompile(`<[^>]+>`)
	reBlankLines = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// ToPlainText преобразует HTML-версию письма в текстовую
//
// Преобразование намеренно неточное и зависит от порядка шагов:
// сначала переводы строк из br/p/div, потом удаление остальных тегов,
// потом декодирование сущностей. Менять порядок нельзя — например,
// сущности нужно декодировать после удаления тегов, иначе текст,
// похожий на разметку, будет вырезан
func ToPlainText(html string) string {
	text := html

	// 1. Теги переноса строки превращаются в \n
	text = reBreak.ReplaceAllString(text, "\n")
	text = reCloseP.ReplaceAllString(text, "\n")
	text = reCloseDiv.ReplaceAllString(text, "\n")

	// 2. Открывающие и форматирующие теги удаляются без следа
	text = reOpenP.ReplaceAllString(text, "")
	text = reOpenDiv.ReplaceAllString(text, "")
	text = reStrong.ReplaceAllString(text, "")
	text = reEm.ReplaceAllString(text, "")

	// 3. Всё, что осталось похожим на тег, тоже удаляется
	text = reAnyTag.ReplaceAllString(text, "")

	// 4. Пять базовых HTML-сущностей
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", `"`)

	// 5. Три и более пустых строк схлопываются до двух
	text = reBlankLines.ReplaceAllString(text, "\n\n")

	// 6. Обрезаем пробелы по краям
	return strings.TrimSpace(text)
}
