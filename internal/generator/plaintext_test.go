package generator

import "testing"

func TestToPlainText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "абзацы дают переводы строк",
			html:     "<p>Hello</p><p>World</p>",
			expected: "Hello\nWorld",
		},
		{
			name:     "br в любом написании",
			html:     "Line1<br>Line2<br/>Line3<BR />Line4",
			expected: "Line1\nLine2\nLine3\nLine4",
		},
		{
			name:     "div даёт перевод строки",
			html:     `<div style="margin: 4px 0;">first</div><div>second</div>`,
			expected: "first\nsecond",
		},
		{
			name:     "форматирующие теги удаляются без следа",
			html:     "<strong>Bold</strong> and <em>italic</em> text",
			expected: "Bold and italic text",
		},
		{
			name:     "незнакомые теги вырезаются",
			html:     `<span style="color: red;">hi</span><img src="logo.png" />`,
			expected: "hi",
		},
		{
			name:     "пять базовых сущностей декодируются",
			html:     "Tom &amp; Jerry &lt;3 &quot;quoted&quot;&nbsp;&gt;",
			expected: `Tom & Jerry <3 "quoted" >`,
		},
		{
			name:     "три и более пустых строк схлопываются",
			html:     "<p>a</p><div></div><div></div><div></div><p>b</p>",
			expected: "a\n\nb",
		},
		{
			name:     "пробелы по краям обрезаются",
			html:     "  <p> text </p>  ",
			expected: "text",
		},
		{
			name:     "ссылка оставляет только текст",
			html:     `Website: <a href="https://x.com" style="color: #2563eb;">x.com</a>`,
			expected: "Website: x.com",
		},
		{
			name:     "пустой HTML",
			html:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPlainText(tt.html)
			if got != tt.expected {
				t.Errorf("ToPlainText(%q) = %q, ожидалось %q", tt.html, got, tt.expected)
			}
		})
	}
}

// Сущности декодируются после удаления тегов: текст, в котором
// после декодирования появляется нечто похожее на тег, не вырезается
func TestToPlainTextEntityOrder(t *testing.T) {
	got := ToPlainText("&lt;p&gt;not a tag&lt;/p&gt;")
	expected := "<p>not a tag</p>"
	if got != expected {
		t.Errorf("получено %q, ожидалось %q", got, expected)
	}
}
