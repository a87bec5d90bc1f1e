package generator

import (
	"strings"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

// RenderSignature подставляет значения профилей в шаблон подписи
//
// Замена буквальная, глобальная и регистрозависимая. Пустые поля профиля
// заменяются пустой строкой. Неизвестные {{токены}} остаются в тексте как
// есть — кривой шаблон не считается ошибкой. HTML-экранирование значений
// не выполняется: поля профиля задаются владельцем настроек, и их
// очистка — обязанность формы настроек
func RenderSignature(template string, user domain.UserProfile, company domain.CompanyProfile) string {
	replacer := strings.NewReplacer(
		"{{name}}", user.Name,
		"{{jobTitle}}", user.JobTitle,
		"{{phone}}", user.Phone,
		"{{email}}", user.Email,
		"{{companyName}}", company.CompanyName,
		"{{website}}", company.Website,
	)
	return replacer.Replace(template)
}
