package generator

import "strings"

// SplitRecipients разбирает строку получателей на список адресов
//
// Разделители — запятая и точка с запятой, лишние пробелы обрезаются,
// пустые элементы отбрасываются. Используется для полей To/CC/BCC
// перед передачей в почтовый API
func SplitRecipients(raw string) []string {
	normalized := strings.ReplaceAll(raw, ";", ",")

	var result []string
	for _, part := range strings.Split(normalized, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			result = append(result, addr)
		}
	}
	return result
}
