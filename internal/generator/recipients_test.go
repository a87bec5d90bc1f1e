package generator

import (
	"reflect"
	"testing"
)

func TestSplitRecipients(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "запятые и точки с запятой вперемешку",
			raw:      "a@x.com; b@x.com,, c@x.com ",
			expected: []string{"a@x.com", "b@x.com", "c@x.com"},
		},
		{
			name:     "один адрес с пробелами",
			raw:      "  a@x.com  ",
			expected: []string{"a@x.com"},
		},
		{
			name:     "пустая строка",
			raw:      "",
			expected: nil,
		},
		{
			name:     "одни разделители",
			raw:      " ; , ; ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRecipients(tt.raw)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitRecipients(%q) = %v, ожидалось %v", tt.raw, got, tt.expected)
			}
		})
	}
}
