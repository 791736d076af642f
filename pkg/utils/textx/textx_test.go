package textx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hidrógeno", "hidrogeno"},
		{"hidrogeno", "hidrogeno"},
		{"HIDRÓGENO", "hidrogeno"},
		{"Neón", "neon"},
		{"FLÚOR", "fluor"},
		{"áéíóú", "aeiou"},
		{"ÁÉÍÓÚ", "aeiou"},
		{"Ne", "ne"},
		{"OG", "og"},
		// 非 ASCII 字母只处理五个重音元音
		{"Estaño", "estaño"},
		{"ESTAÑO", "estaÑo"},
		{"Hidrögeno", "hidrögeno"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, input := range []string{"Hidrógeno", "OGANESÓN", "Estaño", "ESTAÑO", "mixed Árbol", "x"} {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), input)
	}
}

func TestNormalizeCaseAndAccentInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("hidrogeno"), Normalize("Hidrógeno"))
	assert.Equal(t, Normalize("hidrogeno"), Normalize("HIDRÓGENO"))
}
