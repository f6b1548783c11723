package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalizer(t *testing.T) {
	_, err := NewLocalizer("fr")
	assert.Error(t, err)

	l, err := NewLocalizer("AR")
	require.NoError(t, err)
	assert.Equal(t, Arabic, l.Default().Language)
	assert.Equal(t, RTL, l.Default().Direction)
}

func TestLocalizer_Resolve(t *testing.T) {
	l, err := NewLocalizer("en")
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    string
		cookie   string
		accept   string
		expected Language
	}{
		{"nothing set uses default", "", "", "", English},
		{"query wins over cookie", "ar", "en", "en-US", Arabic},
		{"cookie wins over header", "", "ar", "en-US,en;q=0.9", Arabic},
		{"unsupported query falls through", "de", "", "ar-EG,ar;q=0.9", Arabic},
		{"header regional variant", "", "", "ar-EG", Arabic},
		{"header prefers first match", "", "", "fr-FR,en;q=0.8,ar;q=0.5", English},
		{"header with no supported language", "", "", "ja-JP", English},
		{"malformed header", "", "", ";;;", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locale := l.Resolve(tt.query, tt.cookie, tt.accept)
			assert.Equal(t, tt.expected, locale.Language)
			assert.Equal(t, tt.expected.Direction(), locale.Direction)
		})
	}
}

func TestLocale_T(t *testing.T) {
	l, err := NewLocalizer("en")
	require.NoError(t, err)

	ar := l.For(Arabic)
	assert.Equal(t, "احجز الآن", ar.T("booking.book_now"))
	// Missing Arabic entry falls back to English
	assert.Equal(t, messages[English]["hero.description"], ar.T("hero.description"))
	assert.Equal(t, "no.such.key", ar.T("no.such.key"))

	assert.Equal(t, "Book Now", l.Default().T("booking.book_now"))
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, 2)
	assert.Equal(t, English, langs[0].Code)
	assert.Equal(t, RTL, langs[1].Direction)

	langs[0].Name = "changed"
	assert.Equal(t, "English", Languages()[0].Name)
}
