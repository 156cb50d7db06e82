package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceTokens(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		replacements map[string]string
		want         string
	}{
		{
			name:         "single token",
			input:        "أفضل فني {service} في الكويت",
			replacements: map[string]string{"service": "تكييف"},
			want:         "أفضل فني تكييف في الكويت",
		},
		{
			name:         "two tokens",
			input:        "كم تكلفة {service} في {area}؟",
			replacements: map[string]string{"service": "تكييف", "area": "حولي"},
			want:         "كم تكلفة تكييف في حولي؟",
		},
		{
			name:         "repeated token replaced globally",
			input:        "{service} - {service}",
			replacements: map[string]string{"service": "سباكة"},
			want:         "سباكة - سباكة",
		},
		{
			name:         "unknown token left untouched",
			input:        "hello {world}",
			replacements: map[string]string{"service": "x"},
			want:         "hello {world}",
		},
		{
			name:         "no tokens",
			input:        "plain text",
			replacements: map[string]string{"service": "x"},
			want:         "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplaceTokens(tt.input, tt.replacements))
		})
	}
}

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/96550001111", WhatsAppLink("+965 5000 1111", ""))
	assert.Equal(t,
		"https://wa.me/96550001111?text=%D9%85%D8%B1%D8%AD%D8%A8%D8%A7",
		WhatsAppLink("96550001111", "مرحبا"))
}
