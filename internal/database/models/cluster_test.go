package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenPreview(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"empty token", "", ""},
		{"short token fully masked", "abc123", "••••"},
		{"eight characters fully masked", "12345678", "••••"},
		{"long token shows edges", "tok-1234567890abcdef", "tok-…cdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cluster := &Cluster{APIToken: tt.token}
			assert.Equal(t, tt.expected, cluster.TokenPreview())
		})
	}
}

func TestTokenPreviewNeverLeaksMiddle(t *testing.T) {
	cluster := &Cluster{APIToken: "sk-verysecretmiddleportion-end1"}
	preview := cluster.TokenPreview()
	assert.NotContains(t, preview, "secretmiddle")
	assert.Len(t, []rune(preview), 9)
}
