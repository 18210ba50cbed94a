package s3_test

import (
	"testing"

	"cleanrate/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/uploads/a.png", s3.PublicURL("https://cdn.example.com/", "uploads/a.png"))
	assert.Equal(t, "https://cdn.example.com/uploads/a.png", s3.PublicURL("https://cdn.example.com", "uploads/a.png"))
}

func TestObjectNameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"public domain", "https://cdn.example.com/uploads/a.png", "uploads/a.png"},
		{"api endpoint", "https://s3.example.com/photos/uploads/b.png", "uploads/b.png"},
		{"foreign url", "https://elsewhere.example.com/c.png", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s3.ObjectNameFromURL("https://cdn.example.com", "https://s3.example.com", "photos", tt.url)
			assert.Equal(t, tt.want, got)
		})
	}
}
