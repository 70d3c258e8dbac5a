package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParentOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/Papers/Drafts", "/Papers"},
		{"/Papers", ""},
		{"/Papers/", ""},
		{"/A/B/C", "/A/B"},
		{"/", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParentOf(tt.path), "path %q", tt.path)
	}
}

func TestNameOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/Papers/Drafts", "Drafts"},
		{"/Papers", "Papers"},
		{"General", "General"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NameOf(tt.path), "path %q", tt.path)
	}
}
