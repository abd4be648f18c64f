package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestImageTag covers prefix defaulting and revision abbreviation.
func TestImageTag(t *testing.T) {
	tests := []struct {
		name          string
		repositoryURI string
		revision      string
		want          string
	}{
		{
			name:          "prefix and revision",
			repositoryURI: "registry.example.com/team/project",
			revision:      "0123456789abcdef0123456789abcdef01234567",
			want:          "registry.example.com/team/project:0123456",
		},
		{
			name:          "default prefix",
			repositoryURI: "",
			revision:      "fedcba9876543210fedcba9876543210fedcba98",
			want:          "docker-project:fedcba9",
		},
		{
			name:          "no revision",
			repositoryURI: "myproject",
			revision:      "",
			want:          "myproject",
		},
		{
			name:          "no prefix and no revision",
			repositoryURI: "",
			revision:      "",
			want:          "docker-project",
		},
		{
			name:          "revision shorter than seven characters",
			repositoryURI: "myproject",
			revision:      "ab12",
			want:          "myproject:ab12",
		},
		{
			name:          "revision of exactly seven characters",
			repositoryURI: "myproject",
			revision:      "abcdef0",
			want:          "myproject:abcdef0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageTag(tt.repositoryURI, tt.revision))
		})
	}
}
