package gh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		owner     string
		repo      string
		expectErr bool
	}{
		{
			name:  "ssh url",
			url:   "git@github.com:alice/widgets.git",
			owner: "alice",
			repo:  "widgets",
		},
		{
			name:  "https url",
			url:   "https://github.com/alice/widgets.git",
			owner: "alice",
			repo:  "widgets",
		},
		{
			name:  "https url without .git",
			url:   "https://github.com/alice/widgets",
			owner: "alice",
			repo:  "widgets",
		},
		{
			name:      "ssh url with bad path",
			url:       "git@github.com:widgets",
			expectErr: true,
		},
		{
			name:      "not a repository path",
			url:       "https://github.com/alice",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := parseRepoURL(tt.url)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}
