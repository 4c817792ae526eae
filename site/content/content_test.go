package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previz/site/site/content"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := content.Default()
	assert.Equal(t, "Previz Private Limited", c.Studio.LegalName)
	assert.Equal(t, "Site Under Development: Some features may be limited.", c.Banner)
	assert.Len(t, c.Clips, 3)
	assert.Equal(t, "Showreel 1", c.Clips[0].Title)
	assert.Len(t, c.Services.Items, 6)
	assert.Equal(t, "Chennai - 600087", c.Studio.Address[len(c.Studio.Address)-1])
	assert.Empty(t, c.Studio.Emails, "no mailbox is baked into the defaults")

	// Each call returns an independent value.
	c.Clips[0].Title = "changed"
	assert.Equal(t, "Showreel 1", content.Default().Clips[0].Title)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, data string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "content.yaml")
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
		return path
	}

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()

		c, err := content.Load("")
		require.NoError(t, err)
		assert.Equal(t, content.Default(), c)
	})

	t.Run("overlays sections", func(t *testing.T) {
		t.Parallel()

		path := write(t, `
studio:
  emails: [hello@studio.test]
clips:
  - title: Reel
    url: https://cdn.example.com/reel.mp4
`)
		c, err := content.Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"hello@studio.test"}, c.Studio.Emails)
		assert.Equal(t, "Previz Private Limited", c.Studio.LegalName)
		require.Len(t, c.Clips, 1)
		assert.Equal(t, "Reel", c.Clips[0].Title)
		assert.Len(t, c.Services.Items, 6)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		t.Parallel()

		c, err := content.Load(write(t, ""))
		require.NoError(t, err)
		assert.Len(t, c.Clips, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := content.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, content.ErrReadContent)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		_, err := content.Load(write(t, "studoi:\n  name: typo\n"))
		assert.ErrorIs(t, err, content.ErrInvalidContent)
	})

	t.Run("clip without url", func(t *testing.T) {
		t.Parallel()

		_, err := content.Load(write(t, "clips:\n  - title: Broken\n"))
		require.ErrorIs(t, err, content.ErrInvalidContent)
		assert.Contains(t, err.Error(), "clip 1: url is required")
	})
}

func TestContent_WithClipURLs(t *testing.T) {
	t.Parallel()

	base := content.Default()

	tests := []struct {
		name   string
		urls   []string
		titles []string
	}{
		{name: "nil keeps clips", urls: nil, titles: []string{"Showreel 1", "Showreel 2", "Showreel 3"}},
		{name: "blank entries only", urls: []string{" ", ""}, titles: []string{"Showreel 1", "Showreel 2", "Showreel 3"}},
		{name: "fewer urls", urls: []string{"https://a/1.mp4"}, titles: []string{"Showreel 1"}},
		{
			name:   "more urls",
			urls:   []string{"a.mp4", "b.mp4", "c.mp4", "d.mp4"},
			titles: []string{"Showreel 1", "Showreel 2", "Showreel 3", "Showreel 4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := base.WithClipURLs(tt.urls)
			titles := make([]string, len(c.Clips))
			for i, clip := range c.Clips {
				titles[i] = clip.Title
			}
			assert.Equal(t, tt.titles, titles)
			if len(tt.urls) > 0 && tt.urls[0] != " " {
				assert.Equal(t, tt.urls, c.ClipURLs())
			}
		})
	}

	assert.Len(t, base.Clips, 3, "receiver is not modified")
}

func TestPhone(t *testing.T) {
	t.Parallel()

	p := content.Phone{Number: "+91 73959 61056", Label: "Prakash"}
	assert.Equal(t, "tel:+917395961056", p.Href())
	assert.Equal(t, "+91 73959 61056 (Prakash)", p.Display())
	assert.Equal(t, "123", content.Phone{Number: "123"}.Display())
}
