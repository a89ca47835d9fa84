package content

import (
	"testing"

	"github.com/ItsNotGoodName/webdesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider() Provider {
	return NewProvider(config.Config{
		About: "  Hello https://example.com  \n",
		Projects: []config.Project{
			{
				ID:          "proj-map",
				Title:       "Mini Map Explorer",
				Year:        "2026",
				Description: "Small map explorer.",
				Links:       []config.Link{{Label: "Repo", Href: "https://example.com/repo"}},
				Tech:        []string{"JS", "Maps"},
			},
		},
	})
}

func TestAbout(t *testing.T) {
	c, ok := newProvider().Content(KeyAbout)

	require.True(t, ok)
	assert.Equal(t, "About", c.Title)
	assert.Equal(t, KindText, c.Node.Kind)
	assert.Equal(t, "Hello https://example.com", c.Node.Text)
	assert.True(t, c.Node.Linkify)
}

func TestProjectFolder(t *testing.T) {
	c, ok := newProvider().Content("proj-map")

	require.True(t, ok)
	assert.Equal(t, "Mini Map Explorer", c.Title)
	assert.Equal(t, KindFiles, c.Node.Kind)
	require.Len(t, c.Node.Files, 2)
	assert.Equal(t, File{
		Name:  "README.txt",
		Meta:  "2026",
		Key:   "proj-map:README.txt",
		Title: "Mini Map Explorer — README.txt",
	}, c.Node.Files[0])
	assert.Equal(t, "1 items", c.Node.Files[1].Meta)
	assert.Equal(t, "proj-map:LINKS.txt", c.Node.Files[1].Key)
}

func TestProjectFiles(t *testing.T) {
	p := newProvider()

	readme, ok := p.Content("proj-map:README.txt")
	require.True(t, ok)
	assert.Equal(t, "Mini Map Explorer\n\nSmall map explorer.\n\nTech:\n- JS\n- Maps", readme.Node.Text)

	links, ok := p.Content("proj-map:LINKS.txt")
	require.True(t, ok)
	assert.Equal(t, KindLinks, links.Node.Kind)
	assert.Equal(t, "Mini Map Explorer — LINKS.txt", links.Title)
	assert.Len(t, links.Node.Links, 1)
}

func TestMissingContent(t *testing.T) {
	p := newProvider()

	for _, key := range []string{"", "nope", "nope:README.txt", "proj-map:OTHER.txt"} {
		_, ok := p.Content(key)
		assert.False(t, ok, key)
	}
}

func TestIcons(t *testing.T) {
	assert.Equal(t, []Icon{{Key: "proj-map", Label: "Mini Map Explorer"}}, newProvider().Icons())
}
