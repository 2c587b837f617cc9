package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagedeck/pagedeck/pkg/catalog"
)

var sampleProjects = []catalog.Project{
	{
		Name:           "blog",
		Description:    "writing",
		URL:            "https://alice.github.io/blog/",
		RepoURL:        "https://github.com/alice/blog",
		AutoDiscovered: true,
	},
	{
		Name: "Mirror",
		URL:  "https://mirror.example.com",
	},
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "YAML", ""} {
		_, err := ParseFormat(valid)
		assert.NoError(t, err, "format %q", valid)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, sampleProjects))

	out := buf.String()
	assert.Contains(t, out, `"name": "blog"`)
	assert.Contains(t, out, `"auto_discovered": true`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, sampleProjects))

	out := buf.String()
	assert.Contains(t, out, "name: blog")
	assert.Contains(t, out, "url: https://mirror.example.com")
}

func TestTableFormatterProjects(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, sampleProjects))

	out := buf.String()
	assert.Contains(t, out, "blog")
	assert.Contains(t, out, "auto")
	assert.Contains(t, out, "manual")
}

func TestTableFormatterProfile(t *testing.T) {
	var buf bytes.Buffer
	profile := catalog.Profile{
		Username:   "alice",
		AvatarURL:  "https://github.com/alice.png",
		ProfileURL: "https://github.com/alice",
	}
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, profile))

	assert.Contains(t, buf.String(), "alice")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"count": 2}))

	assert.Contains(t, buf.String(), `"count": 2`)
}
