package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile_EmptyPath(t *testing.T) {
	p, err := LoadProfile("")
	require.NoError(t, err)
	assert.Empty(t, p.DefaultTemplate)
	assert.Empty(t, p.SectionVisibility)
}

func TestLoadProfile_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	content := `{
		"defaultTemplate": "agency.docx",
		"sectionVisibility": {"earlier_career": false, "publications": false}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "agency.docx", p.DefaultTemplate)
	assert.Equal(t, map[string]bool{"earlier_career": false, "publications": false}, p.SectionVisibility)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadProfile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := LoadProfile(path)
	assert.Error(t, err)
}
