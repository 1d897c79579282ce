package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromYAML(t *testing.T, doc string) *viper.Viper {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(doc)))
	return v
}

func TestLoad_Defaults(t *testing.T) {
	c, err := load(fromYAML(t, `
database:
  url: postgres://localhost/crewboard
`))
	require.NoError(t, err)
	assert.Equal(t, SourcePostgres, c.Source.Kind)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, 120, c.Security.RateLimit.RequestsPerMinute)
	assert.Equal(t, 30*time.Minute, c.Security.RateLimit.TTL)
	assert.Equal(t, 3, c.Timeline.OnSiteLimit)
	assert.Equal(t, 104, c.Timeline.MaxWeekOffset)

	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", loc.String())
}

func TestLoad_FileSourceAndKeys(t *testing.T) {
	c, err := load(fromYAML(t, `
source:
  kind: file
  file: seed/demo.toml
security:
  api_keys:
    enabled: true
    keys:
      - org_id: 5b0c1f7e-0000-4000-8000-000000000001
        hash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$a2V5"
  denylist:
    enabled: true
    orgs: ["5b0c1f7e-0000-4000-8000-000000000002"]
timeline:
  timezone: UTC
  on_site_limit: 5
`))
	require.NoError(t, err)
	assert.Equal(t, SourceFile, c.Source.Kind)
	require.Len(t, c.Security.APIKeys.Keys, 1)
	assert.Equal(t, "5b0c1f7e-0000-4000-8000-000000000001", c.Security.APIKeys.Keys[0].OrgID)
	assert.Equal(t, 5, c.Timeline.OnSiteLimit)
	assert.True(t, c.Security.Denylist.Enabled)
	assert.Equal(t, []string{"5b0c1f7e-0000-4000-8000-000000000002"}, c.Security.Denylist.Orgs)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/crewboard")
	t.Setenv("TIMELINE_MAX_WEEK_OFFSET", "12")

	c, err := load(fromYAML(t, `
database:
  url: postgres://file/crewboard
`))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/crewboard", c.Database.URL)
	assert.Equal(t, 12, c.Timeline.MaxWeekOffset)
}

func TestLoad_Validation(t *testing.T) {
	// empty env values are ignored by viper
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SOURCE_KIND", "")

	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"postgres without url", `source: {kind: postgres}`, "database.url"},
		{"unknown source", `source: {kind: redis}`, "unknown source.kind"},
		{"bad timezone", "database: {url: x}\ntimeline: {timezone: Mars/Olympus}", "timeline.timezone"},
		{"keys enabled but empty", "database: {url: x}\nsecurity: {api_keys: {enabled: true}}", "no keys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(fromYAML(t, tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
