package supabase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/model"
)

type staticCredentials struct {
	url string
	key string
	err error
}

func (c staticCredentials) Credentials() (string, string, error) {
	return c.url, c.key, c.err
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")

	url, key, err := EnvCredentials{}.Credentials()

	require.NoError(t, err)
	assert.Equal(t, "https://example.supabase.co", url)
	assert.Equal(t, "anon-key", key)
}

func TestEnvCredentialsMissing(t *testing.T) {
	cases := map[string][2]string{
		"no url": {"", "anon-key"},
		"no key": {"https://example.supabase.co", ""},
		"none":   {"", ""},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("SUPABASE_URL", env[0])
			t.Setenv("SUPABASE_ANON_KEY", env[1])

			_, _, err := EnvCredentials{}.Credentials()

			var configErr *model.ConfigurationError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, "missing env: SUPABASE_URL or SUPABASE_ANON_KEY", configErr.Message)
		})
	}
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(staticCredentials{url: "https://example.supabase.co", key: "anon-key"})

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClientCredentialsError(t *testing.T) {
	wantErr := &model.ConfigurationError{Message: "missing env: SUPABASE_URL or SUPABASE_ANON_KEY"}

	client, err := NewClient(staticCredentials{err: wantErr})

	assert.Nil(t, client)
	var configErr *model.ConfigurationError
	require.True(t, errors.As(err, &configErr))
}
