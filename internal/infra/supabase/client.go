package supabase

import (
	"github.com/spf13/viper"

	"todo-api/internal/domain/model"
	pkghttp "todo-api/pkg/http"
)

const restPath = "/rest/v1"

// CredentialsProvider supplies the PostgREST endpoint and access key.
// Implementations must read their source on every call: the production
// provider re-reads the process environment so that rotated credentials are
// picked up without restarting.
type CredentialsProvider interface {
	Credentials() (url string, key string, err error)
}

// EnvCredentials reads SUPABASE_URL and SUPABASE_ANON_KEY from the process
// environment on each call.
type EnvCredentials struct{}

func init() {
	viper.AutomaticEnv()
}

func (EnvCredentials) Credentials() (string, string, error) {
	url := viper.GetString("SUPABASE_URL")
	key := viper.GetString("SUPABASE_ANON_KEY")

	if url == "" || key == "" {
		return "", "", &model.ConfigurationError{
			Message: "missing env: SUPABASE_URL or SUPABASE_ANON_KEY",
		}
	}
	return url, key, nil
}

// NewClient builds a PostgREST client from freshly obtained credentials.
// No client is cached between calls.
func NewClient(creds CredentialsProvider) (*pkghttp.Client, error) {
	url, key, err := creds.Credentials()
	if err != nil {
		return nil, err
	}

	return pkghttp.NewHttpClient(url+restPath, pkghttp.ClientOptions{
		DefaultHeaders: map[string]string{
			"apikey":        key,
			"Authorization": "Bearer " + key,
		},
	}), nil
}
