package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidscribe/internal/core/domain"
)

func TestLoadCredentials(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "secret-key")

	creds, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "secret-key", creds.APIKey)
}

func TestLoadCredentialsMissingKey(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")

	_, err := LoadCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), APIKeyEnvVar)

	var stageErr *domain.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domain.StageConfigure, stageErr.Stage)

	var missing *MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Remediation(), "export "+APIKeyEnvVar)
}
