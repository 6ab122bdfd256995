package config

import (
	"fmt"
	"os"

	"vidscribe/internal/core/domain"
)

// APIKeyEnvVar names the environment variable holding the Gemini credential.
const APIKeyEnvVar = "GOOGLE_API_KEY"

// Credentials carries the service credential for one invocation.
type Credentials struct {
	APIKey string
}

// MissingKeyError reports an absent credential variable.
type MissingKeyError struct {
	Var string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s environment variable not set", e.Var)
}

// Remediation returns the shell syntax for setting the missing variable.
func (e *MissingKeyError) Remediation() string {
	return fmt.Sprintf("Please set your API key using: export %s='your-api-key'", e.Var)
}

// LoadCredentials reads the API key from the environment. An absent key is
// reported as a configure-stage failure wrapping a MissingKeyError.
func LoadCredentials() (Credentials, error) {
	key := os.Getenv(APIKeyEnvVar)
	if key == "" {
		return Credentials{}, &domain.StageError{
			Stage:   domain.StageConfigure,
			Message: "missing service credential",
			Err:     &MissingKeyError{Var: APIKeyEnvVar},
		}
	}
	return Credentials{APIKey: key}, nil
}
