package out

import "context"

// EnvLoader defines the contract for loading environment variables for containers.
type EnvLoader interface {
	// LoadEnvFile reads a dotenv file and returns "KEY=VALUE" strings
	// sorted by key.
	LoadEnvFile(ctx context.Context, path string) ([]string, error)
}
