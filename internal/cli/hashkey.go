package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"crewboard/internal/auth"
)

// apiKeyEnv holds the plaintext key so it never shows up in shell history.
const apiKeyEnv = "CREWBOARD_API_KEY"

func newHashKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-key",
		Short: "Print the argon2id hash of $" + apiKeyEnv,
		Long: `Hash an API key for security.api_keys.keys[].hash in config.yaml.

  CREWBOARD_API_KEY='long-random-key' crewboard hash-key`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := os.Getenv(apiKeyEnv)
			if key == "" {
				return errors.New("set " + apiKeyEnv)
			}
			phc, err := auth.HashKey(key, auth.DefaultArgonParams())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), phc)
			return err
		},
	}
}
