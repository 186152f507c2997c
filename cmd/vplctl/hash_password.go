package main

import (
	"bufio"
	"fmt"
	"strings"

	"vplmon/internal/errors"
	"vplmon/internal/infra/auth"

	"github.com/spf13/cobra"
)

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for operator.passwordHash",
		Long: `Hashes the given password, or the first line of stdin when no argument is given,
and prints the result so it can be placed in the operator section of the configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.Wrap(err, "read password from stdin")
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return errors.New("password must not be empty")
			}

			hash, err := auth.NewBcryptHasher().Hash(password)
			if err != nil {
				return errors.Wrap(err, "hash password")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

			return err
		},
	}
}
