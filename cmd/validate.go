package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates new command instance
func NewValidateCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "validate <domain>...",
		Args:  cobra.MinimumNArgs(1),
		Short: "checks length, characters and IDNA conversion of domains",
		RunE:  validateDomains,
	}

	c.Flags().String(listFlag, "", "suffix list to use instead of the built-in one")

	return c
}

func validateDomains(cmd *cobra.Command, args []string) error {
	e, err := loadExtractor(cmd)
	if err != nil {
		return err
	}

	invalid := 0

	for _, arg := range args {
		result := "valid"

		if !e.IsValidDomain(arg) {
			result = "invalid"
			invalid++
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, result)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d domains are invalid", invalid, len(args))
	}

	return nil
}
