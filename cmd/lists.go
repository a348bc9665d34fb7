package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/0xERR0R/domainextractor/api"
	"github.com/0xERR0R/domainextractor/log"

	"github.com/spf13/cobra"
)

// NewListsCommand creates new command instance
func NewListsCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "lists",
		Short: "suffix list operations of a running server",
	}

	c.AddCommand(newRefreshCommand())

	return c
}

func newRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Args:  cobra.NoArgs,
		Short: "reloads the suffix list",
		RunE:  refreshList,
	}
}

func refreshList(cmd *cobra.Command, _ []string) error {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, apiURL(api.PathListsRefreshPath), nil)
	if err != nil {
		return fmt.Errorf("can't create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("can't execute %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("response NOK, %s %s", resp.Status, readError(resp.Body))
	}

	log.Log().Info("OK")

	return nil
}

// readError returns the message of an `api.ErrorResponse` or the raw body
func readError(r io.Reader) string {
	body, _ := io.ReadAll(r)

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && len(errResp.Error) > 0 {
		return errResp.Error
	}

	return string(body)
}
