package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/0xERR0R/domainextractor/api"
	"github.com/0xERR0R/domainextractor/config"
	"github.com/0xERR0R/domainextractor/extractor"
	"github.com/0xERR0R/domainextractor/lists"
	"github.com/0xERR0R/domainextractor/suffixlist"
	"github.com/0xERR0R/domainextractor/util"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

const (
	listFlag = "list"
	jsonFlag = "json"
)

// NewExtractCommand creates new command instance
func NewExtractCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "extract <domain>...",
		Args:    cobra.MinimumNArgs(1),
		Short:   "splits domains into suffix, domain and subdomain",
		Example: "domainextractor extract www.example.co.uk --list ./public_suffix_list.dat",
		RunE: func(cmd *cobra.Command, args []string) error {
			return extractAll(cmd, args, api.Extractor.Extract)
		},
	}

	addListFlags(c)

	return c
}

// NewURLCommand creates new command instance
func NewURLCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "url <url>...",
		Args:    cobra.MinimumNArgs(1),
		Short:   "splits the host of URLs into suffix, domain and subdomain",
		Example: "domainextractor url https://user@forums.bbc.co.uk:8080/path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return extractAll(cmd, args, api.Extractor.ExtractFromURL)
		},
	}

	addListFlags(c)

	return c
}

// NewFQDNCommand creates new command instance
func NewFQDNCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "fqdn <name>...",
		Args:    cobra.MinimumNArgs(1),
		Short:   "splits DNS names, a trailing root dot is allowed",
		Example: "domainextractor fqdn WWW.Example.co.uk.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return extractAll(cmd, args, func(e api.Extractor, name string) (extractor.Parts, error) {
				return e.ExtractQuestion(util.NewQuestion(name))
			})
		},
	}

	addListFlags(c)

	return c
}

// NewTLDsCommand creates new command instance
func NewTLDsCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "tlds",
		Args:  cobra.NoArgs,
		Short: "prints all compiled suffix rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadExtractor(cmd)
			if err != nil {
				return err
			}

			for _, tld := range e.ListTLDs() {
				fmt.Fprintln(cmd.OutOrStdout(), tld)
			}

			return nil
		},
	}

	addListFlags(c)

	return c
}

func addListFlags(c *cobra.Command) {
	c.Flags().String(listFlag, "",
		"suffix list to use instead of the built-in one (file path, URL or inline rules)")
	c.Flags().Bool(jsonFlag, false, "print results as JSON lines")
}

func extractAll(cmd *cobra.Command, args []string,
	extract func(e api.Extractor, input string) (extractor.Parts, error),
) error {
	e, err := loadExtractor(cmd)
	if err != nil {
		return err
	}

	asJSON, err := cmd.Flags().GetBool(jsonFlag)
	if err != nil {
		return err
	}

	var mErr *multierror.Error

	for _, arg := range args {
		parts, err := extract(e, arg)
		if err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("%s: %w", arg, err))

			continue
		}

		if err := printParts(cmd.OutOrStdout(), arg, parts, asJSON); err != nil {
			return err
		}
	}

	return mErr.ErrorOrNil()
}

func printParts(out io.Writer, input string, parts extractor.Parts, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(out).Encode(struct {
			Input string `json:"input"`
			extractor.Parts
		}{input, parts})
	}

	_, err := fmt.Fprintf(out, "%s\tsuffix=%s domain=%s subdomain=%s\n",
		input, parts.Suffix, parts.Domain, parts.Subdomain)

	return err
}

// loadExtractor returns the built-in extractor or one compiled from the `--list` source
func loadExtractor(cmd *cobra.Command) (api.Extractor, error) {
	list, err := cmd.Flags().GetString(listFlag)
	if err != nil {
		return nil, err
	}

	if len(list) == 0 {
		return extractor.DefaultExtractor(), nil
	}

	c, err := config.NewDefaultConfig()
	if err != nil {
		return nil, err
	}

	if err := c.SuffixList.UnmarshalText([]byte(list)); err != nil {
		return nil, fmt.Errorf("invalid list source: %w", err)
	}

	if c.SuffixList.IsZero() {
		return nil, errors.New("invalid list source: empty")
	}

	c.CacheSize = 0
	c.RefreshPeriod = 0

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	holder, err := suffixlist.NewHolder(ctx, c, lists.NewDownloaderFromConfig(c.Download))
	if err != nil {
		return nil, err
	}

	return holder, nil
}
