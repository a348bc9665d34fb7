package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/0xERR0R/domainextractor/config"
	"github.com/0xERR0R/domainextractor/log"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	configPath string
	cfg        *config.Config
	apiHost    string
	apiPort    uint16
)

const (
	defaultHost       = "localhost"
	defaultPort       = 4000
	defaultConfigPath = "./config.yml"
	configFileEnvVar  = "DOMAINEXTRACTOR_CONFIG_FILE"
)

// NewRootCommand creates new root command
func NewRootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "domainextractor",
		Short: "domainextractor splits domains by the public suffix list",
		Long: `Splits domain names and URLs into public suffix,
registrable domain label and subdomain.

Complete documentation is available at https://github.com/0xERR0R/domainextractor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newServeCommand().RunE(cmd, args)
		},
		SilenceUsage: true,
	}

	c.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config file")
	c.PersistentFlags().StringVar(&apiHost, "apiHost", defaultHost, "host of domainextractor (API)")
	c.PersistentFlags().Uint16Var(&apiPort, "apiPort", defaultPort, "port of domainextractor (API)")

	c.AddCommand(
		newServeCommand(),
		NewExtractCommand(),
		NewURLCommand(),
		NewFQDNCommand(),
		NewValidateCommand(),
		NewTLDsCommand(),
		NewListsCommand(),
		NewVersionCommand(),
	)

	return c
}

func apiURL(path string) string {
	return "http://" + apiHost + ":" + strconv.Itoa(int(apiPort)) + path
}

func initConfig() error {
	if path, found := os.LookupEnv(configFileEnvVar); found {
		configPath = path
	}

	c, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}

	cfg = c

	log.ConfigureLogger(cfg.Log)

	return nil
}

// Execute starts the command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
