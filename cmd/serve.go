package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/0xERR0R/domainextractor/evt"
	"github.com/0xERR0R/domainextractor/lists"
	"github.com/0xERR0R/domainextractor/log"
	"github.com/0xERR0R/domainextractor/metrics"
	"github.com/0xERR0R/domainextractor/server"
	"github.com/0xERR0R/domainextractor/suffixlist"
	"github.com/0xERR0R/domainextractor/util"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

//nolint:gochecknoglobals
var (
	done    = make(chan bool, 1)
	signals = make(chan os.Signal, 1)
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "start the domainextractor HTTP API (default command)",
		RunE:  startServer,
	}
}

func startServer(_ *cobra.Command, _ []string) error {
	printBanner()

	if err := initConfig(); err != nil {
		return err
	}

	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	metrics.RegisterEventListeners()

	holder, err := suffixlist.NewHolder(ctx, cfg, lists.NewDownloaderFromConfig(cfg.Download))
	if err != nil {
		return fmt.Errorf("can't load suffix list: %w", err)
	}

	srv, err := server.NewServer(cfg, holder)
	if err != nil {
		return fmt.Errorf("can't start server: %w", err)
	}

	errChan := make(chan error, 1)

	srv.Start(ctx, errChan)

	var terminationErr error

	go func() {
		select {
		case <-signals:
			log.Log().Infof("Terminating...")

			stopCtx, stopCancel := context.WithTimeout(ctx, shutdownTimeout)
			defer stopCancel()

			util.LogOnError("can't stop server: ", srv.Stop(stopCtx))
			done <- true

		case err := <-errChan:
			log.Log().Error("server start failed: ", err)
			terminationErr = err
			done <- true
		}
	}()

	evt.Bus().Publish(evt.ApplicationStarted, util.Version, util.BuildTime)
	<-done

	return terminationErr
}

func printBanner() {
	log.Log().Info("_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/")
	log.Log().Info("_/                                                              _/")
	log.Log().Info("_/                     domainextractor                          _/")
	log.Log().Info("_/                                                              _/")
	log.Log().Infof("_/  Version: %-18s Build time: %-18s  _/", util.Version, util.BuildTime)
	log.Log().Info("_/                                                              _/")
	log.Log().Info("_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/")
}
