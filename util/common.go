package util

import (
	"github.com/0xERR0R/domainextractor/log"
)

//nolint:gochecknoglobals
var (
	// Version current version number
	Version = "undefined"
	// BuildTime build time of binary
	BuildTime = "undefined"
)

// FatalOnError logs the error and terminates the application if `err` is not nil
func FatalOnError(message string, err error) {
	if err != nil {
		log.Log().Fatal(message, err)
	}
}

// LogOnError logs the error as warning if `err` is not nil
func LogOnError(message string, err error) {
	if err != nil {
		log.Log().Warn(message, err)
	}
}
