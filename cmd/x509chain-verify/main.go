// x509chain-verify is a command-line tool for verifying an X.509
// certificate chain against a set of trusted roots, supplied
// intermediates, and optional CRLs.
package main

import (
	"github.com/trailcert/x509chain/cli"
	"github.com/trailcert/x509chain/internal/logger"
	verpkg "github.com/trailcert/x509chain/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewCLILogger()
	cli.Execute(version, log)
}
