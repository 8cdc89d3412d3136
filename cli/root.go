// Package cli implements the x509chain-verify command line, built the
// way the teacher's src/cli/root.go builds its resolver command: one
// cobra.Command, package-level flag variables, a single Run function
// that does the work and writes its verdict to stdout.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	x509chain "github.com/trailcert/x509chain"
	"github.com/trailcert/x509chain/certio"
	"github.com/trailcert/x509chain/internal/logger"
)

var (
	rootsFile         string
	intermediatesFile string
	crlFile           string
	hostname          string
	profileName       string
	maxIntermediateCA int
	checkKeyUsage     bool
	checkExtKeyUsage  bool
	asJSON            bool
)

// Execute runs the root command, writing diagnostics to log and
// exiting the process on failure, matching the teacher's
// fmt.Fprintf-to-stderr-then-os.Exit(1) convention.
func Execute(version string, log logger.Logger) {
	rootCmd := &cobra.Command{
		Use:     "x509chain-verify [CERT_FILE]",
		Short:   "Verify an X.509 certificate chain",
		Version: version,
		Args:    cobra.ExactArgs(1),
		Run:     execVerify,
	}

	rootCmd.Flags().StringVar(&rootsFile, "roots", "", "PEM bundle of trusted root certificates")
	rootCmd.Flags().StringVar(&intermediatesFile, "intermediates", "", "PEM bundle of supplied intermediate certificates")
	rootCmd.Flags().StringVar(&crlFile, "crl", "", "PEM or DER bundle of CRLs to check against")
	rootCmd.Flags().StringVar(&hostname, "hostname", "", "host name to match against the end-entity certificate")
	rootCmd.Flags().StringVar(&profileName, "profile", "default", "acceptability profile: default, next, suiteb, or a path to a YAML file")
	rootCmd.Flags().IntVar(&maxIntermediateCA, "max-intermediates", 8, "maximum number of intermediate CAs accepted below a trust anchor")
	rootCmd.Flags().BoolVar(&checkKeyUsage, "check-key-usage", true, "require keyCertSign/cRLSign on issuing certificates")
	rootCmd.Flags().BoolVar(&checkExtKeyUsage, "check-ext-key-usage", false, "require serverAuth or anyExtendedKeyUsage in the end-entity's ExtendedKeyUsage, if present")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "emit the verdict as JSON instead of a table")

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func execVerify(cmd *cobra.Command, args []string) {
	inputFile := args[0]

	certData, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	leaf, err := certio.DecodeOne(certData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding certificate: %v\n", err)
		os.Exit(1)
	}

	if intermediatesFile != "" {
		if err := linkSuppliedIntermediates(leaf, intermediatesFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading intermediates: %v\n", err)
			os.Exit(1)
		}
	}

	var roots []*x509chain.Certificate
	if rootsFile != "" {
		roots, err = decodeBundleFile(rootsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading roots: %v\n", err)
			os.Exit(1)
		}
	}

	var crls []*x509chain.CRL
	if crlFile != "" {
		crls, err = readCRLs(crlFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading CRL: %v\n", err)
			os.Exit(1)
		}
	}

	profile, err := resolveProfile(profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving profile: %v\n", err)
		os.Exit(1)
	}

	opts := x509chain.DefaultOptions()
	opts.MaxIntermediateCA = maxIntermediateCA
	opts.CheckKeyUsage = checkKeyUsage
	opts.CheckExtKeyUsage = checkExtKeyUsage
	opts.Profile = profile
	opts.Hostname = hostname
	opts.Now = time.Now()

	result, err := x509chain.Verify(leaf, roots, crls, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Verification could not complete: %v\n", err)
		os.Exit(1)
	}

	if asJSON {
		printJSON(result)
	} else {
		printTable(result)
	}

	if result.Status != x509chain.StatusOK {
		os.Exit(1)
	}
}

func linkSuppliedIntermediates(leaf *x509chain.Certificate, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	certs, err := certio.DecodeAll(data)
	if err != nil {
		return err
	}
	prev := leaf
	for _, c := range certs {
		prev.SetNext(c)
		prev = c
	}
	return nil
}

func decodeBundleFile(path string) ([]*x509chain.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return certio.DecodeAll(data)
}

func resolveProfile(name string) (x509chain.Profile, error) {
	switch strings.ToLower(name) {
	case "default", "":
		return x509chain.DefaultProfile, nil
	case "next":
		return x509chain.NextProfile, nil
	case "suiteb":
		return x509chain.SuiteBProfile, nil
	default:
		return x509chain.LoadProfile(name)
	}
}

func printTable(result x509chain.Result) {
	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"#", "Role", "Common Name", "Defects"})

	var rows [][]string
	for i, slot := range result.Chain {
		cn, _ := slot.Cert.CommonName()
		if cn == "" {
			cn = "(no common name)"
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i), roleOf(i, len(result.Chain)), cn, slot.Flags.Error()})
	}
	table.Bulk(rows)
	table.Render()

	fmt.Printf("Status: %v\n", statusString(result.Status))
	fmt.Printf("Flags: %s\n", result.Flags.Error())
}

func roleOf(index, total int) string {
	switch {
	case total == 1:
		return "self-signed"
	case index == 0:
		return "end-entity"
	case index == total-1:
		return "root"
	default:
		return "intermediate"
	}
}

func statusString(s x509chain.Status) string {
	switch s {
	case x509chain.StatusOK:
		return "OK"
	case x509chain.StatusVerifyFailed:
		return "VERIFY_FAILED"
	case x509chain.StatusFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}
