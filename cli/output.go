package cli

import (
	"encoding/json"
	"encoding/pem"
	"fmt"
	"os"

	x509chain "github.com/trailcert/x509chain"
)

// readCRLs decodes every CertificateList in a PEM or raw-DER bundle.
// A bundle with no "X509 CRL" PEM blocks at all is treated as a
// single raw DER CRL, the same PEM-then-DER fallback certio uses for
// certificates.
func readCRLs(path string) ([]*x509chain.CRL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var crls []*x509chain.CRL
	rest := data
	for {
		block, next := pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type == "X509 CRL" {
			c, perr := x509chain.ParseCRL(block.Bytes)
			if perr != nil {
				return nil, perr
			}
			crls = append(crls, c)
		}
		rest = next
	}
	if len(crls) > 0 {
		return crls, nil
	}

	c, err := x509chain.ParseCRL(data)
	if err != nil {
		return nil, err
	}
	return []*x509chain.CRL{c}, nil
}

type jsonSlot struct {
	Index   int      `json:"index"`
	Role    string   `json:"role"`
	Subject string   `json:"subject"`
	Flags   []string `json:"flags"`
}

type jsonResult struct {
	Status string     `json:"status"`
	Flags  []string   `json:"flags"`
	Chain  []jsonSlot `json:"chain"`
}

func printJSON(result x509chain.Result) {
	out := jsonResult{
		Status: statusString(result.Status),
		Flags:  result.Flags.Strings(),
	}
	for i, slot := range result.Chain {
		cn, _ := slot.Cert.CommonName()
		out.Chain = append(out.Chain, jsonSlot{
			Index:   i,
			Role:    roleOf(i, len(result.Chain)),
			Subject: cn,
			Flags:   slot.Flags.Strings(),
		})
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}
