// Package certio is the external-collaborator layer this module's core
// deliberately stays out of: turning PEM text, a raw DER blob, or a
// PKCS7 bundle into the DER buffers internal/frame.Parse actually
// consumes. It is adapted from the teacher's x509certs.Certificate,
// but decodes through this module's own frame/der parser rather than
// crypto/x509, and returns *x509chain.Certificate instead of
// *x509.Certificate.
package certio

import (
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"

	x509chain "github.com/trailcert/x509chain"
)

var (
	// ErrInvalidPEMBlock indicates that the data does not contain a
	// PEM block of the expected type.
	ErrInvalidPEMBlock = errors.New("certio: no CERTIFICATE PEM block found")

	// ErrParsePKCS7 indicates a failure to parse data as PKCS7 after
	// it failed to parse as a bare DER certificate.
	ErrParsePKCS7 = errors.New("certio: failed to parse as DER or PKCS7")

	// ErrNoCertificatesInPKCS indicates a PKCS7 SignedData payload
	// carried no certificates at all.
	ErrNoCertificatesInPKCS = errors.New("certio: no certificates found in PKCS7 data")
)

const certBlockType = "CERTIFICATE"

// IsPEM reports whether data begins with a decodable PEM block.
func IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// DecodeOne decodes a single certificate from data: PEM (first
// CERTIFICATE block), raw DER, or a PKCS7 bundle's first certificate,
// tried in that order.
func DecodeOne(data []byte) (*x509chain.Certificate, error) {
	certs, err := DecodeAll(data)
	if err != nil {
		return nil, err
	}
	return certs[0], nil
}

// DecodeAll decodes every certificate present in data. For PEM input
// it walks every CERTIFICATE block, and for PKCS7 input it returns every
// certificate the bundle carries, linking each to the next via
// Certificate.Next so the result can be handed straight to
// x509chain.Verify as the end-entity plus its supplied intermediates.
// Raw DER input yields only the one certificate that starts data; bytes
// after it are not searched for further certificates.
func DecodeAll(data []byte) ([]*x509chain.Certificate, error) {
	if IsPEM(data) {
		return decodePEMChain(data)
	}

	if cert, err := x509chain.New(data); err == nil {
		return []*x509chain.Certificate{cert}, nil
	}

	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	raws := p.Content.SignedData.Certificates
	if len(raws) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	certs := make([]*x509chain.Certificate, 0, len(raws))
	for _, rc := range raws {
		cert, cerr := x509chain.New(rc.Raw)
		if cerr != nil {
			return nil, cerr
		}
		certs = append(certs, cert)
	}
	linkChain(certs)
	return certs, nil
}

func decodePEMChain(data []byte) ([]*x509chain.Certificate, error) {
	var certs []*x509chain.Certificate
	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != certBlockType {
			data = rest
			continue
		}
		cert, err := x509chain.New(block.Bytes)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
		data = rest
	}
	if len(certs) == 0 {
		return nil, ErrInvalidPEMBlock
	}
	linkChain(certs)
	return certs, nil
}

func linkChain(certs []*x509chain.Certificate) {
	for i := 0; i+1 < len(certs); i++ {
		certs[i].SetNext(certs[i+1])
	}
}

// EncodePEM encodes a single certificate to PEM.
func EncodePEM(cert *x509chain.Certificate) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: certBlockType, Bytes: cert.Raw()})
}

// EncodeDER returns a certificate's raw DER bytes.
func EncodeDER(cert *x509chain.Certificate) []byte { return cert.Raw() }

// EncodeMultiplePEM concatenates the PEM encoding of every certificate
// in order.
func EncodeMultiplePEM(certs []*x509chain.Certificate) []byte {
	var out []byte
	for _, c := range certs {
		out = append(out, EncodePEM(c)...)
	}
	return out
}

// EncodeMultipleDER concatenates the raw DER bytes of every
// certificate in order.
func EncodeMultipleDER(certs []*x509chain.Certificate) []byte {
	var out []byte
	for _, c := range certs {
		out = append(out, EncodeDER(c)...)
	}
	return out
}
