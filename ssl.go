package porkbun

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"

	"github.com/Oxtaly/porkbun-wrapper/internal/api"
	"github.com/Oxtaly/porkbun-wrapper/internal/validate"
)

// SSLBundle is the free certificate Porkbun issues for a domain, PEM encoded.
type SSLBundle struct {
	Envelope
	CertificateChain string `json:"certificatechain"`
	PrivateKey       string `json:"privatekey"`
	PublicKey        string `json:"publickey"`
	// IntermediateCertificate is only sent by older API versions.
	IntermediateCertificate string `json:"intermediatecertificate,omitempty"`
}

// Certificates parses CertificateChain, leaf first.
func (b *SSLBundle) Certificates() ([]*x509.Certificate, error) {
	var certs []*x509.Certificate
	rest := []byte(b.CertificateChain)
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}
	if len(certs) == 0 {
		return nil, errors.New("porkbun: certificate chain contains no certificates")
	}
	return certs, nil
}

// RetrieveSSL returns the SSL certificate bundle of domain.
func (c *Client) RetrieveSSL(ctx context.Context, domain string) (*SSLBundle, error) {
	if err := validate.Check(validate.Param("domain", domain, domainTag)); err != nil {
		return nil, err
	}
	return do[SSLBundle](ctx, c, api.Request{
		Endpoint: api.RetrieveSSL,
		Params:   []string{domain},
	})
}
