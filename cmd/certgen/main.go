package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"net"
	"os"
	"time"

	"github.com/goserg/sportscheduler/internal/config"
)

const (
	defaultCert = "cert.pem"
	defaultKey  = "key.pem"
	keyBits     = 4096
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

// run writes a self-signed certificate for the host from the server config
// to the tls_cert and tls_key paths of the same config.
func run() error {
	var configPath, ipFlag string
	flag.StringVar(&configPath, "config", config.DefaultPath, "path to the server config")
	flag.StringVar(&ipFlag, "ip", "", "certificate ip, defaults to the configured host")
	flag.Parse()

	cfg, err := config.New(configPath)
	if err != nil {
		return err
	}
	certPath, keyPath := cfg.Server.TLSCert, cfg.Server.TLSKey
	if certPath == "" {
		certPath = defaultCert
	}
	if keyPath == "" {
		keyPath = defaultKey
	}
	if exists(certPath) || exists(keyPath) {
		return errors.New("cert exists")
	}

	ips := []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback}
	host := ipFlag
	if host == "" {
		host = cfg.Server.Host
	}
	if ip := net.ParseIP(host); ip != nil && !ip.IsLoopback() && !ip.IsUnspecified() {
		ips = append(ips, ip)
	}

	caTemplate := template(true)
	caKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return err
	}

	leaf := template(false)
	leaf.IPAddresses = ips
	leafKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return err
	}
	leafDER, err := x509.CreateCertificate(rand.Reader, leaf, caTemplate, &leafKey.PublicKey, caKey)
	if err != nil {
		return err
	}

	if err := writePEM(certPath, "CERTIFICATE", leafDER); err != nil {
		return err
	}
	if err := writePEM(keyPath, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(leafKey)); err != nil {
		return err
	}
	fmt.Printf("wrote %s and %s for %v\n", certPath, keyPath, ips)
	return nil
}

func template(isCA bool) *x509.Certificate {
	cert := &x509.Certificate{
		SerialNumber: serial(),
		Subject: pkix.Name{
			Organization: []string{"Sport Scheduler"},
			CommonName:   "sportscheduler",
		},
		NotBefore:   time.Now(),
		NotAfter:    time.Now().AddDate(10, 0, 0),
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:    x509.KeyUsageDigitalSignature,
	}
	if isCA {
		cert.IsCA = true
		cert.KeyUsage |= x509.KeyUsageCertSign
		cert.BasicConstraintsValid = true
	}
	return cert
}

func writePEM(path, blockType string, der []byte) error {
	return os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), 0o600)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

func serial() *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), 62)
	i, err := rand.Int(rand.Reader, limit)
	if err != nil {
		panic(err)
	}
	return i
}
