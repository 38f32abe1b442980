// Package config defines the environment variable and command-line flags
// supported by this SDK and its demo server, and includes default values for
// particular fields.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for the SDK and the demo server.
type Config struct {
	BindAddr     string `env:"BIND_ADDR"              flag:"bind-addr"              flagDesc:"Bind address for the demo server"`
	Environment  string `env:"PAYPAL_ENV"             flag:"paypal-env"             flagDesc:"PayPal environment (sandbox or live)"`
	ClientID     string `env:"PAYPAL_CLIENT_ID"       flag:"paypal-client-id"       flagDesc:"PayPal client ID"`
	ClientSecret string `env:"PAYPAL_CLIENT_SECRET"   flag:"paypal-client-secret"   flagDesc:"PayPal client secret (demo server only)"`
	// TrustedAuthDomains is the allow-list of hosts a step-up challenge may
	// be opened against. A challenge URL is accepted when its host matches an
	// entry exactly or is a subdomain of one.
	TrustedAuthDomains string `env:"TRUSTED_AUTH_DOMAINS"   flag:"trusted-auth-domains"   flagDesc:"Comma separated list of hosts trusted to serve authentication challenges"`
	WebauthListenAddr  string `env:"WEBAUTH_LISTEN_ADDR"    flag:"webauth-listen-addr"    flagDesc:"Loopback address the authentication session listens on for redirects"`
	CallbackScheme     string `env:"CALLBACK_SCHEME"        flag:"callback-scheme"        flagDesc:"Scheme used for checkout return URLs"`
}

// DefaultConfig returns a pointer to a Config instance that has been
// populated with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:           ":8080",
		Environment:        "sandbox",
		TrustedAuthDomains: "paypal.com,sandbox.paypal.com",
		WebauthListenAddr:  "127.0.0.1:0",
		CallbackScheme:     "sdk.payments",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		cfg = nil
		return nil, err
	}

	return cfg, nil
}

// APIBaseURL is the REST base for the configured environment
func (c *Config) APIBaseURL() string {
	if c.Environment == "live" {
		return "https://api.paypal.com"
	}
	return "https://api.sandbox.paypal.com"
}

// WebBaseURL is the buyer-facing web base for the configured environment
func (c *Config) WebBaseURL() string {
	if c.Environment == "live" {
		return "https://www.paypal.com"
	}
	return "https://www.sandbox.paypal.com"
}

// GraphQLURL is the GraphQL endpoint for the configured environment
func (c *Config) GraphQLURL() string {
	return c.WebBaseURL() + "/graphql"
}

// TrustedDomains splits the configured allow-list into individual hosts
func (c *Config) TrustedDomains() []string {
	var domains []string
	for _, domain := range strings.Split(c.TrustedAuthDomains, ",") {
		if trimmed := strings.TrimSpace(domain); trimmed != "" {
			domains = append(domains, trimmed)
		}
	}
	return domains
}

// Validate checks the fields the SDK cannot run without
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("PAYPAL_CLIENT_ID is not set")
	}
	if c.Environment != "sandbox" && c.Environment != "live" {
		return fmt.Errorf("invalid paypal env in config: %s", c.Environment)
	}
	return nil
}
