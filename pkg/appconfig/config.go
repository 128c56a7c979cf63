package appconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "TICKETING"

// Config represents the application configuration.
type Config struct {
	AppName          string        `mapstructure:"app_name"`
	Port             int           `mapstructure:"port"`
	Addr             string        `mapstructure:"addr"`
	ServerHeader     string        `mapstructure:"server_header"`
	AdminBearerToken string        `mapstructure:"admin_bearer_token"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	Gateways         Gateways      `mapstructure:"gateways"`
	Chain            Chain         `mapstructure:"chain"`
	Contracts        Contracts     `mapstructure:"contracts"`
	Storage          Storage       `mapstructure:"storage"`
	Backend          Backend       `mapstructure:"backend"`
	Log              Log           `mapstructure:"log"`
}

// Gateways lists the content gateways in the order they are tried.
type Gateways struct {
	URLs         []string      `mapstructure:"urls"`
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
}

// Chain describes the network the contracts are deployed on.
type Chain struct {
	RPCURL    string `mapstructure:"rpc_url"`
	ChainID   string `mapstructure:"chain_id"`
	TokenName string `mapstructure:"token_name"`
	Label     string `mapstructure:"label"`
}

// Contracts holds the addresses of the deployed contracts.
type Contracts struct {
	Events           string `mapstructure:"events"`
	TicketController string `mapstructure:"ticket_controller"`
	Tickets          string `mapstructure:"tickets"`
	Marketplace      string `mapstructure:"marketplace"`
}

// Storage configures the content storage API. The API key is only used by the admin endpoints.
type Storage struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
}

// Backend points at the REST backend of the ticketing system.
type Backend struct {
	URL string `mapstructure:"url"`
}

// Log configures the application logger.
type Log struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Defaults returns the default configuration values.
func Defaults() Config {
	return Config{
		AppName:          "Ticketing API v0.0.0",
		Port:             3000,
		Addr:             "localhost",
		ServerHeader:     "Ticketing API",
		AdminBearerToken: uuid.NewString(),
		RequestTimeout:   30 * time.Second,
		Gateways: Gateways{
			URLs:         []string{"https://nftstorage.link/ipfs/", "https://ipfs.io/ipfs/"},
			ProbeTimeout: 5 * time.Second,
		},
		Chain: Chain{
			RPCURL:    "https://api.avax-test.network/ext/bc/C/rpc",
			ChainID:   "0xa869",
			TokenName: "AVAX",
			Label:     "Avalanche Fuji Testnet",
		},
		Contracts: Contracts{
			Events:           "0x9C6aC28b7cE6fb714fA68362601CBeB27d6dfa8e",
			TicketController: "0x9C6aC28b7cE6fb714fA68362601CBeB27d6dfa8e",
			Tickets:          "0x42beBD567b197Abdcd3Ecd262f41DcAD302401aD",
			Marketplace:      "0x9C6aC28b7cE6fb714fA68362601CBeB27d6dfa8e",
		},
		Storage: Storage{
			Endpoint: "https://api.nft.storage",
		},
		Backend: Backend{
			URL: "http://localhost:5000",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.validateToken(); err != nil {
		return fmt.Errorf("admin bearer token: %w", err)
	}
	if err := c.Gateways.validate(); err != nil {
		return fmt.Errorf("gateways: %w", err)
	}
	if err := c.Contracts.validate(); err != nil {
		return fmt.Errorf("contracts: %w", err)
	}
	if err := absoluteURL(c.Chain.RPCURL); err != nil {
		return fmt.Errorf("chain rpc url: %w", err)
	}
	if err := absoluteURL(c.Storage.Endpoint); err != nil {
		return fmt.Errorf("storage endpoint: %w", err)
	}
	if err := absoluteURL(c.Backend.URL); err != nil {
		return fmt.Errorf("backend url: %w", err)
	}
	return nil
}

func (c *Config) validateToken() error {
	if c.AdminBearerToken == "" {
		return errors.New("admin bearer token is required")
	}
	if _, err := uuid.Parse(c.AdminBearerToken); err != nil {
		return errors.New("admin bearer token is not a valid uuid")
	}
	return nil
}

func (g *Gateways) validate() error {
	if len(g.URLs) == 0 {
		return errors.New("at least one gateway is required")
	}
	for _, u := range g.URLs {
		if err := absoluteURL(u); err != nil {
			return err
		}
		// content paths are appended to the gateway base as is
		if !strings.HasSuffix(u, "/") {
			return fmt.Errorf("gateway url %q must end with a slash", u)
		}
	}
	if g.ProbeTimeout <= 0 {
		return errors.New("probe timeout must be positive")
	}
	return nil
}

func (c *Contracts) validate() error {
	for name, addr := range map[string]string{
		"events":            c.Events,
		"ticket controller": c.TicketController,
		"tickets":           c.Tickets,
		"marketplace":       c.Marketplace,
	} {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("%s address %q is not a valid hex address", name, addr)
		}
	}
	return nil
}

func absoluteURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New("url must not be empty")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("url %q is not absolute", raw)
	}
	return nil
}
