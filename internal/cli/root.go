// Package cli implements the porkbun command line tool.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	porkbun "github.com/Oxtaly/porkbun-wrapper"
	"github.com/Oxtaly/porkbun-wrapper/internal/config"
	"github.com/Oxtaly/porkbun-wrapper/observe"
)

type rootOptions struct {
	configPath string
	verbose    bool
	baseURL    string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "porkbun",
		Short:         "Manage domains through the Porkbun API",
		Version:       porkbun.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default: porkbun.yaml in . or $HOME/.config/porkbun)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log every query to stderr")
	flags.StringVar(&o.baseURL, "base-url", "", "override the API base URL")

	cmd.AddCommand(
		newPingCmd(o),
		newPricingCmd(o),
		newDomainsCmd(o),
		newNameServersCmd(o),
		newForwardCmd(o),
		newGlueCmd(o),
		newDNSCmd(o),
		newDNSSECCmd(o),
		newSSLCmd(o),
	)
	return cmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func (o *rootOptions) logger() (*zap.Logger, error) {
	if !o.verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopmentConfig().Build()
}

// call is the body of a command: it issues one or more requests and returns
// the JSON to print.
type call func(ctx context.Context, client *porkbun.Client, args []string) (json.RawMessage, error)

// run adapts fn into a cobra RunE that loads configuration, builds a client
// and prints the result indented.
func (o *rootOptions) run(fn call) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		if o.baseURL != "" {
			cfg.BaseURL = o.baseURL
		}

		log, err := o.logger()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		opts := append(cfg.ClientOptions(), porkbun.WithQueryObserver(observe.Logger(log)))
		client, err := porkbun.New(cfg.APIKey, cfg.SecretAPIKey, opts...)
		if err != nil {
			return err
		}

		raw, err := fn(cmd.Context(), client, args)
		if err != nil {
			return err
		}
		return printJSON(cmd, raw)
	}
}

func printJSON(cmd *cobra.Command, raw json.RawMessage) error {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := cmd.OutOrStdout().Write(out.Bytes())
	return err
}

func newPingCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the API keys and show your IP address",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, c *porkbun.Client, _ []string) (json.RawMessage, error) {
			resp, err := c.Ping(ctx)
			if err != nil {
				return nil, err
			}
			return resp.Raw, nil
		}),
	}
}

func newPricingCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pricing",
		Short: "Show default prices for every TLD",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, c *porkbun.Client, _ []string) (json.RawMessage, error) {
			resp, err := c.GetPricing(ctx)
			if err != nil {
				return nil, err
			}
			return resp.Raw, nil
		}),
	}
}

func newSSLCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ssl <domain>",
		Short: "Retrieve the SSL certificate bundle of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
			resp, err := c.RetrieveSSL(ctx, args[0])
			if err != nil {
				return nil, err
			}
			return resp.Raw, nil
		}),
	}
}
