package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	porkbun "github.com/Oxtaly/porkbun-wrapper"
)

func newDomainsCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "List domains and check availability",
	}
	cmd.AddCommand(newDomainsListCmd(o), newDomainsCheckCmd(o))
	return cmd
}

func newDomainsListCmd(o *rootOptions) *cobra.Command {
	var (
		opts porkbun.ListDomainsOptions
		all  bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the domains in the account",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, c *porkbun.Client, _ []string) (json.RawMessage, error) {
			if all {
				domains, err := c.ListAllDomains(ctx, opts.IncludeLabels)
				if err != nil {
					return nil, err
				}
				return json.Marshal(domains)
			}
			resp, err := c.ListDomains(ctx, &opts)
			if err != nil {
				return nil, err
			}
			return resp.Raw, nil
		}),
	}
	flags := cmd.Flags()
	flags.IntVar(&opts.Start, "start", 0, "index of the first domain to return")
	flags.BoolVar(&opts.IncludeLabels, "labels", false, "include domain labels")
	flags.BoolVar(&all, "all", false, "fetch every page")
	return cmd
}

func newDomainsCheckCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <domain>",
		Short: "Check whether a domain is available",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
			resp, err := c.CheckDomain(ctx, args[0])
			if err != nil {
				return nil, err
			}
			return resp.Raw, nil
		}),
	}
}

func newNameServersCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ns",
		Short: "Show or replace the name servers of a domain",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <domain>",
			Short: "Show the name servers of a domain",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.GetNameServers(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
		&cobra.Command{
			Use:   "update <domain> <ns>...",
			Short: "Replace the name servers of a domain",
			Args:  cobra.MinimumNArgs(2),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.UpdateNameServers(ctx, args[0], args[1:])
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
	)
	return cmd
}

func newForwardCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forward",
		Short: "Manage URL forwarding",
	}

	var (
		fwd         porkbun.URLForward
		forwardType string
	)
	add := &cobra.Command{
		Use:   "add <domain>",
		Short: "Add a URL forward",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
			fwd.Type = porkbun.ForwardType(forwardType)
			resp, err := c.AddURLForward(ctx, args[0], fwd)
			if err != nil {
				return nil, err
			}
			return resp.Raw, nil
		}),
	}
	flags := add.Flags()
	flags.StringVar(&fwd.Subdomain, "subdomain", "", "subdomain to forward (empty for the root domain)")
	flags.StringVar(&fwd.Location, "location", "", "destination URL")
	flags.StringVar(&forwardType, "type", string(porkbun.ForwardTemporary), "redirect type: temporary or permanent")
	flags.BoolVar(&fwd.IncludePath, "include-path", false, "append the request path to the destination")
	flags.BoolVar(&fwd.Wildcard, "wildcard", false, "also forward every subdomain")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <domain>",
			Short: "List URL forwards",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.GetURLForwarding(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
		add,
		&cobra.Command{
			Use:   "delete <domain> <id>",
			Short: "Delete a URL forward",
			Args:  cobra.ExactArgs(2),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.DeleteURLForward(ctx, args[0], args[1])
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
	)
	return cmd
}

func newGlueCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glue",
		Short: "Manage glue records",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <domain>",
			Short: "List glue records",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.GetGlueRecords(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
		&cobra.Command{
			Use:   "create <domain> <host> <ip>...",
			Short: "Create a glue record",
			Args:  cobra.MinimumNArgs(3),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.CreateGlueRecord(ctx, args[0], args[1], args[2:])
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
		&cobra.Command{
			Use:   "update <domain> <host> <ip>...",
			Short: "Replace the addresses of a glue record",
			Args:  cobra.MinimumNArgs(3),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.UpdateGlueRecord(ctx, args[0], args[1], args[2:])
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
		&cobra.Command{
			Use:   "delete <domain> <host>",
			Short: "Delete a glue record",
			Args:  cobra.ExactArgs(2),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.DeleteGlueRecord(ctx, args[0], args[1])
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
	)
	return cmd
}
