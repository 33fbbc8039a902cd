package cli

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	porkbun "github.com/Oxtaly/porkbun-wrapper"
)

// argAt returns args[i], or "" when it was not given.
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func recordType(arg string) porkbun.RecordType {
	return porkbun.RecordType(strings.ToUpper(arg))
}

type recordFlags struct {
	rec        porkbun.DNSRecordRequest
	recordType string
	prio       int
	flags      *pflag.FlagSet
}

func (f *recordFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.rec.Name, "name", "", "subdomain (empty for the root domain, * for a wildcard)")
	flags.StringVar(&f.recordType, "type", "", "record type, e.g. A, CNAME, TXT")
	flags.StringVar(&f.rec.Content, "content", "", "record content")
	flags.IntVar(&f.rec.TTL, "ttl", 0, "time to live in seconds (0 keeps the API default)")
	flags.IntVar(&f.prio, "prio", 0, "record priority (omitted unless given)")
	flags.StringVar(&f.rec.Notes, "notes", "", "free-form notes")
	f.flags = flags
}

func (f *recordFlags) request() porkbun.DNSRecordRequest {
	rec := f.rec
	rec.Type = recordType(f.recordType)
	rec.Prio = changedInt(f.flags, "prio", f.prio)
	return rec
}

// changedInt returns &v when the flag was set on the command line, so an
// explicit 0 is kept.
func changedInt(flags *pflag.FlagSet, name string, v int) *int {
	if flags == nil || !flags.Changed(name) {
		return nil
	}
	return porkbun.Int(v)
}

func newDNSCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS records",
	}

	var create recordFlags
	createCmd := &cobra.Command{
		Use:   "create <domain>",
		Short: "Create a DNS record",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
			resp, err := c.CreateDNSRecord(ctx, args[0], create.request())
			if err != nil {
				return nil, err
			}
			return resp.Raw, nil
		}),
	}
	create.register(createCmd.Flags())

	var edit recordFlags
	editCmd := &cobra.Command{
		Use:   "edit <domain> <id>",
		Short: "Replace a DNS record by ID",
		Args:  cobra.ExactArgs(2),
		RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
			resp, err := c.EditDNSRecord(ctx, args[0], args[1], edit.request())
			if err != nil {
				return nil, err
			}
			return resp.Raw, nil
		}),
	}
	edit.register(editCmd.Flags())

	var (
		content porkbun.DNSRecordContent
		prio    int
		flags   *pflag.FlagSet
	)
	editByNameTypeCmd := &cobra.Command{
		Use:   "edit-by-name-type <domain> <type> [subdomain]",
		Short: "Set the content of every record with a name and type",
		Args:  cobra.RangeArgs(2, 3),
		RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
			content.Prio = changedInt(flags, "prio", prio)
			resp, err := c.EditDNSRecordsByNameType(ctx, args[0], recordType(args[1]), argAt(args, 2), content)
			if err != nil {
				return nil, err
			}
			return resp.Raw, nil
		}),
	}
	flags = editByNameTypeCmd.Flags()
	flags.StringVar(&content.Content, "content", "", "record content")
	flags.IntVar(&content.TTL, "ttl", 0, "time to live in seconds (0 keeps the API default)")
	flags.IntVar(&prio, "prio", 0, "record priority (omitted unless given)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <domain> [id]",
			Short: "List the DNS records of a domain, or one record by ID",
			Args:  cobra.RangeArgs(1, 2),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				var (
					resp *porkbun.DNSRecordsResponse
					err  error
				)
				if len(args) == 2 {
					resp, err = c.GetDNSRecord(ctx, args[0], args[1])
				} else {
					resp, err = c.GetDNSRecords(ctx, args[0])
				}
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
		&cobra.Command{
			Use:   "get <domain> <type> [subdomain]",
			Short: "List the records with a name and type",
			Args:  cobra.RangeArgs(2, 3),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.GetDNSRecordsByNameType(ctx, args[0], recordType(args[1]), argAt(args, 2))
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
		createCmd,
		editCmd,
		editByNameTypeCmd,
		&cobra.Command{
			Use:   "delete <domain> <id>",
			Short: "Delete a DNS record by ID",
			Args:  cobra.ExactArgs(2),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.DeleteDNSRecord(ctx, args[0], args[1])
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
		&cobra.Command{
			Use:   "delete-by-name-type <domain> <type> [subdomain]",
			Short: "Delete every record with a name and type",
			Args:  cobra.RangeArgs(2, 3),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.DeleteDNSRecordsByNameType(ctx, args[0], recordType(args[1]), argAt(args, 2))
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
	)
	return cmd
}

func newDNSSECCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dnssec",
		Short: "Manage DS records at the registry",
	}

	var rec porkbun.DNSSECRecordRequest
	createCmd := &cobra.Command{
		Use:   "create <domain>",
		Short: "Register a DS record",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
			resp, err := c.CreateDNSSECRecord(ctx, args[0], rec)
			if err != nil {
				return nil, err
			}
			return resp.Raw, nil
		}),
	}
	flags := createCmd.Flags()
	flags.StringVar(&rec.KeyTag, "key-tag", "", "key tag")
	flags.StringVar(&rec.Alg, "alg", "", "DS algorithm")
	flags.StringVar(&rec.DigestType, "digest-type", "", "digest type")
	flags.StringVar(&rec.Digest, "digest", "", "digest")
	flags.StringVar(&rec.MaxSigLife, "max-sig-life", "", "maximum signature life")
	flags.StringVar(&rec.KeyDataFlags, "key-data-flags", "", "key data flags")
	flags.StringVar(&rec.KeyDataProtocol, "key-data-protocol", "", "key data protocol")
	flags.StringVar(&rec.KeyDataAlgo, "key-data-algo", "", "key data algorithm")
	flags.StringVar(&rec.KeyDataPubKey, "key-data-pub-key", "", "key data public key")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <domain>",
			Short: "List DS records",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.GetDNSSECRecords(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
		createCmd,
		&cobra.Command{
			Use:   "delete <domain> <key-tag>",
			Short: "Delete a DS record",
			Args:  cobra.ExactArgs(2),
			RunE: o.run(func(ctx context.Context, c *porkbun.Client, args []string) (json.RawMessage, error) {
				resp, err := c.DeleteDNSSECRecord(ctx, args[0], args[1])
				if err != nil {
					return nil, err
				}
				return resp.Raw, nil
			}),
		},
	)
	return cmd
}
