package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/tuuid"
)

const (
	formatHex   = "hex"
	formatArray = "array"
)

func newToBytesCmd(logger func() hclog.Logger) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "to-bytes <uuid>",
		Short: "Print the 16-byte big-endian form of a canonical UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			b, err := tuuid.ParseToBytes(args[0])
			if err != nil {
				log.Error("error parsing UUID", "input", args[0], "error", err)
				return err
			}

			switch format {
			case formatHex:
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b[:]))
			case formatArray:
				fmt.Fprintln(cmd.OutOrStdout(), formatByteArray(b[:]))
			default:
				err := fmt.Errorf("unknown format %q", format)
				log.Error("invalid flag", "error", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatHex, "Output format: hex or array")
	return cmd
}

func newFromBytesCmd(logger func() hclog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "from-bytes <hex>",
		Short: "Print the canonical string form of a 16-byte UUID given as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			b, err := hex.DecodeString(args[0])
			if err != nil {
				err = fmt.Errorf("input is not hex: %w", tuuid.ErrMalformedInput)
				log.Error("error decoding bytes", "input", args[0], "error", err)
				return err
			}

			s, err := tuuid.BytesToString(b)
			if err != nil {
				log.Error("error converting bytes", "length", len(b), "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newInspectCmd(logger func() hclog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <uuid>",
		Short: "Describe the version, variant and timestamp of a UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := tuuid.Parse(args[0])
			if err != nil {
				logger().Error("error parsing UUID", "input", args[0], "error", err)
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "uuid:    %s\n", id)
			fmt.Fprintf(out, "version: %d\n", id.Version())
			fmt.Fprintf(out, "variant: %s\n", variantName(id.Variant()))
			if id.Version() == tuuid.VersionTimeBased {
				fmt.Fprintf(out, "ticks:   %d\n", id.Ticks())
				fmt.Fprintf(out, "time:    %s\n", id.Time().Format("2006-01-02T15:04:05.0000000"))
			}
			return nil
		},
	}
}

func formatByteArray(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.Itoa(int(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func variantName(v tuuid.Variant) string {
	switch v {
	case tuuid.VariantNCS:
		return "NCS"
	case tuuid.VariantRFC4122:
		return "RFC4122"
	case tuuid.VariantMicrosoft:
		return "Microsoft"
	default:
		return "Future"
	}
}
