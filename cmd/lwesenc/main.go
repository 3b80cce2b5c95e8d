// Command lwesenc encodes typed values given on the command line into lwes
// wire bytes and prints them, for checking other implementations against.
//
//	lwesenc encode word=MyEvent uint16=2 word=ip ip_addr=10.0.0.1 word=ids int16[]=1,2,3
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lwes/lwes-go/charset"
	"github.com/lwes/lwes-go/format"
)

func main() {
	NewCLI().Run()
}

// CLI is the Cobra-based command-line interface.
type CLI struct {
	root   *cobra.Command
	logger zerolog.Logger
}

// NewCLI sets up the CLI.
func NewCLI() *CLI {
	cli := &CLI{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}
	cli.root = &cobra.Command{
		Use:           "lwesenc",
		Short:         "Encode typed values into lwes wire bytes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return err
			}
			lvl, err := zerolog.ParseLevel(level)
			if err != nil {
				return err
			}
			cli.logger = cli.logger.Level(lvl)

			return nil
		},
	}
	cli.root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	encode := &cobra.Command{
		Use:   "encode kind=value...",
		Short: "Encode fields in order and print the bytes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encName, err := cmd.Flags().GetString("encoding")
			if err != nil {
				return err
			}
			enc, ok := charset.Lookup(encName)
			if !ok {
				return fmt.Errorf("unknown encoding %q", encName)
			}
			raw, err := cmd.Flags().GetBool("raw")
			if err != nil {
				return err
			}
			out, err := cli.encode(args, enc)
			if err != nil {
				return err
			}
			if raw {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))

			return err
		},
	}
	encode.Flags().StringP("encoding", "e", charset.Default.String(), "Character encoding for strings (UTF-8, ISO-8859-1)")
	encode.Flags().Bool("raw", false, "Write raw bytes instead of hex")

	kinds := &cobra.Command{
		Use:   "kinds",
		Short: "List the field kinds encode accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(fieldKinds(), "\n"))
			return err
		},
	}

	cli.root.AddCommand(encode, kinds)

	return cli
}

// encode sizes every field first, allocates once, then writes the fields in order.
func (cli *CLI) encode(args []string, enc charset.ID) ([]byte, error) {
	fields := make([]field, 0, len(args))
	total := 0
	for _, arg := range args {
		f, err := parseField(arg, enc)
		if err != nil {
			return nil, err
		}
		if f.narrow {
			cli.logger.Warn().Str("field", arg).Msg("value wider than 64 bits, encoding low 64 bits only")
		}
		fields = append(fields, f)
		total += f.size
	}

	buf := make([]byte, total)
	off := 0
	for i, f := range fields {
		n, err := f.put(buf, off)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", args[i], err)
		}
		cli.logger.Debug().Str("kind", f.kind).Int("offset", off).Int("size", n).Msg("encoded field")
		off += n
	}
	cli.logger.Debug().Int("fields", len(fields)).Int("bytes", off).Str("encoding", enc.String()).Msg("done")

	return buf[:off], nil
}

// Run runs the CLI.
func (cli *CLI) Run() {
	if err := cli.root.Execute(); err != nil {
		cli.logger.Error().Err(err).Msg("lwesenc failed")
		os.Exit(1)
	}
}

func fieldKinds() []string {
	kinds := []string{kindUByte, kindWord}
	for t := format.TypeUint16; t <= format.TypeByte; t++ {
		kinds = append(kinds, t.String())
	}
	for t := format.TypeUint16; t <= format.TypeByte; t++ {
		kinds = append(kinds, t.ArrayOf().String())
	}

	return kinds
}
