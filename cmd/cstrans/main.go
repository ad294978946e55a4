// Command cstrans converts text between two character sets on a
// stdin-to-stdout pipeline, streaming through the library's Unicode
// pivot so arbitrarily large inputs convert in constant memory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	charset "github.com/moriyoshi/libcharset-go"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	from    string
	to      string
	upgrade bool
	lossy   bool
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "cstrans --from <charset> --to <charset>",
		Short:         "Convert between character sets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, os.Stdin, os.Stdout)
		},
	}
	fs := cmd.Flags()
	addFlags(fs, opts)
	cmd.AddCommand(newListCommand())
	return cmd
}

func addFlags(fs *flag.FlagSet, opts *options) {
	fs.StringVarP(&opts.from, "from", "f", "", "source character set")
	fs.StringVarP(&opts.to, "to", "t", "", "destination character set")
	fs.BoolVar(&opts.upgrade, "upgrade", false,
		"treat the source as its commonly-confused superset (e.g. ISO-8859-1 as CP1252)")
	fs.BoolVar(&opts.lossy, "lossy", false,
		"drop unrepresentable characters instead of failing")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log conversion details")
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported character sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for n := 0; ; n++ {
				cs := charset.Enumerate(n)
				if cs == charset.None {
					return nil
				}
				line := cs.String()
				if mime := charset.CanonicalName(charset.MIME, cs); mime != "" && mime != line {
					line += "\t" + mime
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		},
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(opts *options, in io.Reader, out io.Writer) error {
	logger := newLogger(opts.verbose)
	defer logger.Sync()

	src, err := charset.LookupName(charset.Local, opts.from)
	if err != nil {
		return fmt.Errorf("unknown source charset %q", opts.from)
	}
	dst, err := charset.LookupName(charset.Local, opts.to)
	if err != nil {
		return fmt.Errorf("unknown destination charset %q", opts.to)
	}
	if opts.upgrade {
		src = charset.Upgrade(src)
	}
	logger.Debug("converting",
		zap.String("from", src.String()), zap.String("to", dst.String()))

	var (
		instate, outstate charset.State
		inbuf             [4096]byte
		midbuf            [4096]rune
		outbuf            [4096]byte
	)

	flushOut := func() error {
		for {
			n := dst.FlushTo(outbuf[:], &outstate)
			if n == 0 {
				return nil
			}
			if _, err := out.Write(outbuf[:n]); err != nil {
				return err
			}
		}
	}

	writeRunes := func(mid []rune) error {
		for len(mid) > 0 {
			var nOut, nMid int
			if opts.lossy {
				nOut, nMid = dst.FromUnicodeLossy(outbuf[:], mid, &outstate)
			} else {
				var unrep bool
				nOut, nMid, unrep = dst.FromUnicode(outbuf[:], mid, &outstate)
				if unrep {
					return fmt.Errorf("U+%04X has no representation in %s", mid[nMid], dst)
				}
			}
			if _, err := out.Write(outbuf[:nOut]); err != nil {
				return err
			}
			mid = mid[nMid:]
		}
		return nil
	}

	for {
		rd, rerr := in.Read(inbuf[:])
		chunk := inbuf[:rd]
		for len(chunk) > 0 {
			nMid, nIn := src.ToUnicode(midbuf[:], chunk, &instate)
			if err := writeRunes(midbuf[:nMid]); err != nil {
				return err
			}
			chunk = chunk[nIn:]
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}
	return flushOut()
}
