package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/hctree"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	logLevel string
	logFile  string

	log    zerolog.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:           "hcz",
		Short:         "Huffman coding tree compressor",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, closer, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFile)
			if err != nil {
				return err
			}
			a.log, a.closer = log, closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer == nil {
				return nil
			}
			return a.closer.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", defaultLogLevel(), "log level (trace, debug, info, warn, error); default from $"+envLogLevel)
	flags.StringVar(&a.logFile, "log-file", "", "also write logs to this file, rotating it as it grows")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "compress INPUT OUTPUT",
			Short: "Compress INPUT into OUTPUT",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.compress(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "decompress INPUT OUTPUT",
			Short: "Decompress INPUT into OUTPUT",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.decompress(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "dump INPUT",
			Short: "Print the code table INPUT would be compressed with",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.dump(cmd.OutOrStdout(), args[0])
			},
		},
	)
	return rootCmd
}

func (a *app) compress(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	n, err := writeFile(outputPath, func(w io.Writer) error {
		return hctree.Compress(w, data)
	})
	if err != nil {
		return fmt.Errorf("failed to compress %s: %w", inputPath, err)
	}

	event := a.log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("in_bytes", len(data)).
		Int64("out_bytes", n)
	if len(data) != 0 {
		event = event.Float64("ratio", float64(n)/float64(len(data)))
	}
	event.Msg("compressed")
	return nil
}

func (a *app) decompress(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	n, err := writeFile(outputPath, func(w io.Writer) error {
		return hctree.Decompress(w, bufio.NewReader(in))
	})
	if err != nil {
		return fmt.Errorf("failed to decompress %s: %w", inputPath, err)
	}

	a.log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int64("out_bytes", n).
		Msg("decompressed")
	return nil
}

func (a *app) dump(w io.Writer, inputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	freqs, err := hctree.CountFrequencies(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var t hctree.Tree
	t.Init(freqs[:])
	a.log.Debug().
		Uint64("symbols", freqs.Total()).
		Int("header_bits", t.HeaderSize()).
		Msg(t.String())

	_, err = t.Dump(w)
	return err
}

// writeFile creates path, lets fn fill it, and reports the bytes written.
func writeFile(path string, fn func(w io.Writer) error) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: f}
	if err := fn(cw); err != nil {
		f.Close()
		return cw.n, err
	}
	return cw.n, f.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
