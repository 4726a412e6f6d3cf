package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	alicetext "github.com/ext-sakamoro/ALICE-Text"
	"github.com/ext-sakamoro/ALICE-Text/container"
)

func newEstimateCommand() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "estimate <input>",
		Short: "Estimate compression without writing a container to disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, data, err := readInputArg(args)
			if err != nil {
				return err
			}

			codec, err := codecFromFlags("estimate")
			if err != nil {
				return err
			}

			_, stats, err := alicetext.Compress(context.Background(), string(data), codec)
			if err != nil {
				return withCode(exitEncode, err)
			}

			out := fmt.Sprintf(
				"original_bytes: %d\ncompressed_bytes: %d\nratio: %.4f\nspace_savings: %.2f%%\ntokens: %d\nexceptions: %d\npatterns: %d\n",
				stats.OriginalSize, stats.CompressedSize, stats.CompressionRatio(), stats.SpaceSavings(),
				stats.TokenCount, stats.ExceptionCount, stats.PatternCount,
			)

			if detailed {
				streams, cols := buildSkeleton(string(data))

				var buf bytes.Buffer
				in := container.Input{Streams: streams, Columns: cols}
				if err := container.Write(context.Background(), &buf, in, codec); err != nil {
					return withCode(exitEncode, err)
				}

				r, err := container.Open(container.NewReaderAtBytes(buf.Bytes()), int64(buf.Len()), codec)
				if err != nil {
					return withCode(exitEncode, err)
				}

				out += "\nper-column breakdown:\n"
				for _, id := range r.Columns() {
					s, err := r.Stats(id)
					if err != nil {
						return withCode(exitEncode, err)
					}
					out += fmt.Sprintf("  %-12s elements=%-8d uncompressed=%-10d compressed=%d\n",
						s.ID, s.RowCount, s.UncompressedSz, s.CompressedSz)
				}
			}

			return writeOutput([]byte(out))
		},
	}
	cmd.Flags().BoolVar(&detailed, "detailed", false, "also print a per-column byte-share breakdown")
	cmd.Flags().StringVar(&flagLevel, "level", "", "compression level: fast, balanced, best")

	return cmd
}
