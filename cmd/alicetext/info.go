package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ext-sakamoro/ALICE-Text/container"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <input>",
		Short: "Print a v3 container's header and column directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, data, err := readInputArg(args)
			if err != nil {
				return err
			}

			codec, err := codecFromFlags("info")
			if err != nil {
				return err
			}

			r, err := container.Open(container.NewReaderAtBytes(data), int64(len(data)), codec)
			if err != nil {
				return withCode(exitCorrupt, err)
			}

			var out string
			out += fmt.Sprintf("magic: ALICETXT\nversion: %d\nflags: %#04x\nrow_count: %d\ncolumns: %d\n",
				r.Version(), r.Flags(), r.RowCount(), len(r.Columns()))

			for _, id := range r.Columns() {
				s, err := r.Stats(id)
				if err != nil {
					return withCode(exitCorrupt, err)
				}
				out += fmt.Sprintf("  %-12s type=%-8s encoding=%-28s rows=%-8d uncompressed=%-10d compressed=%d\n",
					s.ID, s.ElementType, s.Encoding, s.RowCount, s.UncompressedSz, s.CompressedSz)
			}

			return writeOutput([]byte(out))
		},
	}
}
