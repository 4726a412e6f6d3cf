package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ext-sakamoro/ALICE-Text/container"
	"github.com/ext-sakamoro/ALICE-Text/v2"
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <input>",
		Short: "Deep-verify every column's checksum (v3) or the full blob's checksum (v2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, data, err := readInputArg(args)
			if err != nil {
				return err
			}

			codec, err := codecFromFlags("verify")
			if err != nil {
				return err
			}

			version, err := sniffVersion(data)
			if err != nil {
				return withCode(exitCorrupt, err)
			}

			switch version {
			case v2.Version:
				if _, err := v2.Read(context.Background(), bytes.NewReader(data), codec); err != nil {
					return withCode(exitCorrupt, err)
				}
			case container.Version:
				r, err := container.Open(container.NewReaderAtBytes(data), int64(len(data)), codec)
				if err != nil {
					return withCode(exitCorrupt, err)
				}
				if err := r.Verify(context.Background()); err != nil {
					return withCode(exitCorrupt, err)
				}
			default:
				return withCode(exitCorrupt, fmt.Errorf("unsupported container version %d", version))
			}

			return writeOutput([]byte("ok\n"))
		},
	}
}
