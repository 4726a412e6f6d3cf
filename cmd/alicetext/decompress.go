package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ext-sakamoro/ALICE-Text/compress"
	"github.com/ext-sakamoro/ALICE-Text/container"
	"github.com/ext-sakamoro/ALICE-Text/query"
	"github.com/ext-sakamoro/ALICE-Text/v2"
)

// sniffVersion reads the version field common to both the v2 and v3
// headers (bytes 8-9, little-endian) without fully parsing either header.
func sniffVersion(data []byte) (uint16, error) {
	if len(data) < 10 {
		return 0, withCode(exitDecode, fmt.Errorf("truncated header"))
	}

	return uint16(data[8]) | uint16(data[9])<<8, nil
}

func decompressAny(data []byte, codec compress.Codec) (string, error) {
	version, err := sniffVersion(data)
	if err != nil {
		return "", err
	}

	switch version {
	case v2.Version:
		in, err := v2.Read(context.Background(), bytes.NewReader(data), codec)
		if err != nil {
			return "", withCode(exitDecode, err)
		}

		return renderAll(in.Streams, in.Columns), nil

	case container.Version:
		e := query.NewEngine()
		if err := e.OpenContainer(container.NewReaderAtBytes(data), int64(len(data)), codec); err != nil {
			return "", withCode(exitDecode, err)
		}
		defer e.Close() //nolint:errcheck

		records, err := e.Select(context.Background(), 0)
		if err != nil {
			return "", withCode(exitDecode, err)
		}

		return strings.Join(records, "\n"), nil

	default:
		return "", withCode(exitDecode, fmt.Errorf("unsupported container version %d", version))
	}
}

func newDecompressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <input>",
		Short: "Decompress a v2 or v3 ALICE-Text container back to its original text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, data, err := readInputArg(args)
			if err != nil {
				return err
			}

			codec, err := codecFromFlags("decompress")
			if err != nil {
				return err
			}

			text, err := decompressAny(data, codec)
			if err != nil {
				return err
			}

			return writeOutput([]byte(text))
		},
	}
}
