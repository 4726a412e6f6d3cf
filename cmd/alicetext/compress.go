package main

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ext-sakamoro/ALICE-Text/compress"
	"github.com/ext-sakamoro/ALICE-Text/container"
	"github.com/ext-sakamoro/ALICE-Text/v2"
)

func codecFromFlags(target string) (compress.Codec, error) {
	level, err := compress.ParseLevel(flagLevel)
	if err != nil {
		return nil, withCode(exitUsage, err)
	}

	codec, err := compress.CreateCodec(compress.AlgorithmZstd, level, target)
	if err != nil {
		return nil, withCode(exitUsage, err)
	}

	return codec, nil
}

func newCompressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress <input>",
		Short: "Compress a log file into the v2 monolithic container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, data, err := readInputArg(args)
			if err != nil {
				return err
			}

			codec, err := codecFromFlags("compress")
			if err != nil {
				return err
			}

			streams, cols := buildSkeleton(string(data))

			var buf bytes.Buffer
			if err := v2.Write(context.Background(), &buf, v2.Input{Streams: streams, Columns: cols}, codec); err != nil {
				return withCode(exitEncode, err)
			}

			logger.Debug("compressed", zap.Int("original_bytes", len(data)), zap.Int("compressed_bytes", buf.Len()))

			return writeOutput(buf.Bytes())
		},
	}
	cmd.Flags().StringVar(&flagLevel, "level", "", "compression level: fast, balanced, best")

	return cmd
}

func newCompressV3Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress-v3 <input>",
		Short: "Compress a log file into the v3 columnar container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, data, err := readInputArg(args)
			if err != nil {
				return err
			}

			codec, err := codecFromFlags("compress-v3")
			if err != nil {
				return err
			}

			streams, cols := buildSkeleton(string(data))

			var buf bytes.Buffer
			in := container.Input{Streams: streams, Columns: cols}
			if err := container.Write(context.Background(), &buf, in, codec); err != nil {
				return withCode(exitEncode, err)
			}

			logger.Debug("compressed", zap.Int("original_bytes", len(data)), zap.Int("compressed_bytes", buf.Len()))

			return writeOutput(buf.Bytes())
		},
	}
	cmd.Flags().StringVar(&flagLevel, "level", "", "compression level: fast, balanced, best")

	return cmd
}
