// Command alicetext is the command-line driver for the ALICE-Text library:
// compress/decompress log text against the v2 monolithic or v3 columnar
// container formats, inspect a container's layout, verify its integrity,
// estimate compression without writing output, and run typed select/filter
// queries against a v3 file without fully decompressing it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ext-sakamoro/ALICE-Text/internal/logging"
)

var (
	flagOutput  string
	flagLevel   string
	flagVerbose bool

	logger *zap.Logger
)

func main() {
	root := newRootCommand()
	err := root.Execute()
	os.Exit(exitCodeOf(err))
}

func newRootCommand() *cobra.Command {
	viper.SetEnvPrefix("ALICE_TEXT")
	viper.BindEnv("level") //nolint:errcheck

	root := &cobra.Command{
		Use:           "alicetext",
		Short:         "Compress, query, and inspect ALICE-Text containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagLevel == "" {
				flagLevel = viper.GetString("level")
			}
			if flagVerbose {
				l, err := logging.New("debug")
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					logger = logging.NoOp()
				} else {
					logger = l
				}
			} else {
				logger = logging.NoOp()
			}
		},
	}

	root.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output file (default: stdout)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCompressCommand(),
		newCompressV3Command(),
		newDecompressCommand(),
		newInfoCommand(),
		newVerifyCommand(),
		newEstimateCommand(),
		newQueryCommand(),
	)

	return root
}

// readInputArg loads the whole input file named by args[0]; every command
// table entry in spec.md §6 takes exactly one required input argument.
func readInputArg(args []string) (string, []byte, error) {
	if len(args) != 1 {
		return "", nil, fmt.Errorf("expected exactly one input file argument")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, withCode(exitIO, fmt.Errorf("read %s: %w", args[0], err))
	}

	return args[0], data, nil
}

// writeOutput writes data to flagOutput, or to stdout if it was not set.
func writeOutput(data []byte) error {
	if flagOutput == "" {
		_, err := os.Stdout.Write(data)
		if err != nil {
			return withCode(exitIO, err)
		}

		return nil
	}

	if err := os.WriteFile(flagOutput, data, 0o644); err != nil { //nolint:gosec
		return withCode(exitIO, fmt.Errorf("write %s: %w", flagOutput, err))
	}

	return nil
}
