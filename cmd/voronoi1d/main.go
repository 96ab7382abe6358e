// Command voronoi1d partitions a list of numbers into clusters using 1D
// Voronoi partitioning with optional Lloyd relaxation.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/voronoi1d"
	"github.com/hupe1980/voronoi1d/export"
	"github.com/hupe1980/voronoi1d/parse"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		seedCount  int
		iterations int
		initName   string
		csvPath    string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "voronoi1d [values...]",
		Short: "Partition numbers into clusters with 1D Voronoi / Lloyd relaxation",
		Long: `Partition a list of numbers into a fixed number of clusters.

Values are taken from the argument list, or from stdin when no arguments are
given. Numbers may be separated by spaces, commas, or newlines, and integer
range tokens such as "3-7" expand in place.

Examples:
  voronoi1d --seeds 3 0 1 2 3 4 5 6 7 8 9
  echo "1-100" | voronoi1d --seeds 4 --init random
  voronoi1d --seeds 3 --csv out.csv.gz 0-9`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if len(args) == 0 {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = string(raw)
			}

			values, err := parse.Values(input)
			if err != nil {
				return err
			}

			initMethod, err := voronoi1d.ParseInitMethod(initName)
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := voronoi1d.NewTextLogger(level)

			res, err := voronoi1d.Partition(values, seedCount,
				voronoi1d.WithInitMethod(initMethod),
				voronoi1d.WithLloydIterations(iterations),
				voronoi1d.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			if csvPath != "" {
				if err := export.WriteCSVFile(csvPath, res); err != nil {
					return err
				}

				logger.WithSeedCount(seedCount).WithValueCount(len(values)).Info("csv export written", "path", csvPath)

				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), export.Text(res))

			return nil
		},
	}

	cmd.Flags().IntVar(&seedCount, "seeds", 3, "number of seeds (clusters)")
	cmd.Flags().IntVar(&iterations, "iterations", 10, "maximum Lloyd relaxation passes")
	cmd.Flags().StringVar(&initName, "init", "quantile", `seed initialization: "quantile" or "random"`)
	cmd.Flags().StringVar(&csvPath, "csv", "", "write (cluster_id,value) CSV to this path instead of printing; a .gz suffix compresses")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
