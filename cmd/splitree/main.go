package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/TuftsBCB/splits/newick"
	"github.com/TuftsBCB/splits/split"
	"github.com/TuftsBCB/splits/tree"
)

var (
	// Global flags
	verbose bool

	// build flags
	format  string
	partial bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "splitree",
	Short: "Reconstruct tree topologies from edge-induced bipartitions",
	Long: `splitree rebuilds the branching structure of an unrooted tree from
the collection of bipartitions (splits) induced by its edges, and can also
run the inverse: decomposing a Newick tree into its splits.

A split is written as one line with its two sides separated by '/'. A side
containing commas is a comma separated label list; otherwise each character
is one leaf label, so "b/acde" separates leaf b from leaves a, c, d and e.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildCmd reconstructs a tree from a split list
var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Build a tree from a list of splits",
	Long: `Reads splits, one per line, from the given file (or stdin) and
prints the reconstructed tree's two root branches.

Splits that turn out to be inconsistent with the rest of the input are
logged, skipped, and counted; unless --partial is set, any skipped split
makes the command fail after printing the partial tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

// decomposeCmd lists the splits of a Newick tree
var decomposeCmd = &cobra.Command{
	Use:   "decompose [file]",
	Short: "Decompose a Newick tree into its splits",
	Long: `Reads a single Newick tree from the given file (or stdin) and
prints its edge-induced splits, one per line, in a form that can be fed
back into 'splitree build'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecompose,
}

func runBuild(cmd *cobra.Command, args []string) error {
	in, err := input(args)
	if err != nil {
		return err
	}
	defer in.Close()

	records, err := split.NewReader(in).ReadAll()
	if err != nil {
		return err
	}
	logger.Debug("read splits", zap.Int("count", len(records)))

	rootA, rootB, errs := tree.Build(tree.NewSplits(records))
	if rootA == nil {
		return errs[0]
	}
	for _, e := range errs {
		logger.Warn("skipped split", zap.Error(e))
	}

	switch format {
	case "text":
		fmt.Print(rootA)
		fmt.Print(rootB)
	case "newick":
		if err := newick.Write(os.Stdout, tree.Newick(rootA, rootB)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format '%s' (want text or newick)",
			format)
	}

	if len(errs) > 0 && !partial {
		return fmt.Errorf("%d split(s) were inconsistent and skipped; "+
			"the tree is incomplete", len(errs))
	}
	return nil
}

func runDecompose(cmd *cobra.Command, args []string) error {
	in, err := input(args)
	if err != nil {
		return err
	}
	defer in.Close()

	t, err := newick.NewReader(in).ReadTree()
	if err == io.EOF {
		return fmt.Errorf("no tree in the input")
	} else if err != nil {
		return err
	}

	records, err := t.Splits()
	if err != nil {
		return err
	}
	logger.Debug("decomposed tree", zap.Int("splits", len(records)))
	for _, rec := range records {
		fmt.Println(rec)
	}
	return nil
}

// input opens the file named by the arguments, or falls back to stdin.
func input(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging")
	buildCmd.Flags().StringVarP(&format, "format", "f", "text",
		"Output format: text or newick")
	buildCmd.Flags().BoolVar(&partial, "partial", false,
		"Succeed even if inconsistent splits were skipped")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(decomposeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
