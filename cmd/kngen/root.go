package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/kngen/builder"
	"github.com/katalvlaran/kngen/generate"
	"github.com/katalvlaran/kngen/internal/config"
	"github.com/katalvlaran/kngen/matrix"
)

const promptText = "Number of vertices: "

// rootOptions holds the raw flag values.
type rootOptions struct {
	vertices    string
	configPath  string
	outDir      string
	delimiter   string
	printMatrix bool
	verbose     bool
}

// newRootCmd builds the kngen command. State lives in the closure so tests
// can build fresh commands.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "kngen",
		Short: "Write the adjacency matrix of the complete graph K_n",
		Long: `kngen builds the n×n adjacency matrix of the complete graph K_n
(every off-diagonal entry 1, diagonal 0) and writes it to grafo_<n>.txt,
one row per line with space-separated values.

When -n is not given and the config file does not set "vertices",
the vertex count is read from standard input.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.vertices, "vertices", "n", "", "number of vertices (prompted when omitted)")
	f.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	f.StringVarP(&opts.outDir, "out", "o", "", "output directory (default \".\")")
	f.StringVar(&opts.delimiter, "delimiter", "", "token delimiter (default single space)")
	f.BoolVarP(&opts.printMatrix, "print", "p", false, "print the matrix to stdout")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// resolveConfig merges the config file (if any) with explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("vertices") {
		n, err := builder.ParseVertexCount(opts.vertices)
		if err != nil {
			return nil, err
		}
		v := config.VertexCount(n)
		cfg.Vertices = &v
	}
	if f.Changed("out") {
		cfg.OutputDir = opts.outDir
	}
	if f.Changed("delimiter") {
		cfg.Delimiter = opts.delimiter
	}
	if f.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// promptVertices asks for the vertex count on in and echoes the prompt to out.
func promptVertices(in io.Reader, out io.Writer) (int, error) {
	fmt.Fprint(out, promptText)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
		return 0, fmt.Errorf("failed to read vertex count: %w", err)
	}

	return builder.ParseVertexCount(line)
}

// newLogger builds the production zap logger on stderr; verbose lowers the
// level to Debug.
func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	out := cmd.OutOrStdout()
	if cfg.Vertices == nil {
		n, err := promptVertices(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		v := config.VertexCount(n)
		cfg.Vertices = &v
	}

	req := generate.Request{
		Vertices:  int(*cfg.Vertices),
		Dir:       cfg.OutputDir,
		Delimiter: cfg.Delimiter,
		Logger:    logger,
	}
	// Echo the matrix before the file is written.
	if opts.printMatrix {
		req.OnBuilt = func(m *matrix.Dense) { fmt.Fprintln(out, m) }
	}

	res, err := generate.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Path)

	return nil
}
