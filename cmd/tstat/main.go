// Package main provides the CLI entrypoint for tstat.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tstat/internal/analyzer"
	"github.com/verte-zerg/tstat/internal/config"
	"github.com/verte-zerg/tstat/internal/export"
	"github.com/verte-zerg/tstat/internal/model"
	"github.com/verte-zerg/tstat/internal/report"
	"github.com/verte-zerg/tstat/internal/viewer"
	"github.com/verte-zerg/tstat/internal/wordlist"
	"github.com/verte-zerg/tstat/internal/wordstore"
)

const (
	defaultFormat = "text"
	defaultOrder  = "bucket"
	defaultPolicy = "truncate"
	defaultColor  = "auto"
	stdinPath     = "-"
)

var (
	configPath string

	showChars bool
	showWords bool
	showLines bool
	showFreq  bool

	outputPath    string
	sqlitePath    string
	reportFormat  string
	wordOrder     string
	topWords      int
	excludePath   string
	colorMode     string
	bucketCount   int
	maxWordLength int
	wordPolicy    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tstat [flags] <file>",
		Short: "Character, word and line statistics for a text file",
		Long: `Reads a file once and reports total characters, words and lines,
a printable-character frequency table and a case-insensitive word frequency table.

If none of -c, -w, -l or --freq is given, the full report is shown.
Use "-" as the file to read standard input.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReportCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/tstat/config.toml)")
	addAnalysisFlags(rootCmd)

	rootCmd.Flags().BoolVarP(&showChars, "chars", "c", false, "show overall statistics")
	rootCmd.Flags().BoolVarP(&showWords, "words", "w", false, "show overall statistics")
	rootCmd.Flags().BoolVarP(&showLines, "lines", "l", false, "show overall statistics")
	rootCmd.Flags().BoolVar(&showFreq, "freq", false, "show character and word frequency tables")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
	rootCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "also export the report to a SQLite file")
	rootCmd.Flags().StringVar(&reportFormat, "format", defaultFormat, "report format: text, json or yaml")
	rootCmd.Flags().StringVar(&colorMode, "color", defaultColor, "colored headings: auto, always or never")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newViewCmd())

	return rootCmd
}

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&wordOrder, "order", defaultOrder, "word order: bucket, count or alpha")
	cmd.Flags().IntVar(&topWords, "top", 0, "show only the first N words (0 = all)")
	cmd.Flags().StringVar(&excludePath, "exclude", "", "file of words to hide from the word table, one per line")
	cmd.Flags().IntVar(&bucketCount, "buckets", wordstore.DefaultBuckets, "word store bucket count")
	cmd.Flags().IntVar(&maxWordLength, "max-word-length", analyzer.DefaultMaxWordLength, "longest token kept in the word table")
	cmd.Flags().StringVar(&wordPolicy, "word-policy", defaultPolicy, "over-long tokens: truncate, reject or unbounded")
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, rcfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	rcfg.Overall = showChars || showWords || showLines
	rcfg.CharFreq = showFreq
	rcfg.WordFreq = showFreq
	if !rcfg.Sections() {
		rcfg.ShowAll()
	}

	opts, format, err := reportOptions(rcfg)
	if err != nil {
		return err
	}

	store, err := wordstore.New(cfg.Buckets)
	if err != nil {
		return fmt.Errorf("failed to create word store: %w", err)
	}
	defer store.Destroy()

	var freq analyzer.FreqTable
	res, err := analyzeInput(cmd, args[0], cfg, &freq, store)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rcfg.Output != "" {
		file, err := os.Create(rcfg.Output)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil {
				logErrf("failed to close output file: %v\n", cerr)
			}
		}()
		out = file
	}
	opts.Color = useColor(rcfg.Color, out)

	if err := report.Write(out, format, res, opts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if rcfg.SQLitePath != "" {
		if err := exportReport(rcfg.SQLitePath, report.Build(res, opts)); err != nil {
			return err
		}
	}
	return nil
}

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Browse the report interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runViewCmd,
	}
	addAnalysisFlags(cmd)
	return cmd
}

func runViewCmd(cmd *cobra.Command, args []string) error {
	cfg, rcfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	rcfg.ShowAll()
	opts, _, err := reportOptions(rcfg)
	if err != nil {
		return err
	}

	store, err := wordstore.New(cfg.Buckets)
	if err != nil {
		return fmt.Errorf("failed to create word store: %w", err)
	}
	defer store.Destroy()

	var freq analyzer.FreqTable
	res, err := analyzeInput(cmd, args[0], cfg, &freq, store)
	if err != nil {
		return err
	}

	program := tea.NewProgram(viewer.NewModel(res, opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run viewer: %w", err)
	}
	return nil
}

func analyzeInput(cmd *cobra.Command, path string, cfg model.Config, freq *analyzer.FreqTable, store *wordstore.Store) (analyzer.Result, error) {
	policy, err := analyzer.ParseWordPolicy(cfg.WordPolicy)
	if err != nil {
		return analyzer.Result{}, err
	}
	opts := analyzer.Options{
		Policy:        policy,
		MaxWordLength: cfg.MaxWordLength,
		OnInsertError: func(word string, err error) {
			logErrf("warning: dropped word %q: %v\n", word, err)
		},
	}

	var res analyzer.Result
	if path == stdinPath {
		res, err = analyzer.AnalyzeReader(cmd.InOrStdin(), "<stdin>", freq, store, opts)
	} else {
		res, err = analyzer.Analyze(path, freq, store, opts)
	}
	if err != nil {
		return analyzer.Result{}, err
	}
	return res, nil
}

func exportReport(path string, doc report.Document) error {
	exp, err := export.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open export db: %w", err)
	}
	defer func() {
		if cerr := exp.Close(); cerr != nil {
			logErrf("failed to close export db: %v\n", cerr)
		}
	}()
	id, err := exp.WriteReport(context.Background(), doc)
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}
	logErrf("Exported report %s to %s\n", id, path)
	return nil
}

func loadSettings(cmd *cobra.Command) (model.Config, model.ReportConfig, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.Config{}, model.ReportConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "buckets", &bucketCount, fileCfg.Analysis.Buckets)
	applyIntConfig(cmd, "max-word-length", &maxWordLength, fileCfg.Analysis.MaxWordLength)
	applyStringConfig(cmd, "word-policy", &wordPolicy, fileCfg.Analysis.WordPolicy)
	applyStringConfig(cmd, "format", &reportFormat, fileCfg.Report.Format)
	applyStringConfig(cmd, "order", &wordOrder, fileCfg.Report.Order)
	applyIntConfig(cmd, "top", &topWords, fileCfg.Report.Top)
	applyStringConfig(cmd, "exclude", &excludePath, fileCfg.Report.Exclude)
	applyStringConfig(cmd, "color", &colorMode, fileCfg.Report.Color)

	cfg := model.Config{
		Buckets:       bucketCount,
		MaxWordLength: maxWordLength,
		WordPolicy:    wordPolicy,
	}
	rcfg := model.ReportConfig{
		Format:      reportFormat,
		Order:       wordOrder,
		Top:         topWords,
		ExcludePath: excludePath,
		Color:       colorMode,
		Output:      outputPath,
		SQLitePath:  sqlitePath,
	}
	if err := validateConfig(cfg, rcfg); err != nil {
		return model.Config{}, model.ReportConfig{}, err
	}
	return cfg, rcfg, nil
}

func reportOptions(rcfg model.ReportConfig) (report.Options, report.Format, error) {
	format, err := report.ParseFormat(rcfg.Format)
	if err != nil {
		return report.Options{}, "", err
	}
	order, err := report.ParseOrder(rcfg.Order)
	if err != nil {
		return report.Options{}, "", err
	}
	opts := report.Options{
		Overall:  rcfg.Overall,
		CharFreq: rcfg.CharFreq,
		WordFreq: rcfg.WordFreq,
		Order:    order,
		Top:      rcfg.Top,
	}
	if rcfg.ExcludePath != "" {
		exclude, err := wordlist.LoadSet(rcfg.ExcludePath)
		if err != nil {
			return report.Options{}, "", fmt.Errorf("failed to load exclude list: %w", err)
		}
		opts.Exclude = exclude
	}
	return opts, format, nil
}

func validateConfig(cfg model.Config, rcfg model.ReportConfig) error {
	if cfg.Buckets < 1 {
		return fmt.Errorf("--buckets must be >= 1")
	}
	if cfg.MaxWordLength < 0 {
		return fmt.Errorf("--max-word-length must be >= 0")
	}
	if rcfg.Top < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	switch rcfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("--color must be auto, always or never")
	}
	return nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return report.ShouldUseColor(w)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tstat configuration
# Uncomment a value to enable it. CLI flags override config values.

[analysis]
# buckets = %d            # Word store bucket count
# max-word-length = %d      # Longest token kept in the word table
# word-policy = %q  # truncate, reject or unbounded

[report]
# format = %q          # text, json or yaml
# order = %q         # bucket, count or alpha
# top = 0                  # Show only the first N words (0 = all)
# exclude = ""             # File of words to hide, one per line
# color = %q           # auto, always or never
`,
		wordstore.DefaultBuckets,
		analyzer.DefaultMaxWordLength,
		defaultPolicy,
		defaultFormat,
		defaultOrder,
		defaultColor,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
