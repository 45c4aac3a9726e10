// Package cli provides the command-line interface for pagedb-kernel.
// It handles flag/config parsing and invokes the graph-kernel driver
// glue against an on-disk PageDB.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pagedb/kernel"
	"pagedb/pagedb"
)

var (
	cfgFile   string
	version   string
	buildTime string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pagedb-kernel",
	Short: "Run the HITS or PageRank driver over a pagedb store",
	Long: `pagedb-kernel opens a page database and runs the requested
graph-analysis kernel (HITS or PageRank) over its current link graph,
writing the resulting score vectors to flat files.`,
	Args: cobra.NoArgs,
	RunE: runKernel,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information shown by --version.
func SetVersionInfo(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pagedb-kernel.yml)")

	rootCmd.Flags().StringP("database", "d", "./pagedb", "Path to the page database directory")
	rootCmd.Flags().StringP("out", "o", "./scores", "Directory to write score vector files to")
	rootCmd.Flags().String("kernel", "pagerank", "Kernel to run: 'pagerank' or 'hits'")
	rootCmd.Flags().Int("iterations", 20, "Number of power-iteration rounds")
	rootCmd.Flags().Float64("damping", 0.85, "PageRank damping factor")
	rootCmd.Flags().Duration("timeout", 5*time.Minute, "Maximum time to let the kernel run")
	rootCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")

	bindFlags := []string{"database", "out", "kernel", "iterations", "damping", "timeout", "log-level"}
	for _, name := range bindFlags {
		if err := viper.BindPFlag(name, rootCmd.Flags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to bind flag %s: %v\n", name, err)
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("pagedb-kernel")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PAGEDB")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func runKernel(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(viper.GetString("log-level")),
	}))

	dbPath := viper.GetString("database")
	outDir := viper.GetString("out")
	kernelName := viper.GetString("kernel")
	iterations := viper.GetInt("iterations")
	damping := viper.GetFloat64("damping")
	timeout := viper.GetDuration("timeout")

	absDB, err := filepath.Abs(dbPath)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	db, err := pagedb.Open(absDB, pagedb.PageDBConfig{Logger: logger})
	if err != nil {
		return fmt.Errorf("open page database at %s: %w", absDB, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("error closing page database", "err", err)
		}
	}()

	sink := &kernel.DenseFileScoreSink{Dir: outDir}
	driver := kernel.NewDriver(db, sink, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	switch kernelName {
	case "pagerank":
		k := kernel.NewPageRank()
		k.Iterations = iterations
		k.Damping = float32(damping)
		if err := driver.UpdatePageRank(ctx, k); err != nil {
			return fmt.Errorf("run pagerank: %w", err)
		}
	case "hits":
		k := kernel.NewHITS()
		k.Iterations = iterations
		if err := driver.UpdateHITS(ctx, k); err != nil {
			return fmt.Errorf("run hits: %w", err)
		}
	default:
		return fmt.Errorf("unknown kernel %q (want 'pagerank' or 'hits')", kernelName)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s scores to %s\n", kernelName, outDir)
	return nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
