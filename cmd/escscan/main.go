package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/escscan/internal/cliconfig"
	"github.com/bft-labs/escscan/internal/inspect"
	"github.com/bft-labs/escscan/pkg/log"
)

const longHelp = `
Find literal "\n" escape markers that were written into a source file in
place of real newlines.

escscan prints the file's line count, a window of lines around the known
problem location, and every line containing a backslash followed by "n".
Use "escscan fix" to write a repaired copy next to the file.
`

var exampleUsage = strings.TrimSpace(`
  escscan client/src/pages/community/friends.tsx
  escscan --window-start 0 --window-end 20 --watch src/app.tsx
  escscan fix --encoding latin1 src/app.tsx
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// cli carries the state shared by the root command and its subcommands.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	stderr  io.Writer
}

// resolve layers the config file, ESCSCAN_* environment, and flags
// (highest wins), then validates the result.
func (c *cli) resolve(cmd *cobra.Command, args []string) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	if len(args) == 1 {
		c.cfg.Target = args[0]
		changed["target"] = true
	}

	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	} else if c.cfgPath != "" {
		return fmt.Errorf("config file %s not found", c.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}
	return c.cfg.Validate()
}

func newCLI(stderr io.Writer) *cli {
	return &cli{cfg: cliconfig.DefaultConfig(), stderr: stderr}
}

func (c *cli) logger() log.Logger {
	return log.NewZerologAdapterWithLogger(cliconfig.NewLogger(c.stderr, c.cfg.LogLevel))
}

// reportError logs a failed run at the configured level.
func (c *cli) reportError(err error) {
	c.logger().Error("escscan", log.Err(err))
}

func newRootCmd(c *cli, stdout io.Writer) *cobra.Command {

	root := &cobra.Command{
		Use:           "escscan [path]",
		Short:         "Report literal \\n escape markers in a source file",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolve(cmd, args); err != nil {
				return err
			}
			logger := c.logger()
			logger.Debug("configuration",
				log.String("target", c.cfg.Target),
				log.Bool("watch", c.cfg.Watch),
				log.Any("config", c.cfg),
			)

			in := inspect.New(stdout, c.cfg.Options(), logger)
			if _, err := in.Run(c.cfg.Target); err != nil {
				return err
			}
			if !c.cfg.Watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return in.Watch(ctx, c.cfg.Target, c.cfg.Debounce)
		},
	}
	root.SetOut(stdout)
	root.SetErr(c.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.escscan/config.toml)")
	flags.StringVar(&c.cfg.Encoding, "encoding", c.cfg.Encoding, "decoding policy: utf-8 (drops invalid bytes), latin1, windows-1252")
	flags.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "stderr log level (debug, info, warn, error)")

	root.Flags().IntVar(&c.cfg.WindowStart, "window-start", c.cfg.WindowStart, "first zero-based line index of the inspection window")
	root.Flags().IntVar(&c.cfg.WindowEnd, "window-end", c.cfg.WindowEnd, "zero-based line index the window stops before")
	root.Flags().IntVar(&c.cfg.WindowWidth, "window-width", c.cfg.WindowWidth, "characters shown per window line")
	root.Flags().IntVar(&c.cfg.MatchWidth, "match-width", c.cfg.MatchWidth, "characters shown per matching line")
	root.Flags().BoolVar(&c.cfg.Watch, "watch", c.cfg.Watch, "re-inspect every time the file changes")
	root.Flags().DurationVar(&c.cfg.Debounce, "debounce", c.cfg.Debounce, "quiet period before re-inspecting in watch mode")

	root.AddCommand(newFixCmd(c, stdout))
	return root
}

func newFixCmd(c *cli, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "fix [path]",
		Short: "Write a copy with every literal \\n replaced by a real newline",
		Long: "Replaces every literal \\n in the file with a newline and writes the result to <path>" +
			inspect.FixedSuffix + ". The file is repaired byte for byte, so --encoding does not\n" +
			"affect it. The original file is never modified.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolve(cmd, args); err != nil {
				return err
			}
			logger := c.logger()

			out, n, err := inspect.FixFile(c.cfg.Target)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(stdout, `No literal \n found`)
				return nil
			}
			logger.Info("wrote fixed copy", log.String("path", out), log.Int("replaced", n))
			fmt.Fprintf(stdout, "Replaced %d literal \\n sequences\nFixed file saved to: %s\n", n, out)
			return nil
		},
	}
}

func main() {
	c := newCLI(os.Stderr)
	if err := newRootCmd(c, os.Stdout).Execute(); err != nil {
		c.reportError(err)
		os.Exit(1)
	}
}
