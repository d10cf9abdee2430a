package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/arith/internal/config"
	"github.com/zephyrtronium/arith/internal/shell"
)

var errFailed = errors.New("some expressions failed")

type rootFlags struct {
	configPath string
	envFile    string
	in         string
	format     string
	prompt     string
	logLevel   string
	echo       bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "arith [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `arith evaluates expressions of numbers joined by + - * /, with * and /
binding more tightly than + and -. There are no brackets.

With arguments, each argument is evaluated and its result printed.
Otherwise arith reads one expression per line from standard input until
end of input, an empty line, or a line starting with a quit word.
--in names a file to read lines from instead, before any arguments; - is
standard input. Prompts are not printed for files unless --prompt is given.

Put -- before arguments that start with a minus sign.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			lvl, _ := cfg.Level()
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
			in, err := f.input(cmd, len(args) == 0)
			if err != nil {
				return err
			}
			if in != nil {
				defer in.Close()
				if f.in != "" && f.in != "-" && !cmd.Flags().Changed("prompt") {
					cfg.Prompt = ""
				}
				if err := shell.New(cfg, in, cmd.OutOrStdout(), log).Run(); err != nil {
					return err
				}
			}
			if len(args) == 0 {
				return nil
			}
			return evalArgs(shell.New(cfg, nil, cmd.OutOrStdout(), log), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "settings file (.toml, .yaml or .yml)")
	pf.StringVar(&f.envFile, "env-file", "", "dotenv file (default "+config.DefaultEnvFile+" if present)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fl := cmd.Flags()
	fl.StringVar(&f.in, "in", "", "input file, - for stdin (default stdin if no args given)")
	fl.StringVar(&f.format, "fmt", "", "result formatting verb (default %g)")
	fl.StringVar(&f.prompt, "prompt", "", "interactive prompt")
	fl.BoolVar(&f.echo, "echo", false, "print parse trees")
	fl.BoolVar(&f.noColor, "no-color", false, "disable styled output")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// load reads settings and applies the flags that were set explicitly.
func (f *rootFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{Path: f.configPath, EnvFile: f.envFile})
	if err != nil {
		return config.Config{}, err
	}
	fl := cmd.Flags()
	if fl.Changed("fmt") {
		cfg.Format = f.format
	}
	if fl.Changed("prompt") {
		cfg.Prompt = f.prompt
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("echo") {
		cfg.Echo = f.echo
	}
	if fl.Changed("no-color") {
		cfg.Color = !f.noColor
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// input opens the source of shell lines: the --in file, standard input for
// "-", or standard input when there are no arguments. It is nil if there is
// nothing to read.
func (f *rootFlags) input(cmd *cobra.Command, noArgs bool) (io.ReadCloser, error) {
	switch {
	case f.in != "" && f.in != "-":
		file, err := os.Open(f.in)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		return file, nil
	case f.in == "-", noArgs:
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return nil, nil
}

// evalArgs evaluates each argument as a separate expression. Every argument is
// attempted; the result is errFailed if any of them failed.
func evalArgs(sh *shell.Shell, args []string, stdout, stderr io.Writer) error {
	var failed bool
	for _, arg := range args {
		r, err := sh.Eval(arg)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", arg, err)
			failed = true
			continue
		}
		fmt.Fprintln(stdout, r)
	}
	if failed {
		return errFailed
	}
	return nil
}
