package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/answers"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/config"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/input"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg, nil).Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg       config.Config
	inputPath string
	logger    *zap.Logger
}

func newRootCmd(cfg config.Config, logger *zap.Logger) *cobra.Command {
	a := &app{cfg: cfg, logger: logger}

	root := &cobra.Command{
		Use:          "aoc2023",
		Short:        "Advent of Code 2023 solutions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			var err error
			a.logger, err = newLogger(a.cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.InputDir, "input-dir", cfg.InputDir, "directory holding dayNN.txt inputs")
	flags.StringVar(&a.cfg.AnswersFile, "answers", cfg.AnswersFile, "YAML file with known answers, empty to skip checks")
	flags.BoolVarP(&a.cfg.Verbose, "verbose", "v", cfg.Verbose, "debug logging")

	for _, d := range days {
		root.AddCommand(a.dayCmd(d))
	}
	root.AddCommand(a.allCmd())
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func (a *app) dayCmd(d day) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day" + strconv.Itoa(d.number),
		Short: d.title,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDay(cmd, d)
		},
	}
	cmd.Flags().StringVarP(&a.inputPath, "input", "i", "", "input file, defaults to <input-dir>/"+input.DayFile(d.number))
	if d.number == 4 {
		cmd.Flags().BoolVar(&a.cfg.SkipInvalid, "skip-invalid", a.cfg.SkipInvalid, "skip card lines that cannot be parsed")
	}
	return cmd
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Solve every day found in the input directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range days {
				fmt.Fprintf(cmd.OutOrStdout(), "Day %d: %s\n", d.number, d.title)
				if err := a.runDay(cmd, d); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) runDay(cmd *cobra.Command, d day) error {
	text, err := a.readInput(d.number)
	if err != nil {
		return err
	}

	part1, part2, err := d.solve(a, text)
	if err != nil {
		return fmt.Errorf("day %d: %w", d.number, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Solution 1: %d\nSolution 2: %d\n", part1, part2)
	a.logger.Info("day solved", zap.Int("day", d.number), zap.Int("part1", part1), zap.Int("part2", part2))

	book, err := a.loadAnswers()
	if err != nil {
		return err
	}
	if err := book.Check(d.number, part1, part2); err != nil {
		a.logger.Error("answer mismatch", zap.Error(err))
		return err
	}
	return nil
}

func (a *app) readInput(day int) (string, error) {
	if a.inputPath != "" {
		return input.NewDirLoader(filepath.Dir(a.inputPath), a.logger).Read(filepath.Base(a.inputPath))
	}
	return input.NewDirLoader(a.cfg.InputDir, a.logger).Read(input.DayFile(day))
}

func (a *app) loadAnswers() (answers.Book, error) {
	if a.cfg.AnswersFile == "" {
		return answers.Book{}, nil
	}
	return answers.Load(osfs.New(filepath.Dir(a.cfg.AnswersFile)), filepath.Base(a.cfg.AnswersFile))
}
