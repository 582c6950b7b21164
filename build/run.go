// Package build implements tokencss commands: generating stylesheets from
// token documents and checking generated stylesheets.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tokencss/css"
	"tokencss/state"
)

// Run is the action of "build" command.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	dir := cmd.Args().Get(0)
	if len(dir) == 0 {
		if dir, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many project directories", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	if fi, err := os.Stat(dir); err != nil {
		return fmt.Errorf("project directory is not accessible: %w", err)
	} else if !fi.IsDir() {
		return fmt.Errorf("project directory is not a directory: %s", dir)
	}

	env.Overwrite, env.DryRun = cmd.Bool("overwrite"), cmd.Bool("dry-run")

	log.Info("Build starting", zap.String("project", dir), zap.Stringer("run_id", env.RunID), zap.Bool("dry_run", env.DryRun))
	defer func(start time.Time) {
		if err == nil {
			log.Info("Build completed", zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	return process(ctx, dir, log)
}

// Check is the action of "check" command.
func Check(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	if cmd.Args().Len() == 0 {
		return errors.New("no stylesheets to check have been specified")
	}

	sources := make([]css.Source, 0, cmd.Args().Len())
	for _, name := range cmd.Args().Slice() {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet: %w", err)
		}
		sources = append(sources, css.Source{Name: name, Data: data})
	}
	return checkSources(sources, log)
}

func checkSources(sources []css.Source, log *zap.Logger) error {
	res := css.NewParser(log).Check(sources)
	for _, p := range res.Problems {
		log.Warn("Problem found", zap.Stringer("problem", p))
	}
	log.Info("Stylesheets checked",
		zap.Int("files", len(sources)), zap.Int("properties", res.Declared), zap.Int("references", res.References), zap.Int("problems", len(res.Problems)))
	if len(res.Problems) > 0 {
		return fmt.Errorf("%d problem(s) found in stylesheets", len(res.Problems))
	}
	return nil
}
