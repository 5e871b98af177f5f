package convert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/CantaraProject/cantara-songlib/importer"
	"github.com/CantaraProject/cantara-songlib/state"
)

// RunImport parses a single song file and dumps the resulting song document
// as JSON, to stdout or to the optional second argument.
func RunImport(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("import")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}

	log.Info("Import starting", zap.String("source", src))
	defer func(start time.Time) {
		log.Info("Import completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	song, err := importer.ImportSongFromFile(src)
	if err != nil {
		return fmt.Errorf("unable to import song (%s): %w", src, err)
	}

	data, err := json.MarshalIndent(song, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal song: %w", err)
	}
	data = append(data, '\n')

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write song document: %w", err)
	}
	log.Info("Song document written", zap.String("to", dst), zap.String("title", song.Title))
	return nil
}
