package cmdutil

import (
	"context"

	"fastx/internal/fileio"
	"fastx/internal/pipeline"
)

// RunStream runs the scanning pipeline, converts each merged subject with
// visit, and streams the results via send. It returns the number of sent
// outputs, the source warnings and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	src pipeline.Source,
	sc pipeline.Scanner,
	visit func(pipeline.Result) ([]T, error),
	send func(T) error,
) (int, []fileio.Warning, error) {
	total := 0
	warns, err := pipeline.Run(ctx, cfg, src, sc, func(r pipeline.Result) error {
		outs, vErr := visit(r)
		if vErr != nil {
			return vErr
		}
		for _, out := range outs {
			if err := send(out); err != nil {
				return err
			}
			total++
		}
		return nil
	})
	return total, warns, err
}
