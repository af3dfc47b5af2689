package steps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/taistep/consoles"
	"github.com/reusee/taistep/logs"
	"github.com/reusee/taistep/renders"
	"github.com/reusee/taistep/segments"
)

const quitInput = "q"

// Run steps through filename: documentation segments are rendered, code
// segments are evaluated against one persistent console, in stream order.
// In interactive mode the driver blocks for a line of input between
// snippets; the quit input ends the run cleanly. The returned console
// holds the final namespace.
type Run func(ctx context.Context, filename string) (*consoles.Console, error)

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	newConsole consoles.NewConsole,
	renderer *renders.Renderer,
	readLine ReadLine,
	interactive Interactive,
	target Target,
) Run {
	return func(ctx context.Context, filename string) (*consoles.Console, error) {
		ctx, _ = newSpan(ctx, "")

		content, err := os.ReadFile(filename)
		if err != nil {
			return nil, logs.WrapSpan(ctx, fmt.Errorf("read %s: %w", filename, err))
		}

		console := newConsole(filename)
		ff := NewFastForward(target)

		logger.InfoContext(ctx, "run start",
			"file", filename,
			"interactive", bool(interactive),
			"fast_forward", string(target),
		)

		for segment := range segments.Split(string(content)) {
			// captured once per segment, before OnDocumentation
			forwarding := ff.Forwarding()

			switch segment.Kind {

			case segments.KindDocumentation:
				renderer.Doc(segment.Text)
				if interactive {
					ff.OnDocumentation(segment.Text)
				}

			case segments.KindCode:
				if !segments.IsExecutable(segment.Text) {
					renderer.Notice("Code not executed")
					break
				}
				suppress := forwarding || !bool(interactive)
				if err := console.Exec(segment.Text, suppress); err != nil {
					renderer.EvalError(err)
					logger.ErrorContext(ctx, "snippet failed",
						"error", err,
					)
				}
			}

			ff.Advance()

			renderer.Separator()

			if !bool(interactive) || forwarding {
				continue
			}

			input, err := readLine()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return console, nil
				}
				return console, err
			}
			if input == quitInput {
				logger.InfoContext(ctx, "quit",
					"file", filename,
				)
				return console, nil
			}
		}

		return console, nil
	}
}
