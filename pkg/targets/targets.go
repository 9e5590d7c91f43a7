// Package targets turns configured targets into scanner rules.
//
// Each target becomes one rule, registered in configuration order. The
// rule's handler reports the matched entry and then tells the scanner to
// prune, descend or continue according to the target's action.
package targets

import (
	"github.com/arthur-debert/sweep/pkg/config"
	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/arthur-debert/sweep/pkg/output"
	"github.com/arthur-debert/sweep/pkg/scanner"
)

// Reporter receives matches from concurrent scan branches
type Reporter interface {
	Report(m output.Match) error
}

// Register adds one rule per target to s
func Register(s *scanner.Scanner, targets []config.Target, sink Reporter) error {
	logger := logging.GetLogger("targets")

	for i, t := range targets {
		kind, err := scanner.ParseKind(t.Kind)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "target %d is invalid", i).
				WithDetail("index", i)
		}
		outcome, err := Outcome(t.Action)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "target %d is invalid", i).
				WithDetail("index", i)
		}

		if err := s.Register(kind, t.Pattern, handler(t.Pattern, outcome, sink)); err != nil {
			return err
		}
		logger.Debug().
			Str("kind", kind.String()).
			Str("pattern", t.Pattern).
			Str("action", outcome.Control.String()).
			Msg("Target registered")
	}
	return nil
}

// Outcome maps an action name to the scanner outcome it produces. An empty
// action prunes.
func Outcome(action string) (scanner.Outcome, error) {
	switch action {
	case config.ActionPrune, "":
		return scanner.Prune(), nil
	case config.ActionDescend:
		return scanner.Descend(), nil
	case config.ActionContinue:
		return scanner.Continue(), nil
	}
	return scanner.Outcome{}, errors.Newf(errors.ErrInvalidInput, "unknown action %q", action).
		WithDetail("action", action)
}

func handler(pattern string, outcome scanner.Outcome, sink Reporter) scanner.Handler {
	return func(info scanner.Info) (scanner.Outcome, error) {
		err := sink.Report(output.Match{
			Path:    info.Path,
			Kind:    info.Kind().String(),
			Pattern: pattern,
		})
		if err != nil {
			return scanner.Outcome{}, err
		}
		return outcome, nil
	}
}
