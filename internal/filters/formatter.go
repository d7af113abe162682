package filters

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"docstyle/internal/config"
)

// Formatter applies its filters in order, each one to the previous one's output.
// A Formatter is itself a Filter.
type Formatter struct {
	filters []Filter
	logger  *zap.Logger
}

type Option func(*Formatter)

// WithLogger reports at debug level every filter that changed the docstring.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

func NewFormatter(filters []Filter, opts ...Option) *Formatter {
	f := &Formatter{
		filters: slices.Clone(filters),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Formatter) Format(lines []string) []string {
	out := clone(lines)
	debug := f.logger.Core().Enabled(zap.DebugLevel)

	for _, flt := range f.filters {
		next := flt.Format(out)
		if debug && !slices.Equal(out, next) {
			f.logger.Debug("filter rewrote docstring",
				zap.String("filter", filterName(flt)),
				zap.Int("lines_before", len(out)),
				zap.Int("lines_after", len(next)),
			)
		}
		out = next
	}
	return out
}

// Filters returns a copy of the pipeline.
func (f *Formatter) Filters() []Filter {
	return slices.Clone(f.filters)
}

func filterName(flt Filter) string {
	return fmt.Sprintf("%T", flt)
}

// Standard returns the house-style pipeline. Separators are normalized before
// indentation is fixed up, wrapping happens before continuation lines are
// re-indented, and capitalization runs last. LineWrapping leaves field
// continuation pieces two columns short of the limit to make room for that
// re-indentation.
func Standard(cfg *config.Config, opts ...Option) *Formatter {
	return NewFormatter([]Filter{
		EmptyLineBetweenDescriptionAndParams{},
		RemoveUnwantedPrefixes{},
		NoRepeatedWhitespaces{},
		EnsureColonInParamDescription{},
		NewThirdPersonConverter(cfg.ThirdPerson.BlockingWords, cfg.ThirdPerson.Modals, cfg.ThirdPerson.Verbs),
		DoubleDotFilter{},
		NewLineWrapping(cfg.Wrapping.MaxLength),
		IndentMultilineParamDescription{},
		EndOfSentencePunctuation{},
		SentenceCapitalization{},
	}, opts...)
}
