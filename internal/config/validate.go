package config

import (
	"fmt"

	"github.com/heartmarshall/songdeck/internal/domain"
)

// Validate performs business-rule validation on the loaded
// configuration, collecting every field failure into one
// *domain.ValidationError. Load calls it automatically.
func (c *Config) Validate() error {
	var errs []domain.FieldError

	if c.Library.Path == "" {
		errs = append(errs, domain.FieldError{Field: "library.path", Message: "required"})
	}
	if c.Cache.Path == "" {
		errs = append(errs, domain.FieldError{Field: "cache.path", Message: "required"})
	}
	if c.Output.Path == "" {
		errs = append(errs, domain.FieldError{Field: "output.path", Message: "required"})
	}

	if c.Matcher.MinScore <= 0 || c.Matcher.MinScore > 1 {
		errs = append(errs, domain.FieldError{
			Field:   "matcher.min_score",
			Message: fmt.Sprintf("must be in (0, 1] (got %v)", c.Matcher.MinScore),
		})
	}
	if c.Matcher.MaxCandidates < 1 {
		errs = append(errs, domain.FieldError{
			Field:   "matcher.max_candidates",
			Message: fmt.Sprintf("must be >= 1 (got %d)", c.Matcher.MaxCandidates),
		})
	}
	if c.Parser.MaxSectionLines < 1 {
		errs = append(errs, domain.FieldError{
			Field:   "parser.max_section_lines",
			Message: fmt.Sprintf("must be >= 1 (got %d)", c.Parser.MaxSectionLines),
		})
	}
	if c.Pipeline.ParseWorkers < 1 {
		errs = append(errs, domain.FieldError{
			Field:   "pipeline.parse_workers",
			Message: fmt.Sprintf("must be >= 1 (got %d)", c.Pipeline.ParseWorkers),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
