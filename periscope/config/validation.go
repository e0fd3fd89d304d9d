package config

import (
	"fmt"
	"strings"

	"github.com/jdginn/go-periscope/periscope"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateInRange(field string, value float64, r periscope.Range) []ValidationError {
	if !r.Contains(value) {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", r.Min, r.Max),
		}}
	}
	return nil
}

func validateLess(field string, low, high float64, lowName, highName string) []ValidationError {
	if low >= high {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("%s must be less than %s", lowName, highName),
		}}
	}
	return nil
}

// The top and bottom mirrors are named by their role and share mirrors.length
func validateFixedMirror(field string, m Mirror) []ValidationError {
	var errors []ValidationError
	if m.Name != "" {
		errors = append(errors, ValidationError{
			Field:   field + ".name",
			Message: "not supported, the mirror is named by its position",
		})
	}
	if m.Length != 0 {
		errors = append(errors, ValidationError{
			Field:   field + ".length",
			Message: "not supported, set mirrors.length instead",
		})
	}
	return errors
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups validation errors by config section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	// Group errors by category, keeping the order categories first appear in
	var order []string
	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, seen := categories[category]; !seen {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}

	for _, category := range order {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			// Remove category prefix from field for cleaner display
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *PeriscopeConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Tube.Validate()...)
	errors = append(errors, c.Mirrors.Validate(c.Flags)...)
	errors = append(errors, c.Ray.Validate(c.Flags)...)
	errors = append(errors, c.Render.Validate()...)
	return errors
}

func (t *Tube) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateLess("tube.left", t.Left, t.Right, "left", "right")...)
	errors = append(errors, validateLess("tube.bottom", t.Bottom, t.Top, "bottom", "top")...)
	return errors
}

func (m *Mirrors) Validate(flags Flags) []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("mirrors.length", m.Length)...)
	if !flags.SkipRangeCheck {
		errors = append(errors, validateInRange("mirrors.top.angle_deg", m.Top.AngleDeg, periscope.TopAngleRange)...)
		errors = append(errors, validateInRange("mirrors.bottom.angle_deg", m.Bottom.AngleDeg, periscope.BottomAngleRange)...)
	}
	errors = append(errors, validateFixedMirror("mirrors.top", m.Top)...)
	errors = append(errors, validateFixedMirror("mirrors.bottom", m.Bottom)...)

	names := map[string]bool{"top": true, "bottom": true}
	for i, extra := range m.Extra.Inline {
		field := fmt.Sprintf("mirrors.extra.inline.%d", i)
		if extra.Name != "" {
			if names[extra.Name] {
				errors = append(errors, ValidationError{
					Field:   field + ".name",
					Message: fmt.Sprintf("duplicate mirror name '%s'", extra.Name),
				})
			}
			names[extra.Name] = true
		}
		if extra.Length < 0 {
			errors = append(errors, ValidationError{
				Field:   field + ".length",
				Message: "must be positive when set",
			})
		}
	}

	return errors
}

func (r *Ray) Validate(flags Flags) []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("ray.escape_distance", r.EscapeDistance)...)
	if !flags.SkipRangeCheck {
		errors = append(errors, validateInRange("ray.entry_height", r.EntryHeight, periscope.EntryHeightRange)...)
	}

	return errors
}

func (r *Render) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("render.width", float64(r.Width))...)
	errors = append(errors, validatePositive("render.height", float64(r.Height))...)
	errors = append(errors, validateLess("render.viewport", r.Viewport[0], r.Viewport[1], "xmin", "xmax")...)
	errors = append(errors, validateLess("render.viewport", r.Viewport[2], r.Viewport[3], "ymin", "ymax")...)

	return errors
}
