package validation

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"gymcli/pkg/contracts/domain"
)

// RecordValidator checks assembled result records for structural problems
// before they reach the export stage. Failures are advisory, callers decide
// whether to drop or keep a flagged record.
type RecordValidator struct {
	validator *validator.Validate
	logger    *slog.Logger
}

// NewRecordValidator creates a validator with the custom rules registered.
func NewRecordValidator(logger *slog.Logger) *RecordValidator {
	if logger == nil {
		logger = slog.Default()
	}

	v := validator.New()

	// Register custom validators
	v.RegisterValidation("noc", isValidNOC)
	v.RegisterValidation("athlete_name", isValidAthleteName)

	return &RecordValidator{
		validator: v,
		logger:    logger.With(slog.String("component", "record_validator")),
	}
}

// ValidateRecord validates a single record and returns a descriptive error
// listing every failed field.
func (rv *RecordValidator) ValidateRecord(rec domain.Record) error {
	if err := rv.validator.Struct(rec); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("record validation: %w", err)
		}

		var parts []string
		for _, fe := range verrs {
			parts = append(parts, rv.formatFieldError(fe))
		}
		return fmt.Errorf("record %q (bib %d): %s", rec.Name, rec.Bib, strings.Join(parts, "; "))
	}
	return nil
}

// FilterValid returns the records that pass validation, logging each rejected
// one at warn level. The relative order of kept records is preserved.
func (rv *RecordValidator) FilterValid(records []domain.Record) []domain.Record {
	if len(records) == 0 {
		return records
	}

	valid := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		if err := rv.ValidateRecord(rec); err != nil {
			rv.logger.Warn("Dropping invalid record",
				slog.String("name", rec.Name),
				slog.Int("bib", rec.Bib),
				slog.String("error", err.Error()))
			continue
		}
		valid = append(valid, rec)
	}

	rv.logger.Debug("Records validated",
		slog.Int("input", len(records)),
		slog.Int("kept", len(valid)))
	return valid
}

func (rv *RecordValidator) formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "noc":
		return fmt.Sprintf("%s must be a three letter country code", fe.Field())
	case "athlete_name":
		return fmt.Sprintf("%s is not a plausible athlete name", fe.Field())
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// isValidNOC validates a National Olympic Committee code: exactly three
// uppercase ASCII letters.
func isValidNOC(fl validator.FieldLevel) bool {
	noc := fl.Field().String()
	if len(noc) != 3 {
		return false
	}
	for _, ch := range noc {
		if ch < 'A' || ch > 'Z' {
			return false
		}
	}
	return true
}

// isValidAthleteName rejects empty names and names that are plainly numeric
// noise from a misaligned table row.
func isValidAthleteName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" || len(name) > 120 {
		return false
	}
	hasLetter := false
	for _, ch := range name {
		if (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') {
			hasLetter = true
			break
		}
	}
	return hasLetter
}
