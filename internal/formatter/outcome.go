package formatter

// FormatStatus tags the result of a best-effort formatting attempt.
type FormatStatus int

const (
	// StatusFormatted means the capability produced formatted text
	StatusFormatted FormatStatus = iota
	// StatusUnchanged means formatting failed and the original text is kept
	StatusUnchanged
)

// String returns string representation of FormatStatus
func (fs FormatStatus) String() string {
	switch fs {
	case StatusFormatted:
		return "formatted"
	case StatusUnchanged:
		return "unchanged"
	default:
		return "unchanged"
	}
}

// FormatOutcome is the result of a best-effort formatting attempt: either the
// formatted text, or the untouched original when the capability rejected it.
// The failure itself is swallowed so a comparison can still proceed on raw input.
type FormatOutcome struct {
	Status FormatStatus
	Text   string
}

// BestEffortFormat attempts to format and recovers locally from any failure,
// returning the original text as unchanged. Failures are logged at debug level
// only; they are not user-visible errors.
func (d *Dispatcher) BestEffortFormat(code string, language Language, opts Options) FormatOutcome {
	formatted, err := d.Format(code, language, opts)
	if err != nil {
		d.logger.Debug().
			Err(err).
			Str("language", language.String()).
			Msg("Formatting failed, keeping original text")
		return FormatOutcome{Status: StatusUnchanged, Text: code}
	}
	return FormatOutcome{Status: StatusFormatted, Text: formatted}
}
