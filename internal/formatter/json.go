package formatter

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// errPrettyPrinterRejected switches the dispatcher onto the structural tier
var errPrettyPrinterRejected = errors.New("pretty printer rejected input")

// formatJSON applies the two-tier policy: the tidwall pretty-printer first,
// and on any failure there a structural parse plus canonical re-serialize.
// Only a structural parse failure surfaces as invalid syntax.
func (d *Dispatcher) formatJSON(code string, _ Options) (string, error) {
	if out, err := d.prettyPrintJSON(code); err == nil {
		return out, nil
	}

	return d.reserializeJSON(code)
}

// prettyPrintJSON is tier one: validate, then pretty-print preserving key order
func (d *Dispatcher) prettyPrintJSON(code string) (string, error) {
	if !gjson.Valid(code) {
		return "", errPrettyPrinterRejected
	}

	out := pretty.PrettyOptions([]byte(code), &pretty.Options{
		Width:  80,
		Indent: "  ",
	})
	return ensureTrailingNewline(string(out)), nil
}

// reserializeJSON is tier two: structural parse and canonical 2-space re-serialize
func (d *Dispatcher) reserializeJSON(code string) (string, error) {
	var value interface{}
	if err := json.Unmarshal([]byte(code), &value); err != nil {
		return "", NewInvalidSyntaxError(LanguageJSON, err.Error())
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", NewInvalidSyntaxError(LanguageJSON, err.Error())
	}

	return ensureTrailingNewline(string(out)), nil
}
