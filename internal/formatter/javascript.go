package formatter

import (
	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
	"github.com/ditashi/jsbeautifier-go/jsbeautifier"
)

// formatJavaScript delegates to the jsbeautifier port with the fixed style
// options: 2-space indent, at most 2 preserved blank lines, trailing newline.
func (d *Dispatcher) formatJavaScript(code string, _ Options) (string, error) {
	opts := jsbeautifier.DefaultOptions()
	opts["indent_size"] = d.config.IndentSize
	opts["indent_char"] = " "
	opts["preserve_newlines"] = true
	opts["max_preserve_newlines"] = d.config.MaxPreserveNewlines

	formatted, err := beautify(&code, opts)
	if err != nil {
		return "", errorwrapper.WrapError(err, "javascript beautifier rejected input")
	}

	return ensureTrailingNewline(formatted), nil
}

// beautify isolates the jsbeautifier call so a panic inside the port (it is a
// direct translation of the Python original and panics on some malformed
// inputs) degrades into an error instead of taking the process down.
func beautify(code *string, opts map[string]interface{}) (formatted string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorwrapper.NewError("beautifier panic: %v", r)
		}
	}()
	return jsbeautifier.Beautify(code, opts)
}
