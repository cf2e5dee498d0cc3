package formatter

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// sqlDialectLexers maps the dialect allow-list onto chroma lexer names.
// Unrecognized dialect tags fall back to the generic sql entry.
var sqlDialectLexers = map[string]string{
	"sql":        "sql",
	"mysql":      "mysql",
	"postgresql": "postgresql",
	"plsql":      "plpgsql",
	"tsql":       "tsql",
	"spark":      "sql",
	"mariadb":    "mysql",
	"redshift":   "postgresql",
}

// clauseKeywords start a new line at statement indent
var clauseKeywords = map[string]bool{
	"FROM": true, "WHERE": true, "GROUP": true, "ORDER": true,
	"HAVING": true, "LIMIT": true, "OFFSET": true, "UNION": true,
	"EXCEPT": true, "INTERSECT": true, "VALUES": true, "SET": true,
	"JOIN": true, "LEFT": true, "RIGHT": true, "INNER": true,
	"OUTER": true, "FULL": true, "CROSS": true, "RETURNING": true,
}

// joinModifiers preceding JOIN keep the clause on one line
var joinModifiers = map[string]bool{
	"LEFT": true, "RIGHT": true, "INNER": true, "OUTER": true,
	"FULL": true, "CROSS": true, "NATURAL": true,
}

// conditionKeywords start a new line one indent step in
var conditionKeywords = map[string]bool{
	"AND": true, "OR": true,
}

// formatSQL tokenizes through the dialect-aware chroma lexer, uppercases
// keyword tokens, and lays the statement out clause per line with 2-space
// indented conditions and a blank line between statements. The tokenizing is
// fully delegated; this function only assembles the token stream.
func (d *Dispatcher) formatSQL(code string, opts Options) (string, error) {
	lexer := lexers.Get(d.sqlLexerName(opts.SQLDialect))
	if lexer == nil {
		return "", ErrFormatterUnavailable
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", NewInvalidSyntaxError(LanguageSQL, err.Error())
	}

	return d.layoutSQL(iterator.Tokens()), nil
}

// sqlLexerName resolves a dialect tag through the allow-list
func (d *Dispatcher) sqlLexerName(dialect string) string {
	tag := strings.ToLower(strings.TrimSpace(dialect))
	if name, ok := sqlDialectLexers[tag]; ok {
		return name
	}
	d.logger.Debug().Str("dialect", dialect).Msg("Unrecognized SQL dialect, using generic sql")
	return "sql"
}

// layoutSQL assembles tokens into formatted statements
func (d *Dispatcher) layoutSQL(tokens []chroma.Token) string {
	indent := strings.Repeat(" ", d.config.IndentSize)

	var sb strings.Builder
	atLineStart := true
	atStatementStart := true
	prevWord := ""

	newline := func(prefix string) {
		sb.WriteString("\n" + prefix)
		atLineStart = true
	}

	for _, tok := range tokens {
		value := strings.TrimSpace(tok.Value)
		if value == "" {
			continue
		}

		if tok.Type.InCategory(chroma.Keyword) || tok.Type == chroma.OperatorWord {
			value = strings.ToUpper(value)
		}

		switch {
		case tok.Type.InCategory(chroma.Comment):
			if !atLineStart {
				newline("")
			}
			sb.WriteString(strings.TrimSpace(tok.Value))
			newline("")
			continue
		case value == ";":
			sb.WriteString(";")
			// blank-line separator between statements
			sb.WriteString("\n\n")
			atLineStart = true
			atStatementStart = true
			prevWord = ""
			continue
		case clauseKeywords[value] && !atStatementStart && !atLineStart && !joinModifiers[prevWord]:
			newline("")
		case conditionKeywords[value] && !atStatementStart && !atLineStart:
			newline(indent)
		}

		if !atLineStart && needsSpaceBefore(value, prevWord) {
			sb.WriteString(" ")
		}
		sb.WriteString(value)

		atLineStart = false
		atStatementStart = false
		prevWord = value
	}

	out := strings.TrimRight(sb.String(), " \n\t")
	if out == "" {
		return out
	}
	return out + "\n"
}

// needsSpaceBefore suppresses spacing around tight punctuation
func needsSpaceBefore(value, prevWord string) bool {
	switch value {
	case ",", ";", ")", ".":
		return false
	}
	switch prevWord {
	case "(", ".":
		return false
	}
	return prevWord != ""
}
