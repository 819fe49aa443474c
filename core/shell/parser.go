package shell

import (
	"fmt"
	"strings"
)

const (
	// DefaultMaxArgs mirrors the historical per-stage argument limit.
	DefaultMaxArgs = 64
	// DefaultMaxLineLen bounds one raw input line, in bytes.
	DefaultMaxLineLen = 1024
)

// Parser splits raw input lines into Commands. Tokens are separated by
// whitespace; there is no quoting, escaping or expansion, so an argument can
// never contain whitespace or an operator.
type Parser struct {
	// MaxArgs bounds each stage's argument vector. Exceeding it is a
	// reported error, never a silent truncation.
	MaxArgs int
	// MaxLineLen bounds the raw line, in bytes.
	MaxLineLen int
}

// NewParser returns a Parser with the historical limits.
func NewParser() *Parser {
	return &Parser{MaxArgs: DefaultMaxArgs, MaxLineLen: DefaultMaxLineLen}
}

// Parse tokenizes one raw line. Operators:
//
//	|   switch the active argument vector from stage 1 to stage 2
//	&   mark the whole line for background execution
//	<   consume the next token as the input redirection target
//	>   consume the next token as the output target, truncating
//	>>  consume the next token as the output target, appending
//
// An operator at the end of the line with no token following it is dropped.
// A second pipe is a redundant stage switch, not a third stage.
func (p *Parser) Parse(line string) (*Command, error) {
	if p.MaxLineLen > 0 && len(line) > p.MaxLineLen {
		return nil, fmt.Errorf("line too long: %d bytes, limit is %d", len(line), p.MaxLineLen)
	}

	cmd := &Command{}
	tokens := strings.Fields(line)
	second := false

	for i := 0; i < len(tokens); i++ {
		switch tok := tokens[i]; tok {
		case "|":
			cmd.HasPipe = true
			second = true
		case "&":
			cmd.Background = true
		case "<":
			if i+1 < len(tokens) {
				i++
				cmd.InputPath = tokens[i]
			}
		case ">", ">>":
			if i+1 < len(tokens) {
				i++
				cmd.OutputPath = tokens[i]
				cmd.Append = tok == ">>"
			}
		default:
			if err := p.appendArg(cmd, second, tok); err != nil {
				return nil, err
			}
		}
	}

	return cmd, nil
}

func (p *Parser) appendArg(cmd *Command, second bool, arg string) error {
	stage := &cmd.Stage1
	if second {
		stage = &cmd.Stage2
	}

	max := p.MaxArgs
	if max <= 0 {
		max = DefaultMaxArgs
	}
	if len(*stage) >= max {
		return fmt.Errorf("too many arguments: limit is %d per stage", max)
	}

	*stage = append(*stage, arg)
	return nil
}
