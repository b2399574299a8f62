package errors

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// Category groups related error codes.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
	CategoryServer Category = "server"
)

// Location points into a file, usually a config file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as file:line[:column].
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// HxError is a coded error with an explanation and a hint for the user.
type HxError struct {
	// Code is the registered identifier, e.g. "E100".
	Code string

	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation.
	Detail string

	// Location is where in a file the error was found, if anywhere.
	Location *Location

	// Context holds the file lines around Location, starting at line
	// ContextStart.
	Context      []string
	ContextStart int

	// Suggestion tells the user how to fix it.
	Suggestion string

	// Example shows a correct input.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *HxError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *HxError) Unwrap() error {
	return e.Wrapped
}

// WithLocation records a file position and reads the lines around it.
func (e *HxError) WithLocation(file string, line, column int) *HxError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context, e.ContextStart = readContextLines(file, line, 5)
	return e
}

// yamlLine matches the "line N:" prefix yaml.v3 puts in its messages.
var yamlLine = regexp.MustCompile(`line (\d+)`)

// WithLocationFromError takes the line number out of a parser error such as
// "yaml: line 3: mapping values are not allowed in this context".
func (e *HxError) WithLocationFromError(file string, err error) *HxError {
	if err == nil {
		return e
	}
	m := yamlLine.FindStringSubmatch(err.Error())
	if m == nil {
		return e
	}
	line, convErr := strconv.Atoi(m[1])
	if convErr != nil || line <= 0 {
		return e
	}
	return e.WithLocation(file, line, 0)
}

// WithSuggestion adds a fix suggestion to the error.
func (e *HxError) WithSuggestion(s string) *HxError {
	e.Suggestion = s
	return e
}

// WithExample adds an example of correct input.
func (e *HxError) WithExample(ex string) *HxError {
	e.Example = ex
	return e
}

// WithDetail replaces the registered explanation.
func (e *HxError) WithDetail(d string) *HxError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *HxError) Wrap(err error) *HxError {
	e.Wrapped = err
	return e
}

// readContextLines reads the lines around targetLine from a file and returns
// them with the number of the first one.
func readContextLines(filename string, targetLine, contextSize int) ([]string, int) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	if startLine < 1 {
		startLine = 1
	}
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines, startLine
}

// New creates an HxError from a registered code.
func New(code string) *HxError {
	template, ok := GetTemplate(code)
	if !ok {
		return &HxError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &HxError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates an uncoded HxError with a formatted message.
func Newf(category Category, format string, args ...any) *HxError {
	return &HxError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError returns err if it already is an *HxError, and otherwise wraps it
// under code.
func FromError(err error, code string) *HxError {
	if err == nil {
		return nil
	}
	if he, ok := err.(*HxError); ok {
		return he
	}
	return New(code).Wrap(err)
}
