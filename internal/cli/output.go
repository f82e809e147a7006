package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/calebcase/binfloat"
	"github.com/calebcase/binfloat/codec"
	"github.com/calebcase/binfloat/layout"
	"github.com/calebcase/binfloat/special"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Conversion failure (malformed input, value out of range)
	ExitCommandError = 2 // Command error (unknown layout, bad layouts file, bad flags)
)

// Error codes reported in CLI responses.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeUnknownLayout = "E002" // Layout name not registered
	ErrCodeMalformed     = "E003" // Malformed numeral or bit string
	ErrCodeRange         = "E004" // Value outside the representable range
	ErrCodeLayouts       = "E005" // Invalid layout or layouts file
	ErrCodeKind          = "E006" // Unknown special value kind
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classify maps an error to its response code and exit code.
func classify(err error) (code string, exit int) {
	switch {
	case errors.Is(err, binfloat.ErrUnknownLayout):
		return ErrCodeUnknownLayout, ExitCommandError
	case errors.Is(err, layout.ErrInvalid), layout.Error.Has(err):
		return ErrCodeLayouts, ExitCommandError
	case errors.Is(err, codec.ErrMalformed):
		return ErrCodeMalformed, ExitFailure
	case errors.Is(err, codec.ErrRange):
		return ErrCodeRange, ExitFailure
	case special.Error.Has(err):
		return ErrCodeKind, ExitCommandError
	}

	return ErrCodeGeneric, ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for text errors (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format. Text output
// prints data with fmt, so results implement fmt.Stringer.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format. JSON errors go to Writer
// like every other response; text errors go to the error writer.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	w := f.GetErrWriter()
	fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(w, "Details: %v\n", details)
	}
	return nil
}

// GetErrWriter returns the writer for text error output: ErrWriter if set,
// otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// Fail reports err for the given input and returns the ExitError the command
// should return.
func (f *OutputFormatter) Fail(input string, err error) error {
	code, exit := classify(err)

	var details any
	if input != "" {
		details = map[string]string{"input": input}
	}

	outErr := f.Error(code, err.Error(), details)
	if outErr != nil {
		return outErr
	}

	return WrapExitError(exit, code, err)
}
