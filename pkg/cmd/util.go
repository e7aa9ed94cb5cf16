package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-latfield/pkg/sexp"
	"github.com/consensys/go-latfield/pkg/util/field"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint64 gets an expected 64bit unsigned integer, or panic if an error
// arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// FieldAgnosticCmd represents a command to be executed for a given field.
type FieldAgnosticCmd struct {
	Field    field.Config
	Function func(*cobra.Command, []string) error
}

// Run a field agnostic top-level command, dispatching on the field selected by
// the "field" flag.
func runFieldAgnosticCmd(cmd *cobra.Command, args []string, cmds []FieldAgnosticCmd) error {
	var (
		fieldName = GetString(cmd, "field")
		// Field configuration
		config = field.GetConfig(fieldName)
	)
	// Sanity check
	if config == nil {
		return fmt.Errorf("unknown field \"%s\"", fieldName)
	}
	// Find command to dispatch
	for _, c := range cmds {
		if c.Field == *config {
			return c.Function(cmd, args)
		}
	}
	//
	return fmt.Errorf("field %s unsupported for command '%s'", fieldName, cmd.Name())
}

// Report an error arising from a command.  Syntax errors are highlighted
// against the text which caused them.
func reportError(cmd *cobra.Command, err error) {
	var serr *sexp.SyntaxError
	//
	if errors.As(err, &serr) {
		printSyntaxError(cmd.ErrOrStderr(), serr)
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *sexp.SyntaxError) {
	var (
		srcfile = err.SourceFile()
		span    = err.Span()
		srcmap  = sexp.NewSourceMap[sexp.SExp](srcfile.Contents())
		line    = srcmap.FindFirstEnclosingLine(span)
	)
	// Print error + line number
	fmt.Fprintf(out, "%s:%d: %s\n", srcfile.Filename(), line.Number(), err.Message())
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", span.Start()-line.Start()))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", max(1, span.Length())))
}
