package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/decipher3114/go-resl/evaluator"
	"github.com/decipher3114/go-resl/parser"
)

var (
	headlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Underline(true)
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	frameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	gutterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)
	expectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// renderError produces the diagnostic printed to stderr. Parse errors with
// an attached source get a framed excerpt with a caret under the offending
// column; everything else renders as a one-line headline.
func renderError(err error) string {
	var se *sourcedError
	if errors.As(err, &se) {
		return renderParseError(se.err)
	}
	var pe *parser.Error
	if errors.As(err, &pe) {
		return renderParseError(pe)
	}
	var ee *evaluator.Error
	if errors.As(err, &ee) {
		return headlineStyle.Render("Evaluation Error:") + " " + messageStyle.Render(ee.Error())
	}
	return headlineStyle.Render("Error:") + " " + messageStyle.Render(err.Error())
}

func renderParseError(pe *parser.Error) string {
	headline := "Syntax Error:"
	if pe.Kind == parser.LexError {
		headline = "Lexical Error:"
	}

	var b strings.Builder
	b.WriteString(headlineStyle.Render(headline))
	b.WriteString(" ")
	b.WriteString(messageStyle.Render(pe.Message))
	b.WriteString("\n")

	lineIndex := strconv.Itoa(pe.Line)
	gutter := strings.Repeat(" ", len(lineIndex)+1)

	location := "line " + lineIndex + ", column " + strconv.Itoa(pe.Column)
	b.WriteString(gutter)
	b.WriteString(frameStyle.Render("┌─["))
	b.WriteString(locationStyle.Render(location))
	b.WriteString(frameStyle.Render("]"))
	b.WriteString("\n")

	b.WriteString(gutter)
	b.WriteString(frameStyle.Render("│"))
	b.WriteString("\n")

	b.WriteString(" ")
	b.WriteString(gutterStyle.Render(lineIndex))
	b.WriteString(frameStyle.Render("│"))
	b.WriteString(pe.LineText)
	b.WriteString("\n")

	b.WriteString(gutter)
	b.WriteString(frameStyle.Render("│"))
	b.WriteString(strings.Repeat(" ", pe.Column-1))
	b.WriteString(frameStyle.Render("^"))
	b.WriteString("\n")

	if len(pe.Expected) > 0 {
		b.WriteString(gutter)
		b.WriteString(frameStyle.Render("└─["))
		b.WriteString(expectedStyle.Render("Expected " + joinOr(pe.Expected)))
		b.WriteString(frameStyle.Render("]"))
	}

	return strings.TrimRight(b.String(), "\n")
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
