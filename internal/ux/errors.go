package ux

import (
	stderrors "errors"
	"strings"

	"github.com/felixgeelhaar/coffman/internal/errors"
)

// RenderError formats err for the terminal. Coded errors show their code,
// cause, suggestions and documentation link.
func RenderError(err error, s Styles) string {
	if err == nil {
		return ""
	}

	var coded *errors.CoffmanError
	if !stderrors.As(err, &coded) {
		return s.Error.Render("Error: ") + err.Error()
	}

	var b strings.Builder
	b.WriteString(s.Error.Render("Error [" + string(coded.Code) + "]: "))
	b.WriteString(coded.Message)

	if coded.Cause != nil {
		b.WriteString("\n  ")
		b.WriteString(s.Muted.Render("Cause: "))
		b.WriteString(coded.Cause.Error())
	}

	if len(coded.Suggestions) > 0 {
		b.WriteString("\n\n")
		b.WriteString(s.Title.Render("Suggestions:"))
		for _, suggestion := range coded.Suggestions {
			b.WriteString("\n  • ")
			b.WriteString(suggestion)
		}
	}

	if coded.DocsURL != "" {
		b.WriteString("\n\n")
		b.WriteString(s.Muted.Render("Docs: "))
		b.WriteString(coded.DocsURL)
	}

	return b.String()
}
