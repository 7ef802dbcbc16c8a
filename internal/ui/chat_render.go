package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

const codeFence = "```"

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().GetCodeStyle())
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	// Lexers append a newline, which may sit inside a trailing color span.
	lines := strings.Split(buf.String(), "\n")
	for len(lines) > 1 && ansi.Strip(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	lines[len(lines)-1] += ansi.ResetStyle
	return strings.Join(lines, "\n")
}

// renderMessageBody wraps prose to width and highlights fenced code blocks.
// Code is never wrapped. An unclosed fence runs to the end of the message.
func renderMessageBody(body string, width int) string {
	var (
		out      []string
		prose    []string
		code     []string
		language string
		inCode   bool
	)

	flushProse := func() {
		if len(prose) > 0 {
			out = append(out, ChatMessageStyle.Render(wordwrap.String(strings.Join(prose, "\n"), width)))
			prose = nil
		}
	}
	flushCode := func() {
		highlighted := highlightCode(strings.Join(code, "\n"), language)
		var sb strings.Builder
		for i, line := range strings.Split(highlighted, "\n") {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(CodeGutterStyle.Render("│ "))
			sb.WriteString(line)
		}
		out = append(out, sb.String())
		code, language = nil, ""
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case !inCode && strings.HasPrefix(trimmed, codeFence):
			flushProse()
			inCode = true
			language = strings.TrimSpace(strings.TrimPrefix(trimmed, codeFence))
		case inCode && trimmed == codeFence:
			flushCode()
			inCode = false
		case inCode:
			code = append(code, line)
		default:
			prose = append(prose, line)
		}
	}
	if inCode {
		flushCode()
	}
	flushProse()

	return strings.Join(out, "\n")
}
