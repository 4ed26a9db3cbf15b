package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/lindenb1/impress/internal/locale"
	"github.com/lindenb1/impress/internal/members"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// renderView prints the rows of view that fall in [offset, offset+window).
// It returns the number of rows printed.
func renderView(w io.Writer, p *message.Printer, view members.View, offset, window int) int {
	switch view.Status {
	case members.StatusError:
		fmt.Fprintf(w, "! %s\n", p.Sprintf("Something went wrong"))
		for _, cause := range view.Causes {
			fmt.Fprintf(w, "  - %s\n", cause)
		}
		return 0
	case members.StatusLoading:
		fmt.Fprintln(w, p.Sprintf("Loading..."))
		return 0
	}

	fmt.Fprintf(w, "== %s ==\n", p.Sprintf("List members card"))
	if len(view.Rows) == 0 {
		fmt.Fprintln(w, p.Sprintf("No members"))
		return 0
	}

	start, end := visibleRange(len(view.Rows), offset, window)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range view.Rows[start:end] {
		marker := " "
		if row.Shade == members.ShadeOdd {
			marker = "·"
		}
		user := row.Access.User
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", marker, user.FullName, user.Email, row.Access.Role)
	}
	_ = tw.Flush()

	if view.FetchingMore {
		fmt.Fprintln(w, p.Sprintf("Loading..."))
	}

	return end - start
}

func visibleRange(total, offset, window int) (int, int) {
	if window < 1 {
		window = 1
	}
	start := min(max(offset, 0), total)
	end := min(start+window, total)
	return start, end
}

func renderLanguages(w io.Writer, p *message.Printer, options []locale.Option) {
	fmt.Fprintf(w, "%s:\n", p.Sprintf("Language"))
	for _, opt := range options {
		mark := " "
		if opt.Active {
			mark = "*"
		}
		fmt.Fprintf(w, " %s %-8s %s\n", mark, opt.Value, opt.Label)
	}
}

// renderLanguageChange prints the language a change switched to, in that
// language.
func renderLanguageChange(w io.Writer, tag language.Tag) {
	p := message.NewPrinter(tag)
	fmt.Fprintf(w, "%s: %s\n", p.Sprintf("Language"), locale.Label(tag.String()))
}

type command struct {
	name string
	arg  string
}

func parseCommand(line string) command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{name: "next"}
	}
	cmd := command{name: strings.ToLower(fields[0])}
	if len(fields) > 1 {
		cmd.arg = fields[1]
	}
	return cmd
}
