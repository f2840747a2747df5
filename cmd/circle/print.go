package main

import (
	"fmt"
	"io"
	"strings"
)

func printHeader(w io.Writer, title string, shown, total int) {
	fmt.Fprintf(w, "%s (%d of %d)\n\n", title, shown, total)
}

func printEmpty(w io.Writer, title, message string) {
	fmt.Fprintln(w, title)
	if message != "" {
		fmt.Fprintln(w, message)
	}
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " · ")
}
