package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// toggle is an auto|on|off switch used by --color and --ui.
type toggle string

const (
	toggleAuto toggle = "auto"
	toggleOn   toggle = "on"
	toggleOff  toggle = "off"
)

func readToggle(name, value string) (toggle, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return toggleAuto, nil
	case "on":
		return toggleOn, nil
	case "off":
		return toggleOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", name, value)
	}
}

// enabledFor resolves auto against w: only real terminals qualify.
func (t toggle) enabledFor(w io.Writer) bool {
	switch t {
	case toggleOn:
		return true
	case toggleOff:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
