// Package browser hands a link to the desktop: the default web browser or
// the system clipboard.
package browser

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

var (
	errUnsupportedPlatform = errors.New("unsupported platform")
	errNoClipboardTool     = errors.New("no clipboard tool found (install wl-copy, xclip or xsel)")
)

type lookPathFunc func(file string) (string, error)

// Open opens url in the default browser.
func Open(url string) error {
	args, err := openCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}
	// #nosec G204 - the command is fixed per platform, url is a single argument
	if err := exec.Command(args[0], args[1:]...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// Copy writes text to the system clipboard.
func Copy(text string) error {
	args, err := copyCommand(runtime.GOOS, exec.LookPath)
	if err != nil {
		return err
	}
	// #nosec G204 - the command is chosen from a fixed list
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

func openCommand(goos, url string) ([]string, error) {
	switch goos {
	case "darwin":
		return []string{"open", url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return []string{"xdg-open", url}, nil
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", url}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedPlatform, goos)
	}
}

func copyCommand(goos string, lookPath lookPathFunc) ([]string, error) {
	switch goos {
	case "darwin":
		return []string{"pbcopy"}, nil
	case "windows":
		return []string{"clip"}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		candidates := [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
		for _, candidate := range candidates {
			if _, err := lookPath(candidate[0]); err == nil {
				return candidate, nil
			}
		}
		return nil, errNoClipboardTool
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedPlatform, goos)
	}
}
