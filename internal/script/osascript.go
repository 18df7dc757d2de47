package script

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// OsascriptBinary is the name of the macOS script execution binary.
const OsascriptBinary = "osascript"

// Quote escapes a string for embedding inside a double-quoted AppleScript
// string literal. Backslashes are doubled first so that the quote escaping
// cannot be re-escaped.
func Quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// RunAppleScript executes the given AppleScript source through osascript
// and waits for it to complete. Script output is discarded.
func RunAppleScript(ctx context.Context, r Runner, source string) error {
	bin, err := r.LookPath(OsascriptBinary)
	if err != nil {
		return fmt.Errorf("osascript not available: %w", err)
	}

	cmd := r.CommandContext(ctx, bin, "-e", source)
	cmd.SetStdout(io.Discard)
	cmd.SetStderr(io.Discard)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("osascript failed: %w", err)
	}
	return nil
}
