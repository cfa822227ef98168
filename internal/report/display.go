package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// Show opens path in the platform image viewer and blocks until a line is
// read from in (the user dismissing the report) or ctx is cancelled.
func Show(ctx context.Context, path string, in io.Reader, out io.Writer) error {
	name, args := viewerCommand(path)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return &RenderError{Op: "display", Err: err}
	}
	// The opener usually hands off to the viewer and exits straight away.
	go cmd.Wait()

	fmt.Fprintf(out, "Report opened (%s). Press Enter to exit.\n", path)

	done := make(chan struct{})
	go func() {
		bufio.NewReader(in).ReadString('\n')
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
	return nil
}

func viewerCommand(path string) (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}
