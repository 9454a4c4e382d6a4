package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Output selects what happens to a committed path once the screen is gone.
type Output struct {
	Print      bool      // write the path to Stdout
	ResultFile string    // write the path to this file for a wrapping shell function
	Editor     string    // editor command overriding $VISUAL/$EDITOR
	Stdout     io.Writer // defaults to os.Stdout
}

// Deliver hands the committed path to the shell or an editor. Cancelled
// sessions deliver nothing. When neither Print nor ResultFile is set the file
// is opened in the detected editor.
func Deliver(res Result, out Output, log logrus.FieldLogger) error {
	if res.Cancelled || res.Target == "" {
		return nil
	}
	target := filepath.FromSlash(res.Target)

	if out.ResultFile != "" {
		// Owner-only: the path may reveal private directory names.
		if err := os.WriteFile(out.ResultFile, []byte(target), 0o600); err != nil {
			return fmt.Errorf("write result file: %w", err)
		}
		log.WithField("path", target).Debug("result file written")
	}
	if out.Print {
		stdout := out.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		if _, err := fmt.Fprintln(stdout, target); err != nil {
			return fmt.Errorf("print result: %w", err)
		}
	}
	if out.Print || out.ResultFile != "" {
		return nil
	}

	editorCmd, ok := detectEditorCommand(out.Editor)
	if !ok {
		return errors.New("no editor found: set $VISUAL, $EDITOR or editor in the config")
	}
	log.WithFields(logrus.Fields{"path": target, "editor": editorCmd[0]}).Info("opening editor")
	return openFileInEditor(editorArgsWithFile(editorCmd, target))
}

func editorArgsWithFile(editorCmd []string, filePath string) []string {
	args := make([]string, len(editorCmd)+1)
	copy(args, editorCmd)
	args[len(editorCmd)] = filePath
	return args
}

// openFileInEditor attaches the editor to the controlling terminal so it works
// even when stdout is captured by the caller.
func openFileInEditor(args []string) error {
	if len(args) == 0 {
		return errors.New("no editor configured")
	}

	cmd := commandBuilder(args[0], args[1:]...)
	if runtime.GOOS != "windows" {
		if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
			defer func() {
				_ = tty.Close()
			}()
			return runEditor(cmd, tty, tty, tty)
		}
	}
	return runEditor(cmd, os.Stdin, os.Stdout, os.Stderr)
}

func runEditor(cmd *exec.Cmd, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Path, err)
	}
	return nil
}
