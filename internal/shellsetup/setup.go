package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// ParentShellFunc reports the name or path of the shell that started rnav.
type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	Executable   string // path embedded in the snippet, defaults to os.Executable
}

// PrintSetup writes a shell function named rnav. The function runs the binary
// with a private result file and opens the picked path with the user's editor
// in the calling shell, so the editor inherits that shell's environment.
func PrintSetup(w io.Writer, shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := canonicalShellName(normalizeShellName(shellOverride))
	if shell == "" {
		shell = detectShell(parent)
	}

	exe := cfg.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			exe = "rnav"
		}
	}

	_, err := io.WriteString(w, Snippet(shell, exe))
	return err
}

// Snippet returns the function definition for shell. Unknown shells get the
// POSIX version.
func Snippet(shell, exe string) string {
	quoted := strconv.Quote(exe)

	switch shell {
	case "fish":
		return fmt.Sprintf(fishSnippet, quoted)
	case "pwsh":
		return fmt.Sprintf(pwshSnippet, quoted)
	default:
		return fmt.Sprintf(posixSnippet, quoted)
	}
}

const posixSnippet = `rnav() {
    rnav_result="${TMPDIR:-/tmp}/rnav_result_$$.txt"
    rm -f "$rnav_result"
    command %s --result-file "$rnav_result" "$@"
    rnav_status=$?
    if [ -f "$rnav_result" ] && [ ! -L "$rnav_result" ] && [ -O "$rnav_result" ]; then
        rnav_pick=$(cat "$rnav_result" 2>/dev/null)
        rm -f "$rnav_result"
        if [ -n "$rnav_pick" ]; then
            ${VISUAL:-${EDITOR:-vi}} "$rnav_pick"
            return $?
        fi
    fi
    rm -f "$rnav_result" 2>/dev/null
    return $rnav_status
}
`

const fishSnippet = `function rnav
    set -l tmp /tmp
    set -q TMPDIR; and set tmp $TMPDIR
    set -l rnav_result "$tmp/rnav_result_$fish_pid.txt"
    rm -f "$rnav_result"
    command %s --result-file "$rnav_result" $argv
    set -l rnav_status $status
    if test -f "$rnav_result" -a ! -L "$rnav_result" -a -O "$rnav_result"
        set -l rnav_pick (cat "$rnav_result" 2>/dev/null)
        rm -f "$rnav_result"
        if test -n "$rnav_pick"
            set -l editor vi
            set -q EDITOR; and set editor $EDITOR
            set -q VISUAL; and set editor $VISUAL
            eval $editor (string escape -- $rnav_pick)
            return $status
        end
    end
    rm -f "$rnav_result" 2>/dev/null
    return $rnav_status
end
`

const pwshSnippet = `function rnav {
    $resultFile = Join-Path ([System.IO.Path]::GetTempPath()) "rnav_result_$PID.txt"
    Remove-Item $resultFile -ErrorAction SilentlyContinue
    & %s --result-file $resultFile @args
    $code = $LASTEXITCODE
    try {
        if (Test-Path $resultFile -PathType Leaf) {
            $pick = (Get-Content $resultFile -Raw).Trim()
            if ($pick) {
                $editor = if ($env:VISUAL) { $env:VISUAL } elseif ($env:EDITOR) { $env:EDITOR } else { "notepad" }
                & $editor $pick
                return
            }
        }
    } finally {
        Remove-Item $resultFile -ErrorAction SilentlyContinue
    }
    $global:LASTEXITCODE = $code
}
`

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	candidates := []string{getenv("SHELL")}
	if parent != nil {
		candidates = append(candidates, parent())
	}
	for _, candidate := range candidates {
		shell := canonicalShellName(normalizeShellName(candidate))
		if _, ok := supportedShells[shell]; ok {
			return shell
		}
	}

	// cmd.exe cannot define functions; PowerShell ships with every Windows.
	if strings.EqualFold(goos, "windows") {
		return "pwsh"
	}
	return "bash"
}

var supportedShells = map[string]struct{}{
	"bash": {}, "zsh": {}, "sh": {}, "ksh": {}, "dash": {}, "fish": {}, "pwsh": {},
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := path.Base(value)
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "\"") {
		value = value[1:]
		if idx := strings.IndexRune(value, '"'); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if strings.HasPrefix(value, "'") {
		value = value[1:]
		if idx := strings.IndexRune(value, '\''); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
