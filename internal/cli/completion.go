package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/fibkm/internal/config"
)

// FlagCompletion describes a CLI flag for shell completion generation.
type FlagCompletion struct {
	Long      string   // long flag name without "--"
	Short     string   // short flag without "-"
	Help      string   // description text
	Values    []string // suggested completion values
	ValueName string   // label for the value in zsh; empty for boolean flags
	IsFile    bool     // true if the flag takes a file path
}

// fileFlags take a path argument.
var fileFlags = map[string]bool{"config": true}

// flagRegistry builds the completion registry from the flag definitions,
// plus --version which is handled before flag parsing.
func flagRegistry() []FlagCompletion {
	flags := config.Flags()
	reg := make([]FlagCompletion, 0, len(flags)+1)
	for _, f := range flags {
		fc := FlagCompletion{
			Long:   f.Name,
			Short:  f.Short,
			Help:   strings.TrimSuffix(f.Usage, "."),
			Values: f.Values,
			IsFile: fileFlags[f.Name],
		}
		if f.TakesValue {
			fc.ValueName = f.Name
		}
		reg = append(reg, fc)
	}
	return append(reg, FlagCompletion{Long: "version", Help: "Show version information"})
}

// GenerateCompletion writes a completion script for shell to out.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, flagRegistry())
	case "zsh":
		return generateZshCompletion(out, flagRegistry())
	case "fish":
		return generateFishCompletion(out, flagRegistry())
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(config.SupportedShells, ", "))
	}
}

func generateBashCompletion(out io.Writer, reg []FlagCompletion) error {
	var opts []string
	for _, f := range reg {
		opts = append(opts, "--"+f.Long)
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	var caseBody strings.Builder
	for _, f := range reg {
		var body string
		switch {
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		patterns := "--" + f.Long
		if f.Short != "" {
			patterns += "|-" + f.Short
		}
		fmt.Fprintf(&caseBody, "        %s)\n            %s\n            return 0\n            ;;\n", patterns, body)
	}

	script := fmt.Sprintf(`# Bash completion script for fibkm
# Add this to your ~/.bashrc or ~/.bash_completion

_fibkm_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _fibkm_completions fibkm
`, strings.Join(opts, " "), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

func generateZshCompletion(out io.Writer, reg []FlagCompletion) error {
	args := make([]string, 0, len(reg))
	for _, f := range reg {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef fibkm

# Zsh completion script for fibkm
# Add this to your ~/.zshrc or place in $fpath

_fibkm() {
    _arguments -s \
%s \
        '*:distance:'
}

_fibkm "$@"
`, strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	help := strings.NewReplacer("[", `\[`, "]", `\]`, "'", `'\''`).Replace(f.Help)

	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, help, valueSuffix)
}

func generateFishCompletion(out io.Writer, reg []FlagCompletion) error {
	lines := []string{
		"# Fish completion script for fibkm",
		"# Add this to ~/.config/fish/completions/fibkm.fish",
		"",
		"complete -c fibkm -f",
	}
	for _, f := range reg {
		lines = append(lines, fishCompleteLine(f))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion) string {
	parts := []string{"complete -c fibkm"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", strings.ReplaceAll(f.Help, "'", `\'`)))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}
