package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snowshift-labs/snowshift/pkg/adapter"
)

// readSQL resolves the query text: positional args first, then --input
// file, then piped stdin.
func readSQL(cmd *cobra.Command, args []string, input string) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case input != "":
		content, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(content), nil
	default:
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		sql := strings.TrimSpace(string(content))
		if sql == "" {
			return "", fmt.Errorf("no SQL provided (pass it as an argument, via --input, or on stdin)")
		}
		return sql, nil
	}
}

// parseParams converts key=value pairs into named query parameters.
// Values that parse as int, float, or bool are typed accordingly;
// everything else stays a string.
func parseParams(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q (want name=value)", pair)
		}
		params[name] = parseParamValue(value)
	}
	return params, nil
}

func parseParamValue(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// openAdapter builds and connects the adapter configured for this
// invocation. The caller owns the returned adapter and must Close it.
func openAdapter(cmd *cobra.Command) (adapter.Adapter, error) {
	cfg := GetConfig(cmd.Context())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a, err := adapter.NewAdapter(*cfg.Connection, GetLogger(cmd.Context()))
	if err != nil {
		return nil, err
	}

	if err := a.Connect(cmd.Context(), *cfg.Connection); err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return a, nil
}

// resolveFormat picks the per-command format flag if set, falling back to
// the configured output format.
func resolveFormat(cmd *cobra.Command, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg := GetConfig(cmd.Context()); cfg.OutputFormat != "" {
		return cfg.OutputFormat
	}
	return "table"
}
