// Shared helpers for glovoadmin CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/courierworks/glovoadmin/internal/admin"
	"github.com/courierworks/glovoadmin/pkg/query"
	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// adminCredentials holds the login credential loaded from config.yaml.
type adminCredentials struct {
	Email    string
	Password string
	Name     string
}

// consoleNotifier writes panel notifications to stderr so they never mix
// with the structured output on stdout.
type consoleNotifier struct{}

// Notify implements types.Notifier.
func (consoleNotifier) Notify(message string, severity types.Severity) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", severity, message)
}

// openPanel resolves the data directory, opens the configured backend, and
// wraps it in an admin panel. The caller must defer st.Close().
func openPanel() (*admin.Panel, types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}

	st, err := store.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	return admin.NewPanel(st, consoleNotifier{}), st, nil
}

// exitWith prints the error to stderr and exits with the given code.
func exitWith(code int, err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(code)
}

// isUserError reports whether the error is the caller's fault rather than
// a backend failure, mapping it to exit code 1 instead of 2.
func isUserError(err error) bool {
	return errors.Is(err, types.ErrNotFound) ||
		errors.Is(err, types.ErrMissingField) ||
		errors.Is(err, types.ErrInvalidRole) ||
		errors.Is(err, types.ErrInvalidUserStatus) ||
		errors.Is(err, types.ErrInvalidClientType) ||
		errors.Is(err, types.ErrInvalidOrderStatus) ||
		errors.Is(err, types.ErrInvalidPayment) ||
		errors.Is(err, types.ErrInvalidDelivery) ||
		errors.Is(err, types.ErrNegativePrice) ||
		errors.Is(err, types.ErrNegativeStock) ||
		errors.Is(err, types.ErrNoPendingDelete) ||
		errors.Is(err, types.ErrInvalidCredentials) ||
		errors.Is(err, types.ErrNotAuthenticated)
}

// fail exits with the right code for the error class.
func fail(prefix string, err error) {
	code := exitSysError
	if isUserError(err) {
		code = exitUserError
	}
	exitWith(code, fmt.Errorf("%s: %w", prefix, err))
}

// parseID parses a positional record id argument.
func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		exitWith(exitUserError, fmt.Errorf("invalid id %q: expected a positive integer", arg))
	}
	return id
}

// printJSON marshals v with indentation onto stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitWith(exitSysError, fmt.Errorf("marshal JSON: %w", err))
	}
	fmt.Println(string(out))
}

// listState builds the pipeline view state shared by every list command.
func listState(search, sortCol string, desc bool, page, pageSize int, filters map[string]string) query.State {
	dir := query.Ascending
	if desc {
		dir = query.Descending
	}
	if pageSize < 1 {
		pageSize = configPageSize
	}
	return query.State{
		Search:     search,
		Filters:    filters,
		SortColumn: sortCol,
		SortDir:    dir,
		Page:       page,
		PageSize:   pageSize,
	}
}

// printTable renders rows with aligned columns and a page footer. The
// header row is given as tab-separated column names.
func printTable(header string, rows [][]string, total, page, pageSize int) {
	if len(rows) == 0 {
		fmt.Println("No records found.")
		fmt.Printf("Total: %d\n", total)
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, header)
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		if line != "" {
			fmt.Println(strings.TrimRight(line, " "))
		}
	}

	pages := (total + pageSize - 1) / pageSize
	fmt.Printf("Page %d/%d, total %d record(s)\n", page, pages, total)
}

// truncate shortens a display value for table output.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
