package network

import (
	"errors"
	"strings"

	"github.com/leengari/datagrid/internal/executor"
)

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

func errorOf(res executor.Result) error {
	if res.Error == "" {
		return nil
	}
	return errors.New(res.Error)
}
