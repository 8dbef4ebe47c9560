package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveSessionID expands an id prefix (as shown in history output) to the
// full session id. An unknown id passes through untouched so the store can
// report it as missing instead of the CLI swallowing it.
func resolveSessionID(ctx context.Context, app *App, userID, idOrPrefix string) (string, error) {
	sessions, err := app.Sessions.History(ctx, userID)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, s := range sessions {
		if s.ID == idOrPrefix {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, idOrPrefix) {
			matches = append(matches, s.ID)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("session id %q is ambiguous (%d matches)", idOrPrefix, len(matches))
	}
	return idOrPrefix, nil
}
