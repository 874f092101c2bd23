package ui

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

// AddPagingFlags adds the standard pagination flags to a command.
func AddPagingFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 0, "Maximum number of entries to return")
	cmd.Flags().Int("offset", 0, "Number of entries to skip")
}

// ParsePagingFlags extracts pagination settings from command flags.
func ParsePagingFlags(cmd *cobra.Command) ([]onedrive.ListOption, error) {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return nil, fmt.Errorf("error parsing limit flag: %w", err)
	}
	if limit < 0 {
		return nil, fmt.Errorf("limit must not be negative, got %d", limit)
	}

	offset, err := cmd.Flags().GetInt("offset")
	if err != nil {
		return nil, fmt.Errorf("error parsing offset flag: %w", err)
	}
	if offset < 0 {
		return nil, fmt.Errorf("offset must not be negative, got %d", offset)
	}

	return []onedrive.ListOption{onedrive.WithLimit(limit), onedrive.WithOffset(offset)}, nil
}
