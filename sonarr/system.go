package sonarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetSystemStatus returns the server's version and environment information
func (c *Client) GetSystemStatus(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := c.get(ctx, "/api/system/status", nil, &status); err != nil {
		return nil, fmt.Errorf("failed to get system status: %w", err)
	}

	return &status, nil
}

// GetBackups returns the server's backup archives
func (c *Client) GetBackups(ctx context.Context) ([]Backup, error) {
	var backups []Backup
	if err := c.get(ctx, "/api/system/backup", nil, &backups); err != nil {
		return nil, fmt.Errorf("failed to get backups: %w", err)
	}

	return backups, nil
}

// GetDiskSpace returns disk usage for the server's mounted volumes
func (c *Client) GetDiskSpace(ctx context.Context) ([]DiskSpace, error) {
	var disks []DiskSpace
	if err := c.get(ctx, "/api/diskspace", nil, &disks); err != nil {
		return nil, fmt.Errorf("failed to get disk space: %w", err)
	}

	return disks, nil
}

// GetRootFolders returns the configured library root directories
func (c *Client) GetRootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	if err := c.get(ctx, "/api/rootfolder", nil, &folders); err != nil {
		return nil, fmt.Errorf("failed to get root folders: %w", err)
	}

	return folders, nil
}

// LogsOptions are optional paging and filtering parameters for GetLogs.
// Zero values fall back to the server defaults: page 1, page size 10,
// sorted by time descending, filter value "All". FilterKey is omitted
// from the request when unset.
type LogsOptions struct {
	Page        int
	PageSize    int
	SortKey     string
	SortDir     SortDirection
	FilterKey   string
	FilterValue string
}

// GetLogs returns one page of server log records
func (c *Client) GetLogs(ctx context.Context, opts *LogsOptions) (*LogPage, error) {
	page, pageSize := 1, 10
	sortKey, filterValue := "time", "All"
	sortDir := SortDescending
	filterKey := ""
	if opts != nil {
		if opts.Page > 0 {
			page = opts.Page
		}
		if opts.PageSize > 0 {
			pageSize = opts.PageSize
		}
		if opts.SortKey != "" {
			sortKey = opts.SortKey
		}
		if opts.SortDir != "" {
			sortDir = opts.SortDir
		}
		if opts.FilterValue != "" {
			filterValue = opts.FilterValue
		}
		filterKey = opts.FilterKey
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("sortKey", sortKey)
	params.Set("sortDir", string(sortDir))
	params.Set("filterValue", filterValue)
	if filterKey != "" {
		params.Set("filterKey", filterKey)
	}

	var logs LogPage
	if err := c.get(ctx, "/api/log", params, &logs); err != nil {
		return nil, fmt.Errorf("failed to get logs: %w", err)
	}

	return &logs, nil
}
