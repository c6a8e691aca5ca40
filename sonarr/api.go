package sonarr

import (
	"context"
)

// API defines the interface for Sonarr operations
type API interface {
	// TestConnection verifies the client can connect to Sonarr
	TestConnection(ctx context.Context) error

	// GetCalendar retrieves episodes airing between two YYYY-MM-DD dates
	GetCalendar(ctx context.Context, start, end string) ([]Episode, error)

	// GetCommands returns the status of all currently started commands
	GetCommands(ctx context.Context) ([]CommandResponse, error)
	// GetCommand returns the status of a previously started command
	GetCommand(ctx context.Context, id int) (*CommandResponse, error)
	// RunCommand starts a predefined Sonarr command routine
	RunCommand(ctx context.Context, name string, params map[string]interface{}) (*CommandResponse, error)

	// GetEpisodesBySeriesID returns all episodes for a series
	GetEpisodesBySeriesID(ctx context.Context, seriesID int) ([]Episode, error)
	// GetEpisode returns a single episode
	GetEpisode(ctx context.Context, id int) (*Episode, error)
	// UpdateEpisode replaces an existing episode record
	UpdateEpisode(ctx context.Context, episode *Episode) (*Episode, error)
	// GetEpisodesBySeriesIDs fetches episodes for several series concurrently
	GetEpisodesBySeriesIDs(ctx context.Context, seriesIDs []int) (map[int][]Episode, error)

	// GetEpisodeFilesBySeriesID returns all episode files for a series
	GetEpisodeFilesBySeriesID(ctx context.Context, seriesID int) ([]EpisodeFile, error)
	// GetEpisodeFile returns a single episode file
	GetEpisodeFile(ctx context.Context, id int) (*EpisodeFile, error)
	// DeleteEpisodeFile deletes an episode file
	DeleteEpisodeFile(ctx context.Context, id int) error
	// UpdateEpisodeFileQuality updates the quality of an episode file
	UpdateEpisodeFileQuality(ctx context.Context, id int, quality QualityModel) (*EpisodeFile, error)

	// GetHistory returns one page of grab/import/failure history
	GetHistory(ctx context.Context, sortKey string, opts *HistoryOptions) (*HistoryPage, error)
	// GetWantedMissing returns one page of monitored episodes without files
	GetWantedMissing(ctx context.Context, sortKey string, opts *WantedOptions) (*WantedPage, error)
	// GetQueue returns the current download queue
	GetQueue(ctx context.Context) ([]QueueItem, error)
	// DeleteQueueItem removes an item from the queue, optionally blacklisting it
	DeleteQueueItem(ctx context.Context, id int, blacklist bool) error

	// ParseTitle returns the result of parsing a release title
	ParseTitle(ctx context.Context, title string) (*ParseResult, error)
	// ParsePath returns the result of parsing a file path
	ParsePath(ctx context.Context, path string) (*ParseResult, error)

	// GetQualityProfiles returns all quality profiles
	GetQualityProfiles(ctx context.Context) ([]QualityProfile, error)

	// SearchReleases queries the indexers for releases of an episode
	SearchReleases(ctx context.Context, episodeID int) ([]Release, error)
	// DownloadRelease sends a searched release to the download client
	DownloadRelease(ctx context.Context, guid string, indexerID int) (*Release, error)
	// PushRelease notifies Sonarr of a new release
	PushRelease(ctx context.Context, title, downloadURL string, protocol Protocol, publishDate string) (*Release, error)

	// GetRootFolders returns the configured library root directories
	GetRootFolders(ctx context.Context) ([]RootFolder, error)

	// GetAllSeries retrieves every series in the library
	GetAllSeries(ctx context.Context) ([]Series, error)
	// GetSeries returns the series with the matching ID
	GetSeries(ctx context.Context, id int) (*Series, error)
	// LookupSeries searches the remote catalog for series matching a term
	LookupSeries(ctx context.Context, term string) ([]Series, error)
	// LookupSeriesByTVDBID searches the remote catalog by TVDB ID
	LookupSeriesByTVDBID(ctx context.Context, tvdbID int) ([]Series, error)
	// BuildAddSeriesPayload assembles an add-series payload from a lookup
	BuildAddSeriesPayload(ctx context.Context, opts AddSeriesOptions) (*AddSeriesRequest, error)
	// AddSeries adds a new series to the library
	AddSeries(ctx context.Context, opts AddSeriesOptions) (*Series, error)
	// UpdateSeries replaces an existing series record
	UpdateSeries(ctx context.Context, series *Series) (*Series, error)
	// DeleteSeries deletes a series, optionally with its files
	DeleteSeries(ctx context.Context, id int, deleteFiles bool) error

	// GetSystemStatus returns the server's version and environment information
	GetSystemStatus(ctx context.Context) (*SystemStatus, error)
	// GetBackups returns the server's backup archives
	GetBackups(ctx context.Context) ([]Backup, error)
	// GetDiskSpace returns disk usage for the server's mounted volumes
	GetDiskSpace(ctx context.Context) ([]DiskSpace, error)
	// GetLogs returns one page of server log records
	GetLogs(ctx context.Context, opts *LogsOptions) (*LogPage, error)

	// GetTags returns all tags
	GetTags(ctx context.Context) ([]Tag, error)
	// GetTag returns the tag with the matching ID
	GetTag(ctx context.Context, id int) (*Tag, error)
	// CreateTag creates a new tag
	CreateTag(ctx context.Context, id int, label string) (*Tag, error)
	// UpdateTag edits a tag by its ID
	UpdateTag(ctx context.Context, id int, label string) (*Tag, error)
	// DeleteTag deletes a tag
	DeleteTag(ctx context.Context, id int) error
}

var _ API = (*Client)(nil)
