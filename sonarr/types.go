package sonarr

import "time"

// Protocol identifies how a release is delivered.
type Protocol string

const (
	// ProtocolUsenet represents a usenet release
	ProtocolUsenet Protocol = "Usenet"
	// ProtocolTorrent represents a torrent release
	ProtocolTorrent Protocol = "Torrent"
)

// SortDirection orders paginated results.
type SortDirection string

const (
	// SortAscending sorts results in ascending order
	SortAscending SortDirection = "asc"
	// SortDescending sorts results in descending order
	SortDescending SortDirection = "desc"
)

// Season represents a single season of a series
type Season struct {
	SeasonNumber int  `json:"seasonNumber"`
	Monitored    bool `json:"monitored"`
}

// Image is a piece of artwork attached to a series
type Image struct {
	CoverType string `json:"coverType"`
	URL       string `json:"url"`
}

// Series represents a series in the library or a lookup result
type Series struct {
	ID               int       `json:"id,omitempty"`
	Title            string    `json:"title"`
	SortTitle        string    `json:"sortTitle,omitempty"`
	Status           string    `json:"status,omitempty"`
	Overview         string    `json:"overview,omitempty"`
	Network          string    `json:"network,omitempty"`
	AirTime          string    `json:"airTime,omitempty"`
	Images           []Image   `json:"images,omitempty"`
	Seasons          []Season  `json:"seasons,omitempty"`
	Year             int       `json:"year,omitempty"`
	Path             string    `json:"path,omitempty"`
	QualityProfileID int       `json:"qualityProfileId,omitempty"`
	SeasonFolder     bool      `json:"seasonFolder"`
	Monitored        bool      `json:"monitored"`
	Runtime          int       `json:"runtime,omitempty"`
	TVDBID           int       `json:"tvdbId,omitempty"`
	TVRageID         int       `json:"tvRageId,omitempty"`
	SeriesType       string    `json:"seriesType,omitempty"`
	TitleSlug        string    `json:"titleSlug,omitempty"`
	FirstAired       time.Time `json:"firstAired"`
	Added            time.Time `json:"added"`
	Tags             []int     `json:"tags,omitempty"`
}

// AddOptions controls the scan behavior after a series is added
type AddOptions struct {
	IgnoreEpisodesWithFiles    bool `json:"ignoreEpisodesWithFiles"`
	IgnoreEpisodesWithoutFiles bool `json:"ignoreEpisodesWithoutFiles"`
	SearchForMissingEpisodes   bool `json:"searchForMissingEpisodes"`
}

// AddSeriesRequest is the payload sent to add a series to the library
type AddSeriesRequest struct {
	Title            string     `json:"title"`
	Seasons          []Season   `json:"seasons"`
	Path             string     `json:"path"`
	QualityProfileID int        `json:"qualityProfileId"`
	SeasonFolder     bool       `json:"seasonFolder"`
	Monitored        bool       `json:"monitored"`
	TVDBID           int        `json:"tvdbId"`
	Images           []Image    `json:"images"`
	TitleSlug        string     `json:"titleSlug"`
	AddOptions       AddOptions `json:"addOptions"`
}

// AddSeriesOptions are the caller inputs used to build an AddSeriesRequest.
// RootFolderPath is concatenated with the looked-up title as-is, so it must
// already end with a path separator.
type AddSeriesOptions struct {
	TVDBID                     int
	QualityProfileID           int
	RootFolderPath             string
	SeasonFolder               bool
	Monitored                  bool
	IgnoreEpisodesWithFiles    bool
	IgnoreEpisodesWithoutFiles bool
	SearchForMissingEpisodes   bool
}

// NewAddSeriesOptions returns options with the server defaults applied:
// season folders enabled and the series monitored.
func NewAddSeriesOptions(tvdbID, qualityProfileID int, rootFolderPath string) AddSeriesOptions {
	return AddSeriesOptions{
		TVDBID:           tvdbID,
		QualityProfileID: qualityProfileID,
		RootFolderPath:   rootFolderPath,
		SeasonFolder:     true,
		Monitored:        true,
	}
}

// Episode represents a single episode of a series
type Episode struct {
	ID                    int       `json:"id"`
	SeriesID              int       `json:"seriesId"`
	EpisodeFileID         int       `json:"episodeFileId"`
	SeasonNumber          int       `json:"seasonNumber"`
	EpisodeNumber         int       `json:"episodeNumber"`
	Title                 string    `json:"title"`
	AirDate               string    `json:"airDate,omitempty"`
	AirDateUTC            time.Time `json:"airDateUtc"`
	Overview              string    `json:"overview,omitempty"`
	HasFile               bool      `json:"hasFile"`
	Monitored             bool      `json:"monitored"`
	AbsoluteEpisodeNumber int       `json:"absoluteEpisodeNumber,omitempty"`
	Series                *Series   `json:"series,omitempty"`
}

// QualityValue identifies a quality definition
type QualityValue struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// QualityModel is the nested quality payload carried on episode files and releases
type QualityModel struct {
	Quality QualityValue `json:"quality"`
	Proper  bool         `json:"proper"`
}

// EpisodeFile represents a media file on disk
type EpisodeFile struct {
	ID           int           `json:"id"`
	SeriesID     int           `json:"seriesId"`
	SeasonNumber int           `json:"seasonNumber"`
	Path         string        `json:"path"`
	Size         int64         `json:"size"`
	DateAdded    time.Time     `json:"dateAdded"`
	Quality      *QualityModel `json:"quality,omitempty"`
}

// QueueItem represents an entry in the download queue
type QueueItem struct {
	ID                      int           `json:"id"`
	Series                  *Series       `json:"series,omitempty"`
	Episode                 *Episode      `json:"episode,omitempty"`
	Title                   string        `json:"title"`
	Size                    float64       `json:"size"`
	SizeLeft                float64       `json:"sizeleft"`
	Status                  string        `json:"status"`
	TrackedDownloadStatus   string        `json:"trackedDownloadStatus,omitempty"`
	TimeLeft                string        `json:"timeleft,omitempty"`
	EstimatedCompletionTime time.Time     `json:"estimatedCompletionTime"`
	DownloadID              string        `json:"downloadId,omitempty"`
	Protocol                string        `json:"protocol,omitempty"`
	Quality                 *QualityModel `json:"quality,omitempty"`
}

// HistoryRecord is a single grab/import/failure event
type HistoryRecord struct {
	ID          int           `json:"id"`
	EpisodeID   int           `json:"episodeId"`
	SeriesID    int           `json:"seriesId"`
	SourceTitle string        `json:"sourceTitle"`
	EventType   string        `json:"eventType"`
	Date        time.Time     `json:"date"`
	Quality     *QualityModel `json:"quality,omitempty"`
	Episode     *Episode      `json:"episode,omitempty"`
	Series      *Series       `json:"series,omitempty"`
}

// HistoryPage is one page of history records
type HistoryPage struct {
	Page          int             `json:"page"`
	PageSize      int             `json:"pageSize"`
	SortKey       string          `json:"sortKey"`
	SortDirection string          `json:"sortDirection"`
	TotalRecords  int             `json:"totalRecords"`
	Records       []HistoryRecord `json:"records"`
}

// WantedPage is one page of wanted/missing episodes
type WantedPage struct {
	Page          int       `json:"page"`
	PageSize      int       `json:"pageSize"`
	SortKey       string    `json:"sortKey"`
	SortDirection string    `json:"sortDirection"`
	TotalRecords  int       `json:"totalRecords"`
	Records       []Episode `json:"records"`
}

// LogRecord is a single server log line
type LogRecord struct {
	ID        int       `json:"id"`
	Time      time.Time `json:"time"`
	Level     string    `json:"level"`
	Logger    string    `json:"logger,omitempty"`
	Message   string    `json:"message"`
	Exception string    `json:"exception,omitempty"`
}

// LogPage is one page of server log records
type LogPage struct {
	Page          int         `json:"page"`
	PageSize      int         `json:"pageSize"`
	SortKey       string      `json:"sortKey"`
	SortDirection string      `json:"sortDirection"`
	TotalRecords  int         `json:"totalRecords"`
	Records       []LogRecord `json:"records"`
}

// CommandResponse describes a queued or running command
type CommandResponse struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Message         string    `json:"message,omitempty"`
	State           string    `json:"state"`
	StartedOn       time.Time `json:"startedOn"`
	StateChangeTime time.Time `json:"stateChangeTime"`
}

// Release is an indexer search result
type Release struct {
	GUID           string        `json:"guid"`
	Title          string        `json:"title"`
	Size           int64         `json:"size"`
	IndexerID      int           `json:"indexerId"`
	Indexer        string        `json:"indexer,omitempty"`
	Protocol       string        `json:"protocol,omitempty"`
	Age            int           `json:"age"`
	Approved       bool          `json:"approved"`
	Rejections     []string      `json:"rejections,omitempty"`
	SeasonNumber   int           `json:"seasonNumber,omitempty"`
	EpisodeNumbers []int         `json:"episodeNumbers,omitempty"`
	PublishDate    time.Time     `json:"publishDate"`
	DownloadURL    string        `json:"downloadUrl,omitempty"`
	Quality        *QualityModel `json:"quality,omitempty"`
}

// ParsedEpisodeInfo is the breakdown of a parsed release title
type ParsedEpisodeInfo struct {
	ReleaseTitle   string        `json:"releaseTitle,omitempty"`
	SeriesTitle    string        `json:"seriesTitle"`
	SeasonNumber   int           `json:"seasonNumber"`
	EpisodeNumbers []int         `json:"episodeNumbers,omitempty"`
	FullSeason     bool          `json:"fullSeason"`
	Quality        *QualityModel `json:"quality,omitempty"`
}

// ParseResult is the server's attempt at parsing a title or path
type ParseResult struct {
	Title             string             `json:"title"`
	ParsedEpisodeInfo *ParsedEpisodeInfo `json:"parsedEpisodeInfo,omitempty"`
	Series            *Series            `json:"series,omitempty"`
	Episodes          []Episode          `json:"episodes,omitempty"`
}

// QualityProfileItem is one allowed/disallowed quality in a profile
type QualityProfileItem struct {
	Quality QualityValue `json:"quality"`
	Allowed bool         `json:"allowed"`
}

// QualityProfile groups qualities with a cutoff
type QualityProfile struct {
	ID     int                  `json:"id"`
	Name   string               `json:"name"`
	Cutoff QualityValue         `json:"cutoff"`
	Items  []QualityProfileItem `json:"items,omitempty"`
}

// RootFolder is a configured library root directory
type RootFolder struct {
	ID        int    `json:"id"`
	Path      string `json:"path"`
	FreeSpace int64  `json:"freeSpace,omitempty"`
}

// DiskSpace describes one mounted volume on the server
type DiskSpace struct {
	Path       string `json:"path"`
	Label      string `json:"label,omitempty"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

// SystemStatus is the server's version and environment information
type SystemStatus struct {
	Version      string    `json:"version"`
	BuildTime    time.Time `json:"buildTime"`
	Branch       string    `json:"branch,omitempty"`
	OSVersion    string    `json:"osVersion,omitempty"`
	IsDebug      bool      `json:"isDebug"`
	IsProduction bool      `json:"isProduction"`
	IsAdmin      bool      `json:"isAdmin"`
	StartOfWeek  int       `json:"startOfWeek"`
	URLBase      string    `json:"urlBase,omitempty"`
}

// Backup describes a server backup archive
type Backup struct {
	ID   int       `json:"id"`
	Name string    `json:"name"`
	Path string    `json:"path"`
	Type string    `json:"type"`
	Time time.Time `json:"time"`
}

// Tag is a label that can be attached to series and other resources
type Tag struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}
