// Package sonarr provides a client for interacting with the Sonarr API.
//
// Sonarr is a PVR for usenet and torrent users that monitors RSS feeds for
// new episodes of tracked series. This package implements a clean, idiomatic
// Go client covering the series, episode, queue, history, release, system
// and tag endpoints.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: The main API client with a shared request layer
//   - Types: Domain models representing Sonarr entities (series, episodes, releases)
//   - API: Interface definitions for testability and modularity
//   - Errors: Structured error types for better error handling
//
// # Usage
//
// Create a new client with your Sonarr URL and API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := sonarr.NewClient(
//		"http://localhost:8989",
//		"your-api-key",
//		logger,
//		sonarr.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List every series in the library
//	ctx := context.Background()
//	series, err := client.GetAllSeries(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Adding a series takes a TVDB ID plus a quality profile and root folder; the
// client looks the series up and assembles the payload:
//
//	opts := sonarr.NewAddSeriesOptions(81189, 1, "/tv/")
//	opts.SearchForMissingEpisodes = true
//	added, err := client.AddSeries(ctx, opts)
//
// # Behavior
//
// Every method issues exactly one HTTP round trip (AddSeries and
// BuildAddSeriesPayload issue two, due to the embedded lookup). There are no
// retries and no caching; transport failures and non-2xx responses propagate
// to the caller. Methods are safe to call concurrently.
//
// # Error Handling
//
// The package defines several error types:
//
//   - ErrInvalidConfig: Invalid client configuration
//   - ErrNoConnection: Connection failure
//   - ValidationError: Malformed caller-supplied parameters (calendar dates)
//   - NotFoundError: A series lookup returned no matches
//   - APIError: Structured API errors with status codes
//
// API errors include helper methods for classification:
//
//	if apiErr, ok := err.(*sonarr.APIError); ok {
//		if apiErr.IsUnauthorized() {
//			// Handle auth failure
//		}
//	}
package sonarr
