package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gosonarr/filter"
	"github.com/s0up4200/gosonarr/sonarr"
)

var (
	filterExpr       string
	qualityProfileID int
	rootFolderPath   string
	noSeasonFolder   bool
	noMonitor        bool
	searchMissing    bool
	deleteFiles      bool
)

// seriesCmd groups series operations
var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Manage series in the library",
}

var seriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List series, optionally filtered by an expression",
	RunE:  runSeriesList,
}

var seriesLookupCmd = &cobra.Command{
	Use:   "lookup <term>",
	Short: "Search the remote catalog for new series",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeriesLookup,
}

var seriesAddCmd = &cobra.Command{
	Use:   "add <tvdb-id>",
	Short: "Add a series by TVDB ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeriesAdd,
}

var seriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a series from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeriesDelete,
}

func init() {
	seriesListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'Monitored && SeasonCount > 2'")

	seriesAddCmd.Flags().IntVarP(&qualityProfileID, "quality-profile", "q", 0, "quality profile ID (required)")
	seriesAddCmd.Flags().StringVarP(&rootFolderPath, "root-dir", "r", "", "root folder path, must end with a separator (required)")
	seriesAddCmd.Flags().BoolVar(&noSeasonFolder, "no-season-folder", false, "do not organize episodes into season folders")
	seriesAddCmd.Flags().BoolVar(&noMonitor, "no-monitor", false, "add the series unmonitored")
	seriesAddCmd.Flags().BoolVar(&searchMissing, "search-missing", false, "search for missing episodes after adding")
	seriesAddCmd.MarkFlagRequired("quality-profile")
	seriesAddCmd.MarkFlagRequired("root-dir")

	seriesDeleteCmd.Flags().BoolVar(&deleteFiles, "delete-files", false, "also delete the series files on disk")

	seriesCmd.AddCommand(seriesListCmd)
	seriesCmd.AddCommand(seriesLookupCmd)
	seriesCmd.AddCommand(seriesAddCmd)
	seriesCmd.AddCommand(seriesDeleteCmd)
}

func runSeriesList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	series, err := client.GetAllSeries(ctx)
	if err != nil {
		return err
	}

	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		series = filter.Apply(f, series)
	}

	if len(series) == 0 {
		fmt.Println("No series found.")
		return nil
	}

	fmt.Printf("\nFound %d series:\n", len(series))
	fmt.Println(strings.Repeat("-", 80))
	for _, s := range series {
		fmt.Printf("• %s (%d)", s.Title, s.Year)
		if !s.Monitored {
			fmt.Printf(" [UNMONITORED]")
		}
		fmt.Println()
		fmt.Printf("  Seasons: %d  Status: %s  Path: %s\n", len(s.Seasons), s.Status, s.Path)
	}

	return nil
}

func runSeriesLookup(cmd *cobra.Command, args []string) error {
	results, err := client.LookupSeries(context.Background(), args[0])
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No series found matching the term.")
		return nil
	}

	for _, s := range results {
		fmt.Printf("• %s (%d) tvdb:%d\n", s.Title, s.Year, s.TVDBID)
	}

	return nil
}

func runSeriesAdd(cmd *cobra.Command, args []string) error {
	tvdbID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid TVDB ID: %s", args[0])
	}

	opts := sonarr.NewAddSeriesOptions(tvdbID, qualityProfileID, rootFolderPath)
	opts.SeasonFolder = !noSeasonFolder
	opts.Monitored = !noMonitor
	opts.SearchForMissingEpisodes = searchMissing

	series, err := client.AddSeries(context.Background(), opts)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s (id %d)\n", series.Title, series.ID)
	return nil
}

func runSeriesDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid series ID: %s", args[0])
	}

	if err := client.DeleteSeries(context.Background(), id, deleteFiles); err != nil {
		return err
	}

	fmt.Printf("Deleted series %d\n", id)
	return nil
}
