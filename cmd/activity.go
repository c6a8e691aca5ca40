package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gosonarr/sonarr"
)

var (
	startDate   string
	endDate     string
	noBlacklist bool
	sortKey     string
	page        int
	pageSize    int
)

// queueCmd groups download queue operations
var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Inspect and manage the download queue",
}

var queueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the download queue",
	RunE:  runQueueList,
}

var queueRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an item from the queue, blacklisting it by default",
	Args:  cobra.ExactArgs(1),
	RunE:  runQueueRemove,
}

// calendarCmd lists upcoming and recent episodes
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show episodes airing in a date range",
	RunE:  runCalendar,
}

// historyCmd lists grab/import history
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show grab and import history",
	RunE:  runHistory,
}

func init() {
	queueRemoveCmd.Flags().BoolVar(&noBlacklist, "no-blacklist", false, "do not blacklist the release after removal")
	queueCmd.AddCommand(queueListCmd)
	queueCmd.AddCommand(queueRemoveCmd)

	calendarCmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	calendarCmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")

	historyCmd.Flags().StringVar(&sortKey, "sort-key", "date", "sort key (series.title or date)")
	historyCmd.Flags().IntVar(&page, "page", 1, "page number")
	historyCmd.Flags().IntVar(&pageSize, "page-size", 10, "records per page")
}

func runQueueList(cmd *cobra.Command, args []string) error {
	queue, err := client.GetQueue(context.Background())
	if err != nil {
		return err
	}

	if len(queue) == 0 {
		fmt.Println("The download queue is empty.")
		return nil
	}

	for _, item := range queue {
		fmt.Printf("• [%d] %s (%s)", item.ID, item.Title, item.Status)
		if item.TimeLeft != "" {
			fmt.Printf(" %s left", item.TimeLeft)
		}
		fmt.Println()
	}

	return nil
}

func runQueueRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid queue item ID: %s", args[0])
	}

	if err := client.DeleteQueueItem(context.Background(), id, !noBlacklist); err != nil {
		return err
	}

	fmt.Printf("Removed queue item %d\n", id)
	return nil
}

func runCalendar(cmd *cobra.Command, args []string) error {
	episodes, err := client.GetCalendar(context.Background(), startDate, endDate)
	if err != nil {
		return err
	}

	if len(episodes) == 0 {
		fmt.Println("Nothing on the calendar.")
		return nil
	}

	for _, ep := range episodes {
		title := ep.Title
		if ep.Series != nil {
			title = fmt.Sprintf("%s - %s", ep.Series.Title, ep.Title)
		}
		fmt.Printf("• %s S%02dE%02d %s\n", ep.AirDate, ep.SeasonNumber, ep.EpisodeNumber, title)
	}

	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	history, err := client.GetHistory(context.Background(), sortKey, &sonarr.HistoryOptions{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	if len(history.Records) == 0 {
		fmt.Println("No history records.")
		return nil
	}

	fmt.Printf("Page %d of %d records:\n", history.Page, history.TotalRecords)
	for _, rec := range history.Records {
		fmt.Printf("• %s %s %s\n", rec.Date.Format("2006-01-02 15:04"), rec.EventType, rec.SourceTitle)
	}

	return nil
}
