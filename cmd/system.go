package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gosonarr/sonarr"
)

var (
	logPage     int
	logPageSize int
	logFilter   string
)

// statusCmd shows server status and disk usage
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show Sonarr server status and disk space",
	RunE:  runStatus,
}

// logsCmd shows server log records
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show Sonarr server logs",
	RunE:  runLogs,
}

// commandCmd runs a server-side command routine
var commandCmd = &cobra.Command{
	Use:   "command <name> [json-params]",
	Short: "Run a Sonarr command routine, e.g. RssSync or RescanSeries",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCommand,
}

func init() {
	logsCmd.Flags().IntVar(&logPage, "page", 1, "page number")
	logsCmd.Flags().IntVar(&logPageSize, "page-size", 10, "records per page")
	logsCmd.Flags().StringVar(&logFilter, "level", "", "filter by level (Info, Warn, Error)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	status, err := client.GetSystemStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Sonarr %s", status.Version)
	if status.Branch != "" {
		fmt.Printf(" (%s)", status.Branch)
	}
	fmt.Println()

	disks, err := client.GetDiskSpace(ctx)
	if err != nil {
		return err
	}
	for _, disk := range disks {
		free := float64(disk.FreeSpace) / (1 << 30)
		total := float64(disk.TotalSpace) / (1 << 30)
		fmt.Printf("  %s: %.1f GiB free of %.1f GiB\n", disk.Path, free, total)
	}

	return nil
}

func runLogs(cmd *cobra.Command, args []string) error {
	opts := &sonarr.LogsOptions{
		Page:     logPage,
		PageSize: logPageSize,
	}
	if logFilter != "" {
		opts.FilterKey = "level"
		opts.FilterValue = logFilter
	}

	logs, err := client.GetLogs(context.Background(), opts)
	if err != nil {
		return err
	}

	for _, rec := range logs.Records {
		fmt.Printf("%s [%s] %s\n", rec.Time.Format("2006-01-02 15:04:05"), rec.Level, rec.Message)
	}

	return nil
}

func runCommand(cmd *cobra.Command, args []string) error {
	var params map[string]interface{}
	if len(args) == 2 {
		if err := json.Unmarshal([]byte(args[1]), &params); err != nil {
			fmt.Fprintf(os.Stderr, "invalid JSON params: %v\n", err)
			return err
		}
	}

	command, err := client.RunCommand(context.Background(), args[0], params)
	if err != nil {
		return err
	}

	fmt.Printf("Started %s (id %d, state %s)\n", command.Name, command.ID, command.State)
	return nil
}
