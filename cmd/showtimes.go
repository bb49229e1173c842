package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"movieobserver/config"
	"movieobserver/model"
	"movieobserver/service"
	"movieobserver/showtime"
)

var (
	showtimesDate     string
	showtimesOriginal bool
	showtimesTheater  string
)

var showtimesCmd = &cobra.Command{
	Use:   "showtimes",
	Short: "Print one day's showtimes as a table",
	Long:  `Print every movie playing on a date with its showtimes, grouped by theater.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := config.NewLogger(cfg, os.Stderr)

		date, err := parseDateFlag(showtimesDate, time.Now())
		if err != nil {
			return err
		}

		client := service.NewClient(cfg.APIURL, newHTTPClient(cfg))
		movies, err := client.GetMovies(cmd.Context(), date, showtimesOriginal)
		if err != nil {
			logger.Error("load movies failed", "date", date.Format(time.DateOnly), "err", err)
			return err
		}
		if showtimesTheater != "" {
			movies = showtime.ForTheater(movies, showtimesTheater)
		}
		renderShowtimes(cmd.OutOrStdout(), movies)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	showtimesCmd.Flags().StringVar(&showtimesDate, "date", "", "screening date as YYYY-MM-DD (default today)")
	showtimesCmd.Flags().BoolVar(&showtimesOriginal, "original", false, "only original language screenings")
	showtimesCmd.Flags().StringVar(&showtimesTheater, "theater", "", "only showtimes at this theater (exact name)")
}

func parseDateFlag(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return showtime.Day(now), nil
	}
	date, err := time.ParseInLocation(time.DateOnly, value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", value)
	}
	return date, nil
}

func renderShowtimes(out io.Writer, movies []model.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(out, "No movies found for this date")
		return
	}

	rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Movie", "Theater", "Time", "Room", "Booking"}, rowConfigAutoMerge)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true, WidthMax: 24},
		{Number: 2, AutoMerge: true},
	})
	t.Style().Options.SeparateRows = true

	for _, movie := range movies {
		var rows []table.Row
		for _, group := range showtime.GroupByTheater(movie.Showtimes) {
			for _, s := range group.Showtimes {
				booking := "-"
				if showtime.Bookable(s) {
					booking = showtime.Link(s)
				}
				rows = append(rows, table.Row{movie.Title, group.Theater, showtime.Label(s), s.Room, booking})
			}
		}
		if len(rows) == 0 {
			rows = append(rows, table.Row{movie.Title, "-", "-", "-", "-"})
		}
		t.AppendRows(rows, rowConfigAutoMerge)
		t.AppendSeparator()
	}
	t.Render()
}
