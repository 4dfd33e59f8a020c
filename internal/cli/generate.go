package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamcrew/schedgen/pkg/errors"
	"github.com/streamcrew/schedgen/pkg/render"
	"github.com/streamcrew/schedgen/pkg/schedule"
	"github.com/streamcrew/schedgen/pkg/style"
)

// Default file locations, relative to the working directory.
const (
	defaultConfig     = "schedgen.toml"
	defaultBackground = "background.png"
	defaultOutput     = "generated.png"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	config     string // TOML configuration file
	background string // background image path
	output     string // output image path
}

// newGenerateCmd creates the generate command. The weekday argument is the
// title drawn at the top of the image; every STREAM argument is a
// "streamer;H:MM" pair resolved against the configuration's streamer table.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		config:     defaultConfig,
		background: defaultBackground,
		output:     defaultOutput,
	}

	cmd := &cobra.Command{
		Use:   "generate WEEKDAY STREAM...",
		Short: "Render a schedule announcement image",
		Long: `Generate renders the announcement image for one day.

Each STREAM argument pairs a streamer with a start time, separated by a
semicolon:

  schedgen generate quarta "vinnydays;13:00" "ponzuzuju;17:00"

Streamers must exist in the configuration's [schedgen.streamers] table,
which supplies their service, avatar image, and optional display handle.
Entries are drawn in chronological order regardless of argument order.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args[0], args[1:], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", opts.config, "style and streamer configuration file")
	cmd.Flags().StringVarP(&opts.background, "background", "b", opts.background, "background image")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output image file")

	return cmd
}

func runGenerate(ctx context.Context, weekday string, streams []string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := style.LoadConfig(opts.config)
	if err != nil {
		return err
	}
	st, err := cfg.Announcement()
	if err != nil {
		return err
	}

	day, avatars, err := buildSchedule(cfg, weekday, streams)
	if err != nil {
		return err
	}
	logger.Debugf("scheduled %d streams for %s", len(day.Schedule), day.Weekday)

	background, err := render.LoadImage(opts.background)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	canvas := render.NewCanvas(background)
	if err := render.ComposeAnnouncement(canvas, day, avatars, st); err != nil {
		return err
	}
	if err := canvas.SavePNG(opts.output); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Wrote %s", opts.output))

	return nil
}

// buildSchedule resolves the raw stream specs against the configuration's
// streamer table and returns the day's schedule, sorted chronologically,
// along with the avatar lookup for every scheduled username.
func buildSchedule(cfg *style.Config, weekday string, streams []string) (schedule.Day, schedule.Avatars, error) {
	entries := make(schedule.Schedule, 0, len(streams))
	avatars := make(schedule.Avatars, len(streams))

	for _, raw := range streams {
		spec, err := schedule.ParseStreamSpec(raw)
		if err != nil {
			return schedule.Day{}, nil, err
		}

		streamer, ok := cfg.Schedgen.Streamers[spec.Streamer]
		if !ok {
			return schedule.Day{}, nil, errors.New(errors.ErrCodeUnknownStreamer,
				"streamer %q is not in the configuration", spec.Streamer)
		}

		username := spec.Streamer
		if streamer.Username != "" {
			username = streamer.Username
		}

		entries = append(entries, schedule.Entry{
			Service:  streamer.Service,
			Username: username,
			Time:     spec.Time,
		})
		avatars[username] = streamer.Avatar
	}

	entries.SortByTime()
	return schedule.Day{Weekday: weekday, Schedule: entries}, avatars, nil
}
