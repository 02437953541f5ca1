package cmd

import (
	"fmt"
	"io"
	"strconv"

	"metadata-bridge/core/reconcile"
	"metadata-bridge/feature/catalog"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// resolveCmd resolves episode metadata from the command line.
var resolveCmd = &cobra.Command{
	Use:   "resolve <animeID> [episodeID]",
	Short: "Resolve TvDB metadata for an AniDB title or episode",
	Long: `Resolves every episode of an AniDB title, or a single episode when an
episode ID is given, and prints the merged metadata.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		animeID, err := strconv.Atoi(args[0])
		if err != nil || animeID <= 0 {
			return fmt.Errorf("invalid anime id %q", args[0])
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")

		d, err := bootstrap()
		if err != nil {
			return err
		}
		defer d.log.Sync()
		svc := d.catalogService()
		out := cmd.OutOrStdout()

		if len(args) == 2 {
			episodeID, err := strconv.Atoi(args[1])
			if err != nil || episodeID <= 0 {
				return fmt.Errorf("invalid episode id %q", args[1])
			}
			md, err := svc.GetEpisodeMetadata(cmd.Context(), episodeID)
			if err != nil {
				return err
			}
			if md.AnimeID != animeID {
				return fmt.Errorf("episode %d belongs to anime %d, not %d", episodeID, md.AnimeID, animeID)
			}
			if jsonOutput {
				return writeJSON(out, md)
			}
			fmt.Fprintln(out, renderEpisodes([]catalog.EpisodeMetadata{*md}))
			return nil
		}

		list, err := svc.GetAnimeEpisodes(cmd.Context(), animeID)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(out, list)
		}
		fmt.Fprintf(out, "%s (%d)\n", list.MainTitle, list.AnimeID)
		fmt.Fprintln(out, renderEpisodes(list.Episodes))
		return nil
	},
}

func renderEpisodes(eps []catalog.EpisodeMetadata) string {
	rows := make([][]string, 0, len(eps))
	for _, ep := range eps {
		tvdb := "-"
		if ep.AlternateEpisodeID != 0 {
			tvdb = fmt.Sprintf("S%02dE%02d (%d)", ep.AlternateSeason, ep.AlternateNumber, ep.AlternateEpisodeID)
		}
		image := "-"
		if !ep.Image.IsNone() {
			image = strconv.Itoa(ep.Image.ID)
		}
		rows = append(rows, []string{
			strconv.Itoa(ep.EpisodeID),
			ep.Type,
			strconv.Itoa(ep.Number),
			ep.Source,
			tvdb,
			ep.Title,
			overviewSummary(ep.Overview),
			image,
		})
	}

	return renderTable(
		[]string{"ID", "Type", "No", "Source", "TvDB", "Title", "Overview", "Image"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
}

func overviewSummary(s string) string {
	if s == reconcile.OverviewPlaceholder {
		return "(placeholder)"
	}
	r := []rune(s)
	if len(r) > 40 {
		return string(r[:37]) + "..."
	}
	return s
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func init() {
	RootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().Bool("json", false, "Output JSON instead of a table")
}
