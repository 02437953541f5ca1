package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"metadata-bridge/feature/integrity"
	"metadata-bridge/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on artwork storage and the catalog",
	Long:  `Checks the artwork folder structure and the catalog schema. Use the crossref subcommand to inspect one title.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, d, err := integrityService()
		if err != nil {
			return err
		}
		structureErr := runStructure(cmd, svc, d, false)
		schemaErr := runSchema(cmd, svc)
		if structureErr != nil {
			return structureErr
		}
		return schemaErr
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the artwork folder structure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, d, err := integrityService()
		if err != nil {
			return err
		}
		return runStructure(cmd, svc, d, fixFlag)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the catalog database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := integrityService()
		if err != nil {
			return err
		}
		return runSchema(cmd, svc)
	},
}

// crossrefCmd represents the integrity crossref command
var crossrefCmd = &cobra.Command{
	Use:   "crossref <animeID>",
	Short: "Check the TvDB cross references of a title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		animeID, err := strconv.Atoi(args[0])
		if err != nil || animeID <= 0 {
			return fmt.Errorf("invalid anime id %q", args[0])
		}

		svc, d, err := integrityService()
		if err != nil {
			return err
		}

		report, err := svc.CheckCrossReferences(cmd.Context(), animeID)
		if err != nil {
			return fmt.Errorf("cross reference check failed: %w", err)
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return writeJSON(cmd.OutOrStdout(), report)
		}

		if report.OK {
			d.log.Info("Cross references are consistent.", zap.Int("anime_id", animeID))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderCrossRef(report))
		return nil
	},
}

func integrityService() (*integrity.Service, *deps, error) {
	d, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}
	svc := integrity.NewService(d.storage, d.cfg.Storage.Bucket, d.cfg.Storage.ArtworkPrefix, d.db, d.catalogService(), d.log)
	return svc, d, nil
}

func runStructure(cmd *cobra.Command, svc *integrity.Service, d *deps, fix bool) error {
	logg := d.log
	logg.Info("Checking artwork folder structure...", zap.String("bucket", d.cfg.Storage.Bucket))

	missing, err := svc.CheckStructure(cmd.Context())
	if err != nil {
		return fmt.Errorf("structure check failed: %w", err)
	}

	if len(missing) == 0 {
		logg.Info("Structure is intact.")
		return nil
	}

	logg.Warn("Missing folders detected", zap.Strings("missing", missing))
	if !fix {
		logg.Info("Run with --fix to create missing folders.")
		return nil
	}

	logg.Info("Fixing missing folders...")
	if err := svc.FixStructure(cmd.Context(), missing); err != nil {
		return fmt.Errorf("failed to fix structure: %w", err)
	}
	logg.Info("Structure fixed successfully.")
	return nil
}

func runSchema(cmd *cobra.Command, svc *integrity.Service) error {
	report, err := svc.CheckSchema()
	if err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSchema(report))
	for _, e := range report.Errors {
		fmt.Fprintln(cmd.OutOrStdout(), "error:", e)
	}
	return nil
}

func renderSchema(report *checks.SchemaReport) string {
	names := make([]string, 0, len(report.Tables))
	for name := range report.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		tr := report.Tables[name]
		missing := strings.Join(tr.MissingColumns, ", ")
		if tr.MissingTable {
			missing = "(table)"
		}
		rows = append(rows, []string{name, tr.Status, missing, strings.Join(tr.TypeMismatches, "; ")})
	}

	return renderTable([]string{"Table", "Status", "Missing", "Type Mismatches"}, rows, nil)
}

func renderCrossRef(report *checks.CrossRefReport) string {
	var rows [][]string
	for _, dup := range report.Duplicates {
		rows = append(rows, []string{"duplicate start", fmt.Sprintf("%s %d claimed %d times", dup.Type, dup.Number, dup.Count)})
	}
	for _, id := range report.UnknownCatalogs {
		rows = append(rows, []string{"unknown series", strconv.Itoa(id)})
	}
	for _, sr := range report.MissingSeasons {
		rows = append(rows, []string{"missing season", fmt.Sprintf("series %d season %d", sr.SeriesID, sr.Season)})
	}
	for _, id := range report.DanglingOverrides {
		rows = append(rows, []string{"dangling override", fmt.Sprintf("episode %d", id)})
	}
	return renderTable([]string{"Problem", "Detail"}, rows, nil)
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, schemaCmd, crossrefCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")
	crossrefCmd.Flags().Bool("json", false, "Output JSON instead of a table")
}
