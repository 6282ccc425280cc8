package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosap/internal/results"
	"github.com/alexiusacademia/gosap/internal/tableio"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Shell force table averaging and slab design moments",
	Long: `Post-process shell element force tables exported from SAP2000.

Subcommands:
  average  - Average nodal results over joints shared by several elements
  design   - Wood-Armer design moments for every joint

Tables are read from and written to CSV, JSON, YAML or XLSX files;
the format follows the file extension.`,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// loadResults reads a result table and keeps the requested load cases.
// When cases is empty the cases selected in the configuration apply.
func loadResults(path string, cases []string) (*results.Table, error) {
	t, err := tableio.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading results: %w", err)
	}
	logger.Info("results loaded",
		zap.String("file", path),
		zap.Int("rows", len(t.Rows)),
		zap.Strings("fields", t.Fields),
	)

	if len(cases) == 0 {
		cases = opts.LoadCases
	}
	if len(cases) > 0 {
		t.Rows = results.SelectCases(t.Rows, cases)
		logger.Info("load cases selected", zap.Strings("cases", cases), zap.Int("rows", len(t.Rows)))
	}
	return t, nil
}

// averageResults merges rows sharing a key. Field selection order: explicit
// fields, then the named schema, then the configured fields, then the
// table defaults.
func averageResults(t *results.Table, groupBy, fields []string, schema string) (*results.Table, error) {
	if len(groupBy) == 0 {
		groupBy = conf.Average.GroupBy
	}
	if len(fields) == 0 && schema != "" {
		var err error
		if fields, err = results.SchemaFields(schema, t); err != nil {
			return nil, err
		}
	}
	if len(fields) == 0 {
		fields = conf.Average.Fields
	}
	if len(fields) == 0 {
		fields = results.DefaultFields(t)
	}

	a := &results.Averager{
		GroupBy:       groupBy,
		Fields:        fields,
		ProgressEvery: conf.Average.ProgressEvery,
		Progress: func(done, total int) {
			logger.Info("averaging", zap.Int("done", done), zap.Int("total", total))
		},
	}
	avg, err := a.AverageTable(t)
	if err != nil {
		return nil, fmt.Errorf("error averaging results: %w", err)
	}
	logger.Info("results averaged",
		zap.Int("rows_in", len(t.Rows)),
		zap.Int("rows_out", len(avg.Rows)),
		zap.Strings("fields", fields),
	)
	return avg, nil
}

func saveResults(path string, t *results.Table) error {
	if err := tableio.WriteFile(path, t); err != nil {
		return fmt.Errorf("error saving results: %w", err)
	}
	logger.Info("results saved", zap.String("file", path), zap.Int("rows", len(t.Rows)))
	return nil
}
