package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/prism/pkg/config"
	"github.com/ajitpratap0/prism/pkg/display"
	"github.com/ajitpratap0/prism/pkg/fieldconfig"
	jsonpool "github.com/ajitpratap0/prism/pkg/json"
	"github.com/ajitpratap0/prism/pkg/logger"
	"github.com/ajitpratap0/prism/pkg/matchers"
	"github.com/ajitpratap0/prism/pkg/models"
	"github.com/ajitpratap0/prism/pkg/processors"
	"github.com/ajitpratap0/prism/pkg/reducers"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	var logLevel string

	root := &cobra.Command{
		Use:   "prism",
		Short: "Prism - field configuration resolution for tabular data",
		Long: `Prism computes per-field display configuration for tabular data series.
Global defaults and ordered override rules are merged per field, numeric
bounds can be derived from the data, and every field gets a display processor.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{Level: logLevel, Encoding: "console"})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Prism v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered matchers, property processors and reducers",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Field matchers:")
			for _, id := range matchers.List() {
				fmt.Printf("  - %s\n", id)
			}
			fmt.Println("\nConfiguration properties:")
			for _, path := range processors.List() {
				fmt.Printf("  - %s\n", path)
			}
			fmt.Println("\nReducers:")
			for _, id := range reducers.List() {
				fmt.Printf("  - %s\n", id)
			}
		},
	})

	root.AddCommand(newResolveCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newResolveCommand() *cobra.Command {
	var (
		dataPath   string
		configPath string
		autoMinMax bool
		render     bool
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve field configuration for a dataset",
		Long: `Resolve loads tabular data (CSV or JSON) and a field configuration
document (YAML), applies defaults and override rules to every field,
and prints the resolved series as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadSeries(dataPath)
			if err != nil {
				return err
			}

			doc, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("auto-min-max") {
				doc.AutoMinMax = autoMinMax
			}

			logger.Info("resolving field configuration",
				zap.String("data", dataPath),
				zap.String("config", configPath),
				zap.Int("series", len(data)),
				zap.Bool("auto_min_max", doc.AutoMinMax))

			resolver := fieldconfig.NewResolver(fieldconfig.Deps{})
			resolved := resolver.Resolve(fieldconfig.ResolveOptions{
				Data:             data,
				FieldOptions:     &doc.FieldConfig,
				AutoMinMax:       doc.AutoMinMax,
				Theme:            display.ThemeByName(doc.Theme),
				ReplaceVariables: os.ExpandEnv,
			})

			if render {
				renderValues(resolved)
			}

			var out []byte
			if pretty {
				out, err = jsonpool.MarshalIndent(resolved, "", "  ")
			} else {
				out, err = jsonpool.Marshal(resolved)
			}
			if err != nil {
				return err
			}

			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Path to data file (.csv or .json)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to field configuration YAML")
	cmd.Flags().BoolVar(&autoMinMax, "auto-min-max", false, "Derive missing min/max from the data extent")
	cmd.Flags().BoolVar(&render, "render", false, "Replace raw values with display-processed text")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// renderValues runs every value through its field's display processor so the
// output shows formatted text instead of raw values.
func renderValues(resolved []*models.Series) {
	for _, series := range resolved {
		for _, field := range series.Fields {
			if field.Display == nil {
				continue
			}
			rendered := make([]interface{}, len(field.Values))
			for i, v := range field.Values {
				rendered[i] = field.Display(v).Text
			}
			field.Values = rendered
		}
	}
}
