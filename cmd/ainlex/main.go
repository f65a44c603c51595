package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/coolbeans/ainlex/pkg/citation"
	"github.com/coolbeans/ainlex/pkg/grammar"
	"github.com/coolbeans/ainlex/pkg/marker"
	"github.com/coolbeans/ainlex/pkg/report"
	"github.com/coolbeans/ainlex/pkg/structure"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "ainlex",
		Short: "Bilingual statute text analyzer",
		Long: `Ainlex turns raw Bengali/English statute text into a
position-verified structural and citation-annotated representation.

It detects preamble and enactment clauses, counts section markers,
extracts citations across scripts with byte-exact offsets, classifies
the lexical relation each citation appears in, and builds a
bounds-verified section/subsection/clause tree.

All classification is advisory pattern matching; no legal force or
applicability is ever implied.`,
		Version: version,
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(citationsCmd())
	rootCmd.AddCommand(markersCmd())
	rootCmd.AddCommand(clausesCmd())
	rootCmd.AddCommand(treeCmd())
	rootCmd.AddCommand(grammarsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full analysis over a statute text",
		Long: `Run every detector over a statute text file and emit one JSON
report: content views, preamble/enactment signals, marker counts, clause
markers, citations with references metadata, and statistics.

Example:
  ainlex analyze --source act.txt
  ainlex analyze --source act.txt --grammar grammars/custom.yaml --output report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(cmd)
			if err != nil {
				return err
			}
			profile, err := resolveProfile(cmd)
			if err != nil {
				return err
			}

			result := report.Analyze(text, profile)

			if skeletonPath, _ := cmd.Flags().GetString("skeleton"); skeletonPath != "" {
				tree, err := buildTreeFromFile(skeletonPath, text)
				if err != nil {
					return err
				}
				result.AttachTree(tree)
			}
			return writeJSON(cmd, result)
		},
	}
	addCommonFlags(cmd)
	cmd.Flags().String("skeleton", "", "Section skeleton JSON to build a structure tree from")
	return cmd
}

func citationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "citations",
		Short: "Extract citations from a statute text",
		Long: `Extract every citation (Bengali and English shapes) with
byte-exact positions and emit the references metadata record.

Example:
  ainlex citations --source act.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(cmd)
			if err != nil {
				return err
			}
			profile, err := resolveProfile(cmd)
			if err != nil {
				return err
			}
			extractor := citation.NewWithProfile(profile)
			return writeJSON(cmd, citation.ReferencesMetadata(extractor.Extract(text)))
		},
	}
	addCommonFlags(cmd)
	return cmd
}

func markersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markers",
		Short: "Detect preamble/enactment markers and section counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(cmd)
			if err != nil {
				return err
			}
			profile, err := resolveProfile(cmd)
			if err != nil {
				return err
			}
			detector := marker.NewDetectorWithProfile(profile)
			return writeJSON(cmd, struct {
				Preamble       marker.ClauseSignal        `json:"preamble"`
				Enactment      marker.ClauseSignal        `json:"enactment"`
				SectionMarkers marker.SectionMarkerCounts `json:"section_markers"`
			}{
				Preamble:       detector.DetectPreamble(text),
				Enactment:      detector.DetectEnactmentClause(text),
				SectionMarkers: detector.CountSectionMarkers(text),
			})
		},
	}
	addCommonFlags(cmd)
	return cmd
}

func clausesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clauses",
		Short: "Detect parenthesized clause markers",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(cmd)
			if err != nil {
				return err
			}
			profile, err := resolveProfile(cmd)
			if err != nil {
				return err
			}
			detector := marker.NewDetectorWithProfile(profile)
			return writeJSON(cmd, detector.DetectClauses(text))
		},
	}
	addCommonFlags(cmd)
	return cmd
}

func treeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Build a bounds-verified structure tree from a skeleton",
		Long: `Build the section/subsection/clause tree from a skeleton JSON
file. The skeleton's content_raw field supplies the raw text; when absent,
--source provides it.

Example:
  ainlex tree --skeleton skeleton.json --source act.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			skeletonPath, _ := cmd.Flags().GetString("skeleton")
			if skeletonPath == "" {
				return fmt.Errorf("--skeleton flag is required")
			}

			var text string
			if source, _ := cmd.Flags().GetString("source"); source != "" {
				data, err := os.ReadFile(source)
				if err != nil {
					return fmt.Errorf("reading source: %w", err)
				}
				text = string(data)
			}

			tree, err := buildTreeFromFile(skeletonPath, text)
			if err != nil {
				return err
			}
			return writeJSON(cmd, tree)
		},
	}
	cmd.Flags().String("skeleton", "", "Section skeleton JSON file (required)")
	cmd.Flags().String("source", "", "Raw statute text file (when the skeleton omits content_raw)")
	cmd.Flags().String("output", "", "Write JSON to file instead of stdout")
	return cmd
}

func grammarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammars",
		Short: "List and validate grammar profiles in a directory",
		Long: `List the registered grammar profiles. With --dir, profiles are
loaded (and validated) from that directory on top of the built-in
defaults; with --watch, the directory is watched and reloads are
reported until interrupted.

Example:
  ainlex grammars --dir grammars/
  ainlex grammars --dir grammars/ --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			watch, _ := cmd.Flags().GetBool("watch")
			registry := grammar.NewRegistry()
			if dir != "" {
				if err := registry.LoadDirectory(dir); err != nil {
					return err
				}
			}
			for _, profile := range registry.List() {
				fmt.Printf("%s\t%s\t%d citation rules\n",
					profile.Name, profile.Version, len(profile.Citations))
			}

			if !watch {
				return nil
			}
			if dir == "" {
				return fmt.Errorf("--watch requires --dir")
			}

			registry.SetOnChange(func(event string, profile *grammar.Profile) {
				if profile != nil {
					fmt.Printf("%s\t%s\t%s\n", event, profile.Name, profile.Version)
				} else {
					fmt.Printf("%s\t(directory reloaded)\n", event)
				}
			})
			if err := registry.Watch(); err != nil {
				return err
			}
			defer registry.StopWatch()

			fmt.Fprintf(os.Stderr, "watching %s for profile changes, ctrl-c to stop\n", dir)
			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			<-interrupt
			return nil
		},
	}
	cmd.Flags().String("dir", "", "Grammar profile directory")
	cmd.Flags().Bool("watch", false, "Watch the directory and report profile reloads")
	return cmd
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", "", "Statute text file (required)")
	cmd.Flags().String("grammar", "", "Grammar profile YAML (defaults to the built-in profile)")
	cmd.Flags().String("output", "", "Write JSON to file instead of stdout")
}

func readSource(cmd *cobra.Command) (string, error) {
	source, _ := cmd.Flags().GetString("source")
	if source == "" {
		return "", fmt.Errorf("--source flag is required")
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	return string(data), nil
}

func resolveProfile(cmd *cobra.Command) (*grammar.Profile, error) {
	path, _ := cmd.Flags().GetString("grammar")
	if path == "" {
		return grammar.Default(), nil
	}
	return grammar.Load(path)
}

func buildTreeFromFile(path, contentRaw string) (*structure.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skeleton: %w", err)
	}
	var skeleton structure.Skeleton
	if err := json.Unmarshal(data, &skeleton); err != nil {
		return nil, fmt.Errorf("parsing skeleton: %w", err)
	}
	if skeleton.ContentRaw == "" {
		skeleton.ContentRaw = contentRaw
	}
	if skeleton.ContentRaw == "" {
		return nil, fmt.Errorf("skeleton has no content_raw and no --source was given")
	}
	return structure.Build(skeleton), nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := os.WriteFile(output, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}
