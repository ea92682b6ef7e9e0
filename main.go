package main

import (
	"context"
	"fmt"
	"io"
	"missensecolor/models"
	"missensecolor/models/constants/palette"
	annotationsService "missensecolor/services/annotations"
	mappingsService "missensecolor/services/mappings"
	scriptsService "missensecolor/services/scripts"
	"missensecolor/utils"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

const (
	description = "Generate ChimeraX color map commands for AlphaFold2 missense scores.\n" +
		"This tool retrieves missense scores for protein residues from either PDB entries\n" +
		"or the AlphaFold models of a UniProt entry and creates a ChimeraX script to\n" +
		"color the structure based on these scores."

	examples = "  missensecolor --pdb 7ZNJ\n" +
		"  missensecolor --uniprot P38919\n" +
		"  missensecolor --uniprot P38919 --palette viridis\n" +
		"  missensecolor --pdb 7ZNJ --debug\n" +
		"  missensecolor serve"

	outputSuffix = "_missense_coloring_chimerax.cxc"
)

type cliOptions struct {
	pdbId     string
	uniprotId string
	output    string
	palette   string
	debug     bool
}

// accession is whichever of --pdb / --uniprot was given.
func (o cliOptions) accession() string {
	if o.pdbId != "" {
		return o.pdbId
	}
	return o.uniprotId
}

func (o cliOptions) outputPath() string {
	if o.output != "" {
		return o.output
	}
	return o.accession() + outputSuffix
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	// Gather environment variables
	_ = godotenv.Load()

	var cfg models.Config
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cmd := newRootCommand(&cfg, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		utils.NewLogger(cfg.Debug, stderr).Errorf("An error occurred: %v", err)
		return 1
	}
	return 0
}

func newRootCommand(cfg *models.Config, stderr io.Writer) *cobra.Command {
	var opts cliOptions

	cmd := &cobra.Command{
		Use:           "missensecolor (--pdb ID | --uniprot ID) [flags]",
		Short:         "Color structures by AlphaMissense pathogenicity in ChimeraX",
		Long:          description,
		Example:       examples,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.Context(), cfg, opts, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.pdbId, "pdb", "", "PDB ID of the structure to process")
	flags.StringVar(&opts.uniprotId, "uniprot", "", "UniProt ID for AlphaFold model")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file for ChimeraX commands (default: <id>"+outputSuffix+")")
	flags.StringVar(&opts.palette, "palette", string(palette.Default),
		fmt.Sprintf("Color palette to use. Available palettes: %s", strings.Join(palette.NamesAsStrings(), ", ")))
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.MarkFlagsMutuallyExclusive("pdb", "uniprot")
	cmd.MarkFlagsOneRequired("pdb", "uniprot")

	cmd.AddCommand(newServeCommand(cfg, stderr))
	return cmd
}

func runScript(ctx context.Context, cfg *models.Config, opts cliOptions, stderr io.Writer) error {
	if !palette.IsKnownPalette(opts.palette) {
		return fmt.Errorf("invalid palette %q (choose from %s)", opts.palette, strings.Join(palette.NamesAsStrings(), ", "))
	}
	p := palette.CastToPalette(opts.palette)
	output := opts.outputPath()

	logger := utils.NewLogger(cfg.Debug || opts.debug, stderr)
	client := utils.NewHttpClient(cfg)
	scriptService := scriptsService.NewScriptService(
		mappingsService.NewMappingService(cfg, client, logger),
		annotationsService.NewAnnotationService(cfg, client, logger),
		logger)

	logger.Infof("Using color palette: %s", p)

	var (
		run *models.ScriptRun
		err error
	)
	if opts.pdbId != "" {
		run, err = scriptService.StructureScript(ctx, opts.pdbId, p)
	} else {
		run, err = scriptService.ModelScript(ctx, opts.uniprotId, p)
	}
	if err != nil {
		return err
	}

	if err := utils.WriteScript(output, run.Script); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	logger.Infof("ChimeraX script written to %s", output)
	return nil
}
