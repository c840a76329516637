/*
Copyright © 2025 the seaice authors.
This file is part of seaice.

seaice is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

seaice is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with seaice.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package seaiceutil provides the command-line interface for
// preprocessing NSIDC passive microwave sea ice data files.
package seaiceutil

import (
	"github.com/spf13/cobra"
)

// Root is the main command.
var Root = &cobra.Command{
	Use:   "seaice",
	Short: "seaice prepares NSIDC sea ice data for analysis.",
	Long: `seaice is a tool for preprocessing NSIDC passive microwave
sea ice concentration data files. Refer to the subcommand documentation
for usage.`,
	SilenceUsage: true,
}

func init() {
	preprocCmd.Flags().StringVar(&dataset, "dataset", "",
		"Dataset to preprocess. Valid options are \"nsidc0051\", \"cdr\", and \"appx\".")
	preprocCmd.Flags().StringVar(&inputFile, "in", "",
		"Path of the NetCDF file to preprocess.")
	preprocCmd.Flags().StringVar(&outputFile, "out", "",
		"Path where the preprocessed NetCDF file should be written.")
	preprocCmd.Flags().StringVar(&configFile, "config", "",
		"Path of the configuration file. Optional; flags override configuration file values.")
	Root.AddCommand(preprocCmd)
	Root.AddCommand(versionCmd)
}

var (
	dataset    string
	inputFile  string
	outputFile string
	configFile string
)

// Version holds the release version, set at build time.
var Version = "development"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Printf("seaice v%s\n", Version)
		return nil
	},
}

var preprocCmd = &cobra.Command{
	Use:   "preproc",
	Short: "Preprocess a sea ice data file.",
	Long: `preproc reads an NSIDC sea ice data file, resolves the valid
concentration range, extracts the non-geophysical flag mask, recodes
the concentration variable, and writes the result to a new NetCDF
file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configFile)
		if err != nil {
			return err
		}
		if dataset != "" {
			cfg.Dataset = dataset
		}
		if inputFile != "" {
			cfg.InputFile = inputFile
		}
		if outputFile != "" {
			cfg.OutputFile = outputFile
		}
		return Preproc(cfg)
	},
	DisableAutoGenTag: true,
}
