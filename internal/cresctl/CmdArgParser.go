/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package cresctl

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"CraneResCtl/internal/util"
)

var (
	FlagConfigFilePath string
	FlagDebugLevel     string
	FlagCores          string
	FlagTasks          string
	FlagInterface      string
	FlagMax            uint
	FlagNoHeader       bool
	FlagJson           bool
	FlagQuery          string

	RootCmd = &cobra.Command{
		Use:   "cresctl [flags]",
		Short: "Expand hardware resource identifier lists",
		Long:  "",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(0)(cmd, args); err != nil {
				return err
			}

			if FlagCores == "" && FlagTasks == "" {
				return fmt.Errorf("at least one of --cores and --tasks should be given")
			}

			for _, spec := range []string{FlagCores, FlagTasks} {
				if spec != "" && !util.CheckListSpec(spec) {
					return fmt.Errorf("identifier list must follow the format "+
						"'<id>[,<id>...]' with optional '<id>-<id>' ranges, "+
						"decimal or 0x-prefixed hexadecimal: %q", spec)
				}
			}

			if FlagInterface != "" && FlagInterface != "msr" && FlagInterface != "os" {
				return fmt.Errorf("invalid interface %q, valid values are 'msr' and 'os'",
					FlagInterface)
			}

			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(Run())
		},
	}
)

func ParseCmdArgs() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(util.ErrorGeneric)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&FlagConfigFilePath, "config", "C",
		util.DefaultConfigPath, "Path to configuration file")
	RootCmd.PersistentFlags().StringVarP(&FlagDebugLevel, "debug-level", "D",
		"info", "Available debug level: trace, debug, info, warn, error")

	RootCmd.Flags().StringVarP(&FlagCores, "cores", "m", "",
		"Specify core ids to expand (comma separated list, A-B ranges allowed)")
	RootCmd.Flags().StringVarP(&FlagTasks, "tasks", "p", "",
		"Specify task ids to expand (comma separated list, A-B ranges allowed)")
	RootCmd.Flags().StringVarP(&FlagInterface, "iface", "I", "",
		"Override the configured library interface, 'msr' or 'os'")
	RootCmd.Flags().UintVar(&FlagMax, "max", 0,
		"Maximum number of core entries, 0 uses the configured limit")
	RootCmd.Flags().BoolVarP(&FlagNoHeader, "noheader", "N", false,
		"Do not print header line in the output")
	RootCmd.Flags().BoolVar(&FlagJson, "json", false,
		"Output in JSON format")
	RootCmd.Flags().StringVarP(&FlagQuery, "query", "Q", "",
		"Print only the JSON field at the given path (implies --json)")
}
