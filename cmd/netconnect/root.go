/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"os"
	"strings"

	"dirpx.dev/netconnect/nccore/config"
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "netconnect",
		Short: "NetConnect - contact manager for clients, employees and suppliers",
		Long: `NetConnect keeps the people a business works with in one address book
and records which of them are related.

Run without arguments to start the interactive prompt. Type "help" at the
prompt to list the available commands.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			return runREPL(cmd.Context(), l, cmd.InOrStdin(), newTerminal(cmd.OutOrStdout(), a.cfg.UI))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is "+config.DefaultFilename+" in the user config directory)")
	flags.StringVar(&a.dataPath, "data", "", "address book file, overrides storage.path")
	flags.StringVar(&a.backend, "backend", "", "storage backend: yaml or sqlite")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newExecCmd(a), newConfigCmd(a))
	return root
}

func newExecCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec [command]",
		Short: "Run a single command and exit",
		Long: `Runs one NetConnect command, prints its result and the listed persons,
and exits. Quote the command or pass it as separate arguments.

Example:
  netconnect exec "find n/Meier"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			term := newTerminal(cmd.OutOrStdout(), a.cfg.UI)

			res, err := l.Execute(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				term.failure(err)
				return err
			}
			term.result(res)
			term.persons(l.ActiveFilter(), l.FilteredPersons())
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			}
			if err := a.cfg.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration and data file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config:  %s\n", a.resolvedConfigPath())
			fmt.Fprintf(out, "data:    %s (%s)\n", a.cfg.Storage.Path, a.cfg.Storage.Backend)
			fmt.Fprintf(out, "exports: %s\n", a.cfg.Export.Dir)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, pathCmd)
	return configCmd
}
