// FILE: lixenwraith/settings/cmd/settingsctl/commands.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/settings"
)

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under a key as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			v, err := settings.Get[settings.Value](s, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
}

func (c *cli) setCmd() *cobra.Command {
	var (
		raw     bool
		ifEmpty bool
	)
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a value under a key and save",
		Long: `Store a value under a key and save the store.

The value is read as JSON when it looks like JSON (null, arrays, objects,
quoted strings), then as a bool, integer or float, and otherwise as a plain
string. Use --raw to always store a string.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}

			v := settings.String(args[1])
			if !raw {
				if v, err = parseValue(args[1]); err != nil {
					return err
				}
			}

			if ifEmpty {
				if !settings.SetIfEmpty(s, args[0], v) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s already set\n", args[0])
					return nil
				}
			} else {
				s.SetValue(args[0], v)
			}
			return s.Save()
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "store the value as a string without parsing")
	cmd.Flags().BoolVar(&ifEmpty, "if-empty", false, "only set when the key is absent")
	return cmd
}

func (c *cli) typeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <key>",
		Short: "Print the kind of the value stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			kind, err := s.Type(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), kind)
			return nil
		},
	}
}

func (c *cli) keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			for _, key := range s.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}

func (c *cli) dumpCmd() *cobra.Command {
	var debug bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the whole store in its file format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			if debug {
				fmt.Fprint(cmd.OutOrStdout(), s.Debug())
				return nil
			}
			return s.Dump(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "print kinds and paths instead of the file format")
	return cmd
}
