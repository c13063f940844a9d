// FILE: lixenwraith/settings/cmd/settingsctl/profile.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage named profiles",
		Long: `Profiles are named snapshots of the whole store. Loading a profile
replaces every stored key with the profile's content.`,
	}
	cmd.AddCommand(
		c.profileListCmd(),
		c.profileSaveCmd(),
		c.profileLoadCmd(),
		c.profileDeleteCmd(),
	)
	return cmd
}

func (c *cli) profileListCmd() *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}

			var names []string
			if pattern != "" {
				names, err = s.MatchProfiles(pattern)
			} else {
				names, err = s.Profiles()
			}
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pattern, "match", "", "glob pattern to filter names, e.g. 'work-*'")
	return cmd
}

func (c *cli) profileSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "Save the current store as a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			return s.SaveProfile(args[0])
		},
	}
}

func (c *cli) profileLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <name>",
		Short: "Replace the store with a profile and save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			if err := s.LoadProfile(args[0]); err != nil {
				return err
			}
			return s.Save()
		},
	}
}

func (c *cli) profileDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a profile",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			return s.DeleteProfile(args[0])
		},
	}
}
