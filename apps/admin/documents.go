package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/layout"
)

func (cli *commandLine) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check every request of FILE against its mandatory field list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := cli.readRequests(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var failed int
			for i, req := range reqs {
				if err := cli.check(req); err != nil {
					failed++
					fmt.Fprintf(out, "%d. FAIL %s: %v\n", i+1, req.Reference(), err)
					continue
				}
				fmt.Fprintf(out, "%d. ok   %s\n", i+1, req.Reference())
			}
			if failed > 0 {
				return errors.Wrapf(errInvalid, "%d of %d", failed, len(reqs))
			}
			return nil
		},
	}
}

func (cli *commandLine) check(req document.Request) error {
	if err := req.Validate(cli.validate); err != nil {
		return err
	}
	return cli.svc.Validate(req, core.RequestMeta{})
}

func (cli *commandLine) layoutCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Lay out every request of FILE as draw commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := cli.readRequests(args[0])
			if err != nil {
				return err
			}
			pages := make([]layout.Page, len(reqs))
			for i, req := range reqs {
				if err := cli.check(req); err != nil {
					return errors.Wrapf(err, "request %d", i+1)
				}
				if pages[i], err = cli.svc.Layout(req, core.RequestMeta{}); err != nil {
					return errors.Wrapf(err, "request %d", i+1)
				}
			}
			return writeJSON(cmd, output, pages)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func (cli *commandLine) sheetsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sheets FILE",
		Short: "Compose the ID cards of FILE onto printable sheets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := cli.readRequests(args[0])
			if err != nil {
				return err
			}
			for i, req := range reqs {
				if err := req.Validate(cli.validate); err != nil {
					return errors.Wrapf(err, "request %d", i+1)
				}
			}
			sheets, err := cli.svc.ComposeSheets(reqs, core.RequestMeta{})
			if err != nil {
				return err
			}
			return writeJSON(cmd, output, sheets)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
