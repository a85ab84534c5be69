package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/docgen"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
)

var (
	errHelp    = errors.New("help provided")
	errInvalid = errors.New("invalid requests")
)

type commandLine struct {
	svc      docgen.ServiceInterface
	validate *validator.Validate
	out      io.Writer
}

func (cli *commandLine) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Check, lay out and compose school documents from request files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errHelp
		},
	}
	root.SetOut(cli.out)

	root.AddCommand(cli.validateCommand())
	root.AddCommand(cli.layoutCommand())
	root.AddCommand(cli.sheetsCommand())
	root.AddCommand(cli.gradeCommand())
	root.AddCommand(cli.cgpaCommand())
	root.AddCommand(cli.wordsCommand())
	return root
}

// run executes the command line; args[0] is the program name.
func (cli *commandLine) run(args []string) error {
	root := cli.rootCommand()
	root.SetArgs(args[1:])
	return root.Execute()
}

// readRequests decodes a YAML or JSON request file and fills the defaults.
func (cli *commandLine) readRequests(path string) ([]document.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reqs, err := document.DecodeRequests(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	for i, req := range reqs {
		reqs[i] = cli.svc.Prepare(req)
	}
	return reqs, nil
}

// writeJSON writes v to path, or to the command output when path is empty.
func writeJSON(cmd *cobra.Command, path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding output")
	}
	data = append(data, '\n')
	if path == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
