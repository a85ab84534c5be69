package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/grading"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/numwords"
)

func (cli *commandLine) gradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grade BOARD [PERCENTAGE]",
		Short: "Print a board's grade scale, or the grade of a percentage",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, ok := grading.ParseBoard(args[0])
			if !ok {
				return &grading.GradeLookupError{Board: board}
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				bands, err := grading.Scale(board)
				if err != nil {
					return err
				}
				for _, b := range bands {
					fmt.Fprintf(out, "%-3s %-7s %4g  %s\n", b.Grade, b.Range(), b.GradePoint, b.Description)
				}
				return nil
			}

			pct, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Errorf("%q is not a percentage", args[1])
			}
			band, err := grading.GradeFor(pct, board)
			if err != nil {
				return err
			}
			result := "failed"
			if grading.Passed(pct) {
				result = "passed"
			}
			fmt.Fprintf(out, "%s (%s), grade point %g, %s, %s\n",
				band.Grade, band.Range(), band.GradePoint, band.Description, result)
			return nil
		},
	}
}

func (cli *commandLine) cgpaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cgpa POINT...",
		Short: "Average grade points into a CGPA",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points := make([]float64, len(args))
			for i, arg := range args {
				gp, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return errors.Errorf("%q is not a grade point", arg)
				}
				if gp < 0 || gp > 10 {
					return errors.Errorf("grade point %g outside [0,10]", gp)
				}
				points[i] = gp
			}
			cgpa, err := grading.CGPA(points)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", cgpa)
			return nil
		},
	}
}

func (cli *commandLine) wordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words AMOUNT",
		Short: "Spell out a rupee amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return errors.Errorf("%q is not a whole number of rupees", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, numwords.ToWords(n))
			fmt.Fprintln(out, numwords.RupeesInWords(n))
			fmt.Fprintln(out, numwords.FormatRupees(n))
			return nil
		},
	}
}
