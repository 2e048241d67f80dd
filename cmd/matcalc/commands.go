// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linal/dyn"
	"github.com/katalvlaran/linal/fixed"
)

// parseMatrixArg parses one positional argument with the configured
// delimiter and logs the derived shape at debug level.
func parseMatrixArg(arg string) (*dyn.Matrix[float64], error) {
	m, err := dyn.ParseMatrix[float64](arg, dyn.WithColumnDelimiter(colDelim))
	if err != nil {
		return nil, fmt.Errorf("argument %q: %w", arg, err)
	}
	rows, cols := m.Size()
	logger.Debug("parsed matrix", "rows", rows, "cols", cols)

	return m, nil
}

var addCmd = &cobra.Command{
	Use:   "add <matrix> <matrix>",
	Short: "Elementwise sum of two matrices",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseMatrixArg(args[0])
		if err != nil {
			return err
		}
		b, err := parseMatrixArg(args[1])
		if err != nil {
			return err
		}
		sum, err := a.Add(b)
		if err != nil {
			return err
		}
		cmd.Print(sum)

		return nil
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <matrix> <matrix>",
	Short: "Elementwise difference of two matrices",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseMatrixArg(args[0])
		if err != nil {
			return err
		}
		b, err := parseMatrixArg(args[1])
		if err != nil {
			return err
		}
		diff, err := a.Sub(b)
		if err != nil {
			return err
		}
		cmd.Print(diff)

		return nil
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul <matrix> <matrix>",
	Short: "Matrix product",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseMatrixArg(args[0])
		if err != nil {
			return err
		}
		b, err := parseMatrixArg(args[1])
		if err != nil {
			return err
		}
		p, err := a.Mul(b)
		if err != nil {
			return err
		}
		cmd.Print(p)

		return nil
	},
}

var detCmd = &cobra.Command{
	Use:   "det <matrix>",
	Short: "Closed-form determinant (square, dimension 1-3)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := parseMatrixArg(args[0])
		if err != nil {
			return err
		}
		d, err := determinant(m)
		if err != nil {
			return err
		}
		cmd.Println(d)

		return nil
	},
}

// determinant bridges the runtime-shaped matrix into the fixed family, whose
// Det owns the closed forms. Each supported dimension is a distinct fixed
// instantiation, so the dispatch is an explicit switch.
func determinant(m *dyn.Matrix[float64]) (float64, error) {
	rows, cols := m.Size()
	if rows != cols {
		return 0, fmt.Errorf("determinant needs a square matrix, got %dx%d", rows, cols)
	}
	switch rows {
	case 1:
		f, err := dyn.ToFixed[fixed.D1, fixed.D1](m)
		if err != nil {
			return 0, err
		}
		return fixed.Det(f)
	case 2:
		f, err := dyn.ToFixed[fixed.D2, fixed.D2](m)
		if err != nil {
			return 0, err
		}
		return fixed.Det(f)
	case 3:
		f, err := dyn.ToFixed[fixed.D3, fixed.D3](m)
		if err != nil {
			return 0, err
		}
		return fixed.Det(f)
	default:
		return 0, fmt.Errorf("determinant supports dimensions 1-3, got %d", rows)
	}
}

var showTransposed bool

var showCmd = &cobra.Command{
	Use:   "show <matrix>",
	Short: "Pretty-print a matrix in a framed grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := parseMatrixArg(args[0])
		if err != nil {
			return err
		}
		if showTransposed {
			m = m.Transpose()
		}
		cmd.Println(renderGrid(m))

		return nil
	},
}

var vecCmd = &cobra.Command{
	Use:   "vec",
	Short: "Vector operations",
}

var vecDotCmd = &cobra.Command{
	Use:   "dot <vector> <vector>",
	Short: "Inner product of two vectors",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := dyn.ParseVector[float64](args[0])
		if err != nil {
			return fmt.Errorf("argument %q: %w", args[0], err)
		}
		y, err := dyn.ParseVector[float64](args[1])
		if err != nil {
			return fmt.Errorf("argument %q: %w", args[1], err)
		}
		logger.Debug("parsed vectors", "len", x.Len())
		d, err := x.Dot(y)
		if err != nil {
			return err
		}
		cmd.Println(d)

		return nil
	},
}

func init() {
	showCmd.Flags().BoolVarP(&showTransposed, "transpose", "t", false, "render the transpose")
	vecCmd.AddCommand(vecDotCmd)
}
