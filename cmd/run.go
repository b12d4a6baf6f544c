package cmd

import (
	"fmt"
	"os"

	"github.com/bmatsuo/subscheme/eval"
	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/parser"
	"github.com/bmatsuo/subscheme/proc"
	"github.com/bmatsuo/subscheme/symbol"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run scheme code",
	Long:  `Run scheme code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		table := symbol.DefaultGlobalTable
		env := proc.NewDefaultGlobal(table)
		ev := eval.New()
		p := parser.New(table)
		for i := range exprs {
			vals, _, err := p.ParseLVal(exprs[i])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, v := range vals {
				result, err := ev.Eval(v, env)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				if runPrint {
					fmt.Println(lisp.FormatString(result, table))
				}
			}
		}
	},
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as scheme expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
