package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	pegtl "github.com/TechPenguineer/PEGTL"
	"github.com/TechPenguineer/PEGTL/json"
)

// grammars maps the names accepted on the command line to built-in
// grammar entry points.
var grammars = map[string]pegtl.Rule{
	"json": json.Text,
}

func grammarByName(name string) (pegtl.Rule, error) {
	g, ok := grammars[name]
	if !ok {
		return nil, fmt.Errorf("unknown grammar %q", name)
	}
	return g, nil
}

func main() {
	root := &cobra.Command{
		Use:           "pegtl",
		Short:         "Run and inspect PEG grammars",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(matchCmd(), checkCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func matchCmd() *cobra.Command {
	var (
		trace    bool
		tree     bool
		messages string
	)
	cmd := &cobra.Command{
		Use:   "match <grammar> <input-file>",
		Short: "Match an input file against a built-in grammar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := grammarByName(args[0])
			if err != nil {
				return err
			}

			fs := afero.NewOsFs()
			in, err := pegtl.NewFileInput(fs, args[1])
			if err != nil {
				return err
			}

			var opts []pegtl.Option
			if messages != "" {
				m, err := pegtl.LoadMessages(fs, messages)
				if err != nil {
					return err
				}
				opts = append(opts, pegtl.WithMessages(m))
			}

			var control pegtl.Control = pegtl.DefaultControl{}
			var treeCtl *pegtl.TreeControl
			if tree {
				treeCtl = pegtl.NewTreeControl(control)
				control = treeCtl
			}
			if trace {
				log, err := traceLogger()
				if err != nil {
					return err
				}
				defer log.Sync()
				control = pegtl.NewTraceControl(control, log)
			}
			opts = append(opts, pegtl.WithControl(control))

			if err := pegtl.Run(grammar, in, opts...); err != nil {
				return err
			}
			fmt.Println("ok")
			if treeCtl != nil {
				if node := treeCtl.Root(); node != nil {
					fmt.Print(pegtl.PrintNode(node))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "log every rule invocation")
	cmd.Flags().BoolVar(&tree, "tree", false, "print the parse tree of named rules")
	cmd.Flags().StringVar(&messages, "messages", "", "YAML file mapping rule names to error messages")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <grammar>",
		Short: "Statically analyze a built-in grammar for structural hazards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := grammarByName(args[0])
			if err != nil {
				return err
			}
			problems := pegtl.Analyze(grammar)
			if len(problems) == 0 {
				fmt.Println("ok")
				return nil
			}
			for _, p := range problems {
				fmt.Println(p)
			}
			return fmt.Errorf("%d problem(s) found", len(problems))
		},
	}
}

func traceLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
