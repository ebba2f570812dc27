package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/dizin/schema"
)

func newDumpCmd() *cobra.Command {
	var lenient bool
	cmd := &cobra.Command{
		Use:   "dump [FILE]",
		Short: "Print the resolved schema in canonical form",
		Long: `Dump prints every definition of the resolved schema as RFC 4512
definition strings, in canonical order. Without a file argument the
standard definitions are printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s *schema.Schema
			if len(args) == 0 {
				s = schema.DefaultSchema()
			} else {
				var opts []schema.BuilderOption
				if lenient {
					opts = append(opts, schema.Lenient())
				}
				loaded, err := schema.LoadFile(args[0], opts...)
				if err != nil {
					return err
				}
				s = loaded
			}
			dumpSchema(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&lenient, "lenient", false, "exclude failing definitions instead of failing")
	return cmd
}

func dumpSchema(w io.Writer, s *schema.Schema) {
	for _, syn := range s.Syntaxes() {
		fmt.Fprintf(w, "ldapSyntaxes: %s\n", syn)
	}
	for _, mr := range s.MatchingRules() {
		fmt.Fprintf(w, "matchingRules: %s\n", mr)
	}
	for _, at := range s.AttributeTypes() {
		fmt.Fprintf(w, "attributeTypes: %s\n", at)
	}
	for _, oc := range s.ObjectClasses() {
		fmt.Fprintf(w, "objectClasses: %s\n", oc)
	}
}
