package main

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/dizin/schema"
)

func newCheckCmd() *cobra.Command {
	var lenient bool
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Check a schema file for definition errors",
		Long: `Check loads the schema definitions in an LDIF file together with the
standard definitions, resolves every cross-reference and reports each
definition that failed. With --lenient failing definitions are excluded
and reported as warnings instead of failing the check.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []schema.BuilderOption
			if lenient {
				opts = append(opts, schema.Lenient())
			}
			s, err := schema.LoadFile(args[0], opts...)
			if err != nil {
				var merr *multierror.Error
				if errors.As(err, &merr) {
					for _, e := range merr.Errors {
						logrus.Errorf("%v", e)
					}
				} else {
					logrus.Errorf("%v", err)
				}
				return fmt.Errorf("schema check failed")
			}
			for _, warn := range s.Warnings() {
				logrus.Warnf("%v", warn)
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"ok: %d syntaxes, %d matching rules, %d attribute types, %d object classes\n",
				len(s.Syntaxes()), len(s.MatchingRules()), len(s.AttributeTypes()), len(s.ObjectClasses()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&lenient, "lenient", false, "exclude failing definitions instead of failing")
	return cmd
}
