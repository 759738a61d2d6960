// Command rdfxmlcat decodes an RDF/XML document and writes it out as
// N-Quads, one line per quad.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-rdf/rdfxml"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		base     string
		strict   bool
		allowDup bool
	)

	cmd := &cobra.Command{
		Use:   "rdfxmlcat [file]",
		Short: "Decode RDF/XML into N-Quads",
		Long:  "rdfxmlcat reads an RDF/XML document from a file or stdin and writes each decoded quad to stdout in N-Quads form.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			opts := []rdfxml.Option{
				rdfxml.Strict(strict),
				rdfxml.AllowDuplicateRdfIDs(allowDup),
			}
			if base != "" {
				opts = append(opts, rdfxml.WithBaseIRI(base))
			}

			dec := rdfxml.NewDecoder(r, opts...)
			w := bufio.NewWriter(cmd.OutOrStdout())
			defer w.Flush()

			for {
				q, err := dec.Decode()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(w, q.String())
			}
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "base IRI to resolve relative references against")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject constructs the lenient default tolerates")
	cmd.Flags().BoolVar(&allowDup, "allow-duplicate-ids", false, "do not error on a repeated rdf:ID")

	return cmd
}
