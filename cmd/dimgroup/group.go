// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dimgroup/groupby"
	"github.com/katalvlaran/dimgroup/internal/querydoc"
	"github.com/katalvlaran/dimgroup/ndarray"
)

func (c *cli) groupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group <file|->",
		Short: "Group the array described by a YAML document",
		Long: `Reads a grouping document (from a file, or stdin for "-"), partitions the
array along every groupby entry and prints one line per group.

--reduce overrides the document's reduce field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGroup(cmd, args[0])
		},
	}
	cmd.Flags().IntP(keyWorkers, "w", 1, "Goroutines used to evaluate grouping keys")
	cmd.Flags().StringP(keyReduce, "r", "", "Reducer applied to every group: sum|mean|min|max|var|std|count")

	return cmd
}

func (c *cli) runGroup(cmd *cobra.Command, path string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), c.v.GetString(keyLogLevel), c.v.GetString(keyLogFormat))
	if err != nil {
		return err
	}
	output := c.v.GetString(keyOutput)
	if output != outputText && output != outputYAML {
		return fmt.Errorf("unknown output format %q (want text or yaml)", output)
	}
	workers := c.v.GetInt(keyWorkers)
	if workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", workers)
	}

	doc, err := readDocument(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	src, err := doc.Array()
	if err != nil {
		return err
	}
	queries, err := doc.Queries()
	if err != nil {
		return err
	}
	op, err := c.reducer(doc)
	if err != nil {
		return err
	}
	logger.Info("grouping", "source", src.String(), "queries", len(queries), "workers", workers)

	g, err := groupby.Group(src, queries, groupby.WithWorkers(workers), groupby.WithLogger(logger))
	if err != nil {
		return err
	}
	res, err := querydoc.Summarize(g, op)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output == outputYAML {
		return querydoc.EncodeYAML(out, res)
	}

	return querydoc.EncodeText(out, res)
}

// reducer resolves the --reduce flag, falling back to the document field.
// A nil result means no reduction.
func (c *cli) reducer(doc *querydoc.Document) (*ndarray.Reducer, error) {
	if name := c.v.GetString(keyReduce); name != "" {
		op, err := ndarray.ParseReducer(name)
		if err != nil {
			return nil, err
		}
		return &op, nil
	}
	op, ok, err := doc.Reducer()
	if err != nil || !ok {
		return nil, err
	}

	return &op, nil
}

func readDocument(stdin io.Reader, path string) (*querydoc.Document, error) {
	if path == "-" {
		return querydoc.Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	doc, err := querydoc.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
