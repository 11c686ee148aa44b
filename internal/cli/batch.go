package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/infovalid/pkg/logger"
	"github.com/dmitrymomot/infovalid/pkg/validator"
)

var (
	// ErrEmptyBatch is returned when the batch document has no content.
	ErrEmptyBatch = errors.New("batch input is empty")

	// ErrInvalidBatch is returned when the batch document is not a kind -> values mapping.
	ErrInvalidBatch = errors.New("invalid batch document")
)

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Check values listed in a YAML document",
		Long: `Read a YAML mapping of kind to values from file, or from stdin when file
is omitted or "-", and check every value. A kind may map to a single value
or a list.

  mobile:
    - 13800138000
    - 23800138000
  id_number: 11010519491231002X`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, r, closeFn, err := a.openBatch(args)
			if err != nil {
				return err
			}
			defer closeFn()

			results, err := parseBatch(r)
			if err != nil {
				return fmt.Errorf("%s: %w", src, err)
			}

			rep := newReport(results)
			a.log.Info("batch finished", logger.Source(src), logger.Counts(rep.Passed, rep.Failed))
			return a.write(rep)
		},
	}
}

func (a *app) openBatch(args []string) (string, io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return "stdin", a.in, func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return "", nil, nil, err
	}
	return args[0], f, func() { _ = f.Close() }, nil
}

// parseBatch decodes a kind -> value(s) mapping and checks each value in
// document order. Scalars are taken verbatim, so "007" stays "007".
func parseBatch(r io.Reader) ([]result, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBatch
		}
		return nil, errors.Join(ErrInvalidBatch, err)
	}
	if len(doc.Content) == 0 {
		return nil, ErrEmptyBatch
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of kind to values", ErrInvalidBatch, root.Line)
	}

	var results []result
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		kind, err := validator.ParseKind(keyNode.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", keyNode.Line, err)
		}

		values, err := scalarValues(valNode)
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			results = append(results, check(kind, v))
		}
	}
	return results, nil
}

func scalarValues(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		values := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: expected a scalar value", ErrInvalidBatch, item.Line)
			}
			values = append(values, item.Value)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("%w: line %d: expected a value or a list of values", ErrInvalidBatch, n.Line)
	}
}
