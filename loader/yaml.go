package loader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate = validator.New()

// document is the YAML shape of a Problem.
//
//	nodes: 3
//	start: 0
//	end: 2
//	edges:
//	  - {u: 0, v: 1, weight: 4}
//	  - {u: 1, v: 2, weight: 4}
//
// A full "matrix" (n rows of n weights, -1 for no edge) may be given instead
// of, or in addition to, "edges"; edges are applied after the matrix.
type document struct {
	Nodes  int       `yaml:"nodes" validate:"required,min=1,max=32768"`
	Start  *int      `yaml:"start" validate:"required,min=0"`
	End    *int      `yaml:"end" validate:"required,min=0"`
	Matrix [][]int64 `yaml:"matrix" validate:"omitempty,dive,dive,min=-1"`
	Edges  []edgeDoc `yaml:"edges" validate:"omitempty,dive"`
}

type edgeDoc struct {
	U      *int  `yaml:"u" validate:"required,min=0"`
	V      *int  `yaml:"v" validate:"required,min=0"`
	Weight int64 `yaml:"weight" validate:"min=0"`
}

// ReadYAML parses the YAML problem format from r.
// Edge weights must be non-negative; omit an edge to leave it absent.
func ReadYAML(r io.Reader, opts ...Option) (*Problem, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, formatValidationError(err))
	}

	rows := doc.Matrix
	if rows == nil {
		rows = emptyMatrix(doc.Nodes)
	} else if len(rows) != doc.Nodes {
		return nil, fmt.Errorf("%w: matrix has %d rows, nodes=%d", ErrMalformed, len(rows), doc.Nodes)
	}
	g, err := fromMatrix(rows, opts...)
	if err != nil {
		return nil, err
	}

	for i, e := range doc.Edges {
		if err = g.SetEdge(*e.U, *e.V, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %v", ErrMalformed, i, err)
		}
	}

	return newProblem(g, int64(*doc.Start), int64(*doc.End))
}

func emptyMatrix(n int) [][]int64 {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = -1
		}
	}

	return rows
}

// formatValidationError flattens validator field errors into one line.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
		}
	}

	return strings.Join(msgs, "; ")
}
