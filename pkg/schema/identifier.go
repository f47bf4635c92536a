package schema

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/sr"
)

// A SchemaIdentifier resolves the registry id of a schema under subject.
type SchemaIdentifier interface {
	DetermineID(ctx context.Context, subject string, avroSchemaText string) (int, error)
}

// A RegistryIdentifier registers the schema in the schema registry. An
// already registered schema returns its existing id.
type RegistryIdentifier struct {
	cl *sr.Client
}

func NewRegistryIdentifier(urls ...string) (RegistryIdentifier, error) {
	const op = "NewRegistryIdentifier"

	cl, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		return RegistryIdentifier{}, fmt.Errorf("%s: %w", op, err)
	}
	return RegistryIdentifier{cl}, nil
}

func (r RegistryIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (int, error) {
	const op = "RegistryIdentifier.DetermineID"

	ss, err := r.cl.CreateSchema(ctx, subject, sr.Schema{
		Schema: avroSchemaText,
		Type:   sr.TypeAvro,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: subject %q: %w", op, subject, err)
	}
	return ss.ID, nil
}
