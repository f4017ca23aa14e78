package variants

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.trai.ch/zerr"
)

//go:embed variants.schema.json
var schemaJSON []byte

var (
	compiled    *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

func compileSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = zerr.Wrap(err, "failed to unmarshal variants schema")
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("variants.schema.json", doc); err != nil {
			compileErr = zerr.Wrap(err, "failed to add variants schema resource")
			return
		}
		compiled, compileErr = compiler.Compile("variants.schema.json")
	})
	return compiled, compileErr
}

// validate checks a decoded variants document against the embedded
// schema. The document is round-tripped through JSON so the validator
// sees canonical value types.
func validate(doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return zerr.Wrap(err, "failed to canonicalize variants document")
	}
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return zerr.Wrap(err, "failed to canonicalize variants document")
	}
	if err := schema.Validate(value); err != nil {
		return zerr.Wrap(err, "variants file failed schema validation")
	}
	return nil
}
