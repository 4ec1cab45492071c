// Package openapi embeds the HTTP contract. The same document drives request
// validation and the Swagger UI.
package openapi

import (
	"context"
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var raw []byte

var (
	once    sync.Once
	loaded  *openapi3.T
	errLoad error
)

// Spec returns the parsed and validated document. It is loaded once.
func Spec() (*openapi3.T, error) {
	once.Do(func() {
		doc, err := openapi3.NewLoader().LoadFromData(raw)
		if err != nil {
			errLoad = err
			return
		}
		if err = doc.Validate(context.Background()); err != nil {
			errLoad = err
			return
		}
		loaded = doc
	})
	return loaded, errLoad
}

// Raw returns the document as written.
func Raw() []byte {
	return raw
}
