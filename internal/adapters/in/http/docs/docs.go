// Package docs registers the API document with swag so that echo-swagger can
// serve it at /swagger/doc.json.
package docs

import (
	"encoding/json"
	"sync"

	"packflow/internal/adapters/in/http/openapi"

	"github.com/swaggo/swag"
)

type document struct {
	once sync.Once
	json string
}

// ReadDoc renders the embedded OpenAPI document as JSON.
func (d *document) ReadDoc() string {
	d.once.Do(func() {
		spec, err := openapi.Spec()
		if err != nil {
			d.json = "{}"
			return
		}
		b, err := json.Marshal(spec)
		if err != nil {
			d.json = "{}"
			return
		}
		d.json = string(b)
	})
	return d.json
}

var registerOnce sync.Once

// Register makes the document available under swag.Name. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, &document{})
	})
}
