package http

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openAPISpec []byte

var registerDocOnce sync.Once

// loadOpenAPI parses and validates the embedded API description.
func loadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// openAPIDoc feeds the embedded document to the Swagger UI handler.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	return string(openAPISpec)
}

func registerSwaggerDoc() {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{})
	})
}
