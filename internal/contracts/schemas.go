// Package contracts проверяет тела запросов по встроенным JSON-схемам.
package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas
var schemasFS embed.FS

const schemasRoot = "schemas/requests"

// Ключи схем.
const (
	LoginRequestV1         = "LoginRequest/1.0.0"
	RegisterRequestV1      = "RegisterRequest/1.0.0"
	CreateBookingRequestV1 = "CreateBookingRequest/1.0.0"
)

var loadSchemas = sync.OnceValues(func() (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	err := fs.WalkDir(schemasFS, schemasRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	compiled := make(map[string]*jsonschema.Schema, len(paths))
	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", path, err)
		}
		compiled[keyFromPath(path)] = schema
	}
	return compiled, nil
})

// keyFromPath: "schemas/requests/create-booking/v1.json" -> "CreateBookingRequest/1.0.0".
func keyFromPath(path string) string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, schemasRoot+"/"), ".json")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString("Request")

	return name.String() + "/" + strings.TrimPrefix(parts[1], "v") + ".0.0"
}

// Load компилирует схемы. Вызывается при старте, чтобы сломанная схема
// обнаружилась сразу, а не на первом запросе.
func Load() error {
	_, err := loadSchemas()
	return err
}

// Validate проверяет тело запроса по схеме key.
// Ошибки содержимого оборачивают domain.ErrValidation.
func Validate(key string, body []byte) error {
	compiled, err := loadSchemas()
	if err != nil {
		return err
	}
	schema, ok := compiled[key]
	if !ok {
		return fmt.Errorf("schema %q not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("%w: request body is not valid JSON", domain.ErrValidation)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, describe(err))
	}
	return nil
}

// describe сокращает ошибку валидатора до первой конкретной причины.
func describe(err error) string {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	if verr.InstanceLocation == "" {
		return verr.Message
	}
	return verr.InstanceLocation + ": " + verr.Message
}
