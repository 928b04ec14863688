package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Tushar123097/Home-rent-app/internal/contracts"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
)

const maxBodyBytes = 1 << 20

// decodeValidated читает тело, проверяет его по JSON-схеме и декодирует в dst.
func decodeValidated(w http.ResponseWriter, r *http.Request, schemaKey string, dst interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: failed to read request body", domain.ErrValidation)
	}
	if err := contracts.Validate(schemaKey, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrValidation)
	}
	return nil
}
