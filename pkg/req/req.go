package req

import (
	"encoding/json"
	"io"
)

// Decode читает JSON тела запроса в структуру нужного типа.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	return payload, err
}
