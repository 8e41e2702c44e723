package req

import (
	"encoding/json"
	"io"
)

// Decode разбирает JSON тело запроса в структуру T
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	return payload, err
}
