package resp

import (
	"encoding/json"
	"net/http"
)

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Статус уже отправлен, ошибку кодирования отдать клиенту нечем
	_ = json.NewEncoder(w).Encode(data)
}
