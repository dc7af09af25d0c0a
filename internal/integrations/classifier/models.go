package classifier

import (
	"bytes"
	"encoding/json"
)

// Classification метка текста с оценкой уверенности
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// classifyResponse ответ сервиса классификации.
// Для одного текста сервис отдает [{...}], для пакета [[{...}]].
type classifyResponse []Classification

// UnmarshalJSON implements json.Unmarshaler
func (r *classifyResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	var nested [][]Classification
	if err := json.Unmarshal(trimmed, &nested); err == nil {
		if len(nested) == 0 {
			*r = nil
			return nil
		}
		*r = nested[0]
		return nil
	}

	var flat []Classification
	if err := json.Unmarshal(trimmed, &flat); err != nil {
		return err
	}
	*r = flat
	return nil
}
