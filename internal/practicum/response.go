package practicum

import "encoding/json"

// CheckResponse validates the API payload shape and, on success, returns the
// homework list (possibly empty) and the server-side cursor.
//
// Both keys are mandatory: "homeworks" must be an array and "current_date"
// must be an integral number. Anything else rejects the whole response.
func CheckResponse(raw map[string]any) ([]map[string]any, int64, error) {
	if raw == nil {
		return nil, 0, &MalformedError{Reason: "пустой ответ"}
	}

	hv, ok := raw["homeworks"]
	if !ok {
		return nil, 0, &MalformedError{Reason: `нет ключа "homeworks"`}
	}
	list, ok := hv.([]any)
	if !ok {
		return nil, 0, &MalformedError{Reason: `значение "homeworks" не является списком`}
	}

	cv, ok := raw["current_date"]
	if !ok {
		return nil, 0, &MalformedError{Reason: `нет ключа "current_date"`}
	}
	cursor, ok := asInt64(cv)
	if !ok {
		return nil, 0, &MalformedError{Reason: `значение "current_date" не является целым числом`}
	}

	homeworks := make([]map[string]any, 0, len(list))
	for _, it := range list {
		hw, ok := it.(map[string]any)
		if !ok {
			return nil, 0, &MalformedError{Reason: `элемент "homeworks" не является объектом`}
		}
		homeworks = append(homeworks, hw)
	}
	return homeworks, cursor, nil
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		// Decoders without UseNumber hand us float64; accept integral values.
		i := int64(n)
		return i, float64(i) == n
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
