package suggestion

import "errors"

// ErrMissingSuggestions reports a response without a suggestions field.
var ErrMissingSuggestions = errors.New("response has no suggestions field")

// ToRequest builds the request body for title.
func ToRequest(title string) RequestDTO {
	return RequestDTO{TaskName: title}
}

// ToDomain extracts the suggestion titles. An empty list is valid; a
// missing field is not.
func ToDomain(dto ResponseDTO) ([]string, error) {
	if dto.Suggestions == nil {
		return nil, ErrMissingSuggestions
	}
	out := make([]string, len(*dto.Suggestions))
	copy(out, *dto.Suggestions)
	return out, nil
}
