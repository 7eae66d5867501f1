package docdata

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Normalize decodes the given server response into a generic JSON value.
// See Decode for the recovery rules.
func Normalize(text string) (any, error) {
	var value any

	if err := Decode(text, &value); err != nil {
		return nil, errors.WithStack(err)
	}

	return value, nil
}

// Decode decodes the given server response into v. The portal sometimes
// emits junk around the JSON document: when the text is not valid JSON, the
// span between the first '{' and the last '}' is used instead, with line
// breaks removed.
func Decode(text string, v any) error {
	data := []byte(text)

	if !json.Valid(data) {
		payload, err := recoverPayload(text)
		if err != nil {
			return errors.WithStack(err)
		}

		data = []byte(payload)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(ErrMalformedResponse, "could not decode payload: %s", err.Error())
	}

	return nil
}

func recoverPayload(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end < start {
		return "", errors.Wrap(ErrMalformedResponse, "no json object found in response")
	}

	payload := text[start : end+1]
	payload = strings.ReplaceAll(payload, "\r", "")
	payload = strings.ReplaceAll(payload, "\n", "")

	if !json.Valid([]byte(payload)) {
		return "", errors.Wrap(ErrMalformedResponse, "recovered payload is not valid json")
	}

	return payload, nil
}
