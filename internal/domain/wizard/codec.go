package wizard

import (
	"encoding/json"
	"fmt"

	"venuehub/internal/domain/flow"
)

// DecodeAnswer parses raw as the payload shape of key. Unknown fields are
// rejected so a payload meant for another step never decodes by accident.
func DecodeAnswer(key flow.StepKey, raw json.RawMessage) (Answer, error) {
	def, ok := definitions[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown step %q", ErrInvalidAnswerShape, key)
	}
	return def.decode(raw)
}

// EncodeAnswers serialises answers keyed by step, for drafts.
func EncodeAnswers(answers map[flow.StepKey]Answer) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(answers))
	for k, a := range answers {
		b, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", k, err)
		}
		out[string(k)] = b
	}
	return out, nil
}

// DecodeAnswers is the inverse of EncodeAnswers.
func DecodeAnswers(raw map[string]json.RawMessage) (map[flow.StepKey]Answer, error) {
	out := make(map[flow.StepKey]Answer, len(raw))
	for k, v := range raw {
		a, err := DecodeAnswer(flow.StepKey(k), v)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", k, err)
		}
		out[flow.StepKey(k)] = a
	}
	return out, nil
}
