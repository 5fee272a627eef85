package wizard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuehub/internal/domain/flow"
)

func TestDecodeAnswer(t *testing.T) {
	a, err := DecodeAnswer(flow.StepBasics, json.RawMessage(`{"guests":2,"bedrooms":1,"beds":1,"has_lock":false}`))
	require.NoError(t, err)

	b, ok := a.(BasicsAnswer)
	require.True(t, ok)
	require.NotNil(t, b.HasLock)
	assert.False(t, *b.HasLock)
	assert.True(t, Valid(b))
}

func TestDecodeAnswer_RejectsForeignShape(t *testing.T) {
	_, err := DecodeAnswer(flow.StepLocation, json.RawMessage(`{"title":"Cottage"}`))
	assert.ErrorIs(t, err, ErrInvalidAnswerShape)

	_, err = DecodeAnswer(flow.StepSetPrice, json.RawMessage(`{"amount":"cheap"}`))
	assert.ErrorIs(t, err, ErrInvalidAnswerShape)

	_, err = DecodeAnswer(flow.StepTitle, nil)
	assert.ErrorIs(t, err, ErrInvalidAnswerShape)

	_, err = DecodeAnswer("teleport", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrInvalidAnswerShape)
}

func TestEncodeDecodeAnswers_PreservesVariants(t *testing.T) {
	in := validHouseAnswers()

	raw, err := EncodeAnswers(in)
	require.NoError(t, err)
	out, err := DecodeAnswers(raw)
	require.NoError(t, err)

	assert.Equal(t, in, out)
}
