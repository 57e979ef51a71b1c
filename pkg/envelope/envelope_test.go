package envelope_test

import (
	"errors"
	"testing"

	"go-medical-console/pkg/envelope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID  int64  `json:"id"`
	Nom string `json:"nom"`
}

func TestDecodeShapes(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  []record
		shape envelope.Shape
	}{
		{
			name:  "success envelope",
			body:  `{"success":true,"data":[{"id":1,"nom":"Cardiologie"},{"id":2,"nom":"Pédiatrie"}]}`,
			want:  []record{{ID: 1, Nom: "Cardiologie"}, {ID: 2, Nom: "Pédiatrie"}},
			shape: envelope.ShapeEnvelope,
		},
		{
			name:  "data only",
			body:  `{"data":[{"id":3,"nom":"Urgences"}]}`,
			want:  []record{{ID: 3, Nom: "Urgences"}},
			shape: envelope.ShapeEnvelope,
		},
		{
			name:  "bare array",
			body:  ` [{"id":4,"nom":"Radiologie"}] `,
			want:  []record{{ID: 4, Nom: "Radiologie"}},
			shape: envelope.ShapeArray,
		},
		{
			name:  "lone object under data is wrapped",
			body:  `{"success":true,"data":{"id":5,"nom":"Neurologie"}}`,
			want:  []record{{ID: 5, Nom: "Neurologie"}},
			shape: envelope.ShapeSingleton,
		},
		{
			name:  "laravel paginator",
			body:  `{"success":true,"data":{"current_page":1,"last_page":1,"data":[{"id":6,"nom":"ORL"}]}}`,
			want:  []record{{ID: 6, Nom: "ORL"}},
			shape: envelope.ShapePaginated,
		},
		{
			name:  "null data",
			body:  `{"success":true,"data":null}`,
			want:  []record{},
			shape: envelope.ShapeEnvelope,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := envelope.Decode[record]([]byte(tt.body))
			require.NoError(t, res.Err)
			assert.False(t, res.Malformed())
			assert.Equal(t, tt.want, res.Records)
			assert.Equal(t, tt.shape, res.Shape)
		})
	}
}

func TestDecodeUnknownShapesAreMalformed(t *testing.T) {
	bodies := []string{
		``,
		`"ok"`,
		`42`,
		`{"id":1,"nom":"sans enveloppe"}`,
		`{"data":"texte"}`,
		`{"data":[{"id":"pas un nombre"}]}`,
		`<html>502</html>`,
	}

	for _, body := range bodies {
		res := envelope.Decode[record]([]byte(body))
		assert.True(t, res.Malformed(), body)
		assert.True(t, errors.Is(res.Err, envelope.ErrMalformed), body)
		assert.NotNil(t, res.Records, body)
		assert.Empty(t, res.Records, body)
		assert.Empty(t, envelope.Records[record]([]byte(body)), body)
	}
}

func TestDecodeRejectedEnvelope(t *testing.T) {
	res := envelope.Decode[record]([]byte(`{"success":false,"message":"Non autorisé"}`))

	require.Error(t, res.Err)
	assert.True(t, errors.Is(res.Err, envelope.ErrRejected))
	assert.Equal(t, "Non autorisé", res.Message)
	assert.Empty(t, res.Records)

	var rejected *envelope.RejectedError
	require.True(t, errors.As(res.Err, &rejected))
	assert.Equal(t, "Non autorisé", rejected.Message)

	_, err := envelope.DecodeOne[record]([]byte(`{"success":false,"message":"Quota dépassé"}`))
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Quota dépassé", rejected.Message)
}

func TestDecodeOne(t *testing.T) {
	one, err := envelope.DecodeOne[record]([]byte(`{"success":true,"data":{"id":9,"nom":"Dermatologie"}}`))
	require.NoError(t, err)
	assert.Equal(t, record{ID: 9, Nom: "Dermatologie"}, *one)

	bare, err := envelope.DecodeOne[record]([]byte(`{"id":10,"nom":"Gériatrie"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(10), bare.ID)

	first, err := envelope.DecodeOne[record]([]byte(`{"data":[{"id":11,"nom":"A"},{"id":12,"nom":"B"}]}`))
	require.NoError(t, err)
	assert.Equal(t, int64(11), first.ID)

	_, err = envelope.DecodeOne[record]([]byte(`[]`))
	assert.ErrorIs(t, err, envelope.ErrMalformed)
}

func TestMessageAndFieldErrors(t *testing.T) {
	assert.Equal(t, "Email déjà utilisé", envelope.Message([]byte(`{"message":"Email déjà utilisé"}`)))
	assert.Equal(t, "token expired", envelope.Message([]byte(`{"error":"token expired"}`)))
	assert.Equal(t, "", envelope.Message([]byte(`oops`)))

	fields := envelope.FieldErrors([]byte(`{"message":"invalid","errors":{"email":["L'email existe déjà."]}}`))
	assert.Equal(t, map[string]string{"email": "L'email existe déjà."}, fields)
	assert.Nil(t, envelope.FieldErrors([]byte(`{"message":"x"}`)))
}
