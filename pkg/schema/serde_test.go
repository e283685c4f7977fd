package schema_test

import (
	"context"
	"testing"

	"github.com/stitchkart/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

func TestSerdeClientEventV1(t *testing.T) {

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeClientEventV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeClientEventV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("IdentifierAndSubjectOpts", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ClientEventSchemaTextV1,
		).Return(schemaID, nil)

		_, err := schema.NewSerdeClientEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ClientEventSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeClientEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		eventValue1 := schema.ClientEventV1{
			UserID:    "testUserID",
			EventType: "cart_item_added",
			ProductID: "testProductID",
			Name:      "testName",
			Price:     499.0,
			Format:    "DST",
			Quantity:  2,
			UnixTS:    1750000000,
		}

		encodedData, err := serde.Encode(eventValue1)
		require.NoError(t, err)

		var eventValue2 schema.ClientEventV1
		err = serde.Decode(encodedData, &eventValue2)
		require.NoError(t, err)

		assert.Equal(t, eventValue1.UserID, eventValue2.UserID)
		assert.Equal(t, eventValue1.EventType, eventValue2.EventType)
		assert.Equal(t, eventValue1.ProductID, eventValue2.ProductID)
		assert.Equal(t, eventValue1.Name, eventValue2.Name)
		assert.Equal(t, eventValue1.Price, eventValue2.Price)
		assert.Equal(t, eventValue1.Format, eventValue2.Format)
		assert.Equal(t, eventValue1.Quantity, eventValue2.Quantity)
		assert.Equal(t, eventValue1.UnixTS, eventValue2.UnixTS)
	})

}
