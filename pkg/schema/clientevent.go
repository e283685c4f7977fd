package schema

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "client_event",
	"fields" : [
		{"name": "user_id", "type": "string"},
		{"name": "event_type", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "price", "type": "double"},
		{"name": "format", "type": "string"},
		{"name": "quantity", "type": "long"},
		{"name": "unix_ts", "type": "long"}
	]
}`

// ClientEventV1 is the wire form of one storefront activity
// event: product views, cart mutations and checkout completions.
type ClientEventV1 struct {
	UserID    string  `avro:"user_id"`
	EventType string  `avro:"event_type"`
	ProductID string  `avro:"product_id"`
	Name      string  `avro:"name"`
	Price     float64 `avro:"price"`
	Format    string  `avro:"format"`
	Quantity  int64   `avro:"quantity"`
	UnixTS    int64   `avro:"unix_ts"`
}
