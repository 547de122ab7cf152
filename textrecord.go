// # TextRecord: Struct-Driven Delimited Text Storage for Go
//
// TextRecord saves slices of structs as comma-delimited text and loads them back. The struct's exported fields are the schema: the header row lists field names in declaration order, and on load every column is matched to a field by name, so reordered, missing, or unknown columns are tolerated.
//
// # Features
//
// - Reflection-based schema discovery via `FieldsOf` and `Fields`, with `text:"name"` and `text:"-"` struct tags.
// - Pure line-table conversion via `Marshal` and `Unmarshal`, configurable through `Codec`.
// - Buffered line `Reader` and `Writer`, plus `SaveFile` and `LoadFile` helpers.
// - Structured error reporting via `ErrInvalidArgument`, `ErrMalformedInput`, `ErrUnsupportedType`, and `ConversionError`.
//
// # Limitations
//
// Values are never quoted or escaped. A value that contains the delimiter or a line break is written as-is and corrupts its row on reload. Fields must be strings, numbers, booleans, `time.Time`, or types implementing `encoding.TextMarshaler` and `encoding.TextUnmarshaler`.
//
// # Getting Started
//
//	type Person struct {
//		FirstName string
//		LastName  string
//		IsAlive   bool
//	}
//
//	lines, err := textrecord.Marshal([]Person{{"Iyad", "Shobaki", true}})
//	// lines: ["FirstName,LastName,IsAlive", "Iyad,Shobaki,True"]
//	people, err := textrecord.Unmarshal[Person](lines)
package textrecord
