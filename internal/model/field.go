package model

// Field is one column assignment of a partial update.
type Field struct {
	Column string
	Value  any
}

func appendField[T any](fields []Field, column string, value *T) []Field {
	if value == nil {
		return fields
	}
	return append(fields, Field{Column: column, Value: *value})
}
