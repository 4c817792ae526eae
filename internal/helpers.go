package internal

import "strconv"

// ContextValue returns the request-scoped value stored under key as T,
// or the zero value if it is missing or of another type.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// QueryInt returns the query parameter parsed as int, or defaultValue if
// it is empty or not a number.
func QueryInt(c Context, name string, defaultValue int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return defaultValue
	}
	return v
}
