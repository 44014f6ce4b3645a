// Package mapper holds small generic conversion helpers shared by the DTO
// layers.
package mapper

// MapSlice applies mapFunc to each element. The result is never nil, so
// empty lists encode as [] in JSON.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// FilterSlice keeps the elements for which keep returns true.
func FilterSlice[T any](items []T, keep func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}
