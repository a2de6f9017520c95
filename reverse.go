package sortkit

// Reverse reverses data in place. Useful when one sorted result is needed in
// both directions.
func Reverse[T any](data []T) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}
