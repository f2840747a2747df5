package pipeline

// Bucket is a contiguous run of records sharing one derived label.
type Bucket[T any] struct {
	Label string
	Items []T
}

// Group partitions items into contiguous runs of equal label. Order is kept
// within and across buckets, so concatenating the buckets yields items
// unchanged. For chronologically ordered input each label appears once.
func Group[T any](items []T, label func(T) string) []Bucket[T] {
	buckets := []Bucket[T]{}
	for _, item := range items {
		l := label(item)
		if n := len(buckets); n > 0 && buckets[n-1].Label == l {
			buckets[n-1].Items = append(buckets[n-1].Items, item)
			continue
		}
		buckets = append(buckets, Bucket[T]{Label: l, Items: []T{item}})
	}
	return buckets
}

// Flatten concatenates bucket contents in bucket order.
func Flatten[T any](buckets []Bucket[T]) []T {
	var n int
	for _, b := range buckets {
		n += len(b.Items)
	}
	out := make([]T, 0, n)
	for _, b := range buckets {
		out = append(out, b.Items...)
	}
	return out
}
