package bplus

// binary search for search.go and deletion.go
func binarySearch(keys []int, target int) int {
	low := 0
	high := len(keys) - 1
	for low <= high {
		mid := low + (high-low)/2
		if keys[mid] == target {
			return mid
		} else if keys[mid] < target {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return -1
}

// first index whose key is >= target, used for leaf insertion
func lowerBound(keys []int, target int) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if keys[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// first index whose key is > target. For an inner node this is the child to
// descend into: keys equal to a separator live in the right subtree.
func upperBound(keys []int, target int) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if keys[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// insertAt inserts elem at index i in slice.
func insertAt[T any](slice []T, i int, elem T) []T {
	slice = append(slice, elem) // grow by 1
	copy(slice[i+1:], slice[i:])
	slice[i] = elem
	return slice
}

// removeAt removes element at index i from slice.
func removeAt[T any](slice []T, i int) []T {
	var zero T
	copy(slice[i:], slice[i+1:])
	slice[len(slice)-1] = zero // drop the reference held by the vacated tail slot
	return slice[:len(slice)-1]
}
