// Copyright (c) 2026 Quran API. All rights reserved.

/*
Package slice complements the standard [slices] package with the generic
helpers the stores use to project and deduplicate embedded arrays.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter filters a slice, returning only elements where the predicate function evaluates to true.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

/*
UniqueBy keeps the first element seen for every key, in input order.

Later elements sharing a key are dropped even if they differ in other fields.
*/
func UniqueBy[T any, K comparable](input []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(input))
	var result []T
	for _, v := range input {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, v)
	}
	return result
}

// CountBy counts elements per key and returns the keys in first-seen order.
func CountBy[T any, K comparable](input []T, key func(T) K) ([]K, map[K]int) {
	counts := make(map[K]int)
	var order []K
	for _, v := range input {
		k := key(v)
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}
	return order, counts
}
