// Package repository holds testify mocks of the repository contracts.
package repository

import "github.com/stretchr/testify/mock"

// get returns the i-th return value as T, or T's zero value when it was set to nil.
func get[T any](args mock.Arguments, i int) T {
	v, _ := args.Get(i).(T)

	return v
}
