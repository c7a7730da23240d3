/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package field provides utilities for optional arguments and structure fields. It was inspired by the kubernetes package https://pkg.go.dev/k8s.io/utils/pointer.
package field

// ToOptional returns a pointer to a copy of v.
func ToOptional[T any](v T) *T {
	return &v
}

// Optional returns the value of an optional field or else
// returns defaultValue.
func Optional[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalInt returns a pointer to an int
func ToOptionalInt(i int) *int {
	return ToOptional(i)
}

// OptionalInt returns the value of an optional field or else
// returns defaultValue.
func OptionalInt(ptr *int, defaultValue int) int {
	return Optional(ptr, defaultValue)
}

// ToOptionalString returns a pointer to a string.
func ToOptionalString(s string) *string {
	return ToOptional(s)
}

// OptionalString returns the value of an optional field or else returns defaultValue.
func OptionalString(ptr *string, defaultValue string) string {
	return Optional(ptr, defaultValue)
}
