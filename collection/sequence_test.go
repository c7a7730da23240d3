/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"slices"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestEqualSequences(t *testing.T) {
	defer goleak.VerifyNone(t)
	assert.True(t, EqualSequences(slices.Values([]int{}), slices.Values([]int(nil))))
	assert.True(t, EqualSequences(slices.Values([]int{0, 2}), slices.Values([]int{0, 2})))
	assert.False(t, EqualSequences(slices.Values([]int{0, 2}), slices.Values([]int{0, 2, 4})))
	assert.False(t, EqualSequences(slices.Values([]int{0, 2, 4}), slices.Values([]int{0, 2})))
	assert.False(t, EqualSequences(slices.Values([]int{0, 3}), slices.Values([]int{0, 2})))
	word := faker.Word()
	assert.True(t, EqualSequences(slices.Values([]string{word}), slices.Values([]string{word})))
}
