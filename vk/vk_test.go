// Copyright 2026 The vkwsi Authors. All rights reserved.

package vk

import "testing"

func TestCheckResult(t *testing.T) {
	for _, c := range [...]struct {
		res  Result
		want error
	}{
		{0, nil},
		// Positive values are statuses, not errors.
		{1, nil},
		{5, nil},
		{-1, errNoHostMemory},
		{-2, errNoDeviceMemory},
		{-3, errInitFailed},
		{-6, errNoLayer},
		{-7, errNoExtension},
		{-9, errDriverCompat},
		{-1000000000, errSurfaceLost},
		{-1000000001, errWindowInUse},
		// Anything else negative is still an error.
		{-4, errUnknown},
		{-13, errUnknown},
		{-1000069000, errUnknown},
	} {
		if err := checkResult(c.res); err != c.want {
			t.Fatalf("checkResult: %d\nhave %v\nwant %v", c.res, err, c.want)
		}
	}
}

func TestResultTruncation(t *testing.T) {
	// A raw call's return word carries VkResult in its low
	// 32 bits only.
	raw := ^uintptr(2)
	if r := result(raw); r != -3 {
		t.Fatalf("result(%#x)\nhave %d\nwant -3", raw, r)
	}
	raw = uintptr(uint64(0xdeadbeef) << 32)
	if r := result(raw); r != 0 {
		t.Fatalf("result: garbage upper half\nhave %d\nwant 0", r)
	}
}
