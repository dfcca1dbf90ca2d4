package helpers_test

import (
	"testing"
	"time"

	"github.com/isometry/delay-responder/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	testCases := []struct {
		Name  string
		Input any
	}{
		{
			Name:  "nil",
			Input: nil,
		},
		{
			Name:  "flag_short_name",
			Input: "r",
		},
		{
			Name:  "delay",
			Input: 5 * time.Second,
		},
		{
			Name:  "header_map",
			Input: map[string]string{"content-type": "application/json"},
		},
		{
			Name:  "nil_pointer",
			Input: (*string)(nil),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Input == nil {
				assert.Nil(t, helpers.Ptr(tc.Input))
			} else {
				assert.Equal(t, &tc.Input, helpers.Ptr(tc.Input))
			}
		})
	}
}
