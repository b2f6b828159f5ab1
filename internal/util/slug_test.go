package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSlug(t *testing.T) {
	cases := map[string]string{
		"Acme Corp":         "acme-corp",
		"Big   Tent\tGroup": "big-tent-group",
		"solo":              "solo",
		"Mixed CASE Name":   "mixed-case-name",
	}
	for in, want := range cases {
		assert.Equal(t, want, DeriveSlug(in), in)
	}
}
