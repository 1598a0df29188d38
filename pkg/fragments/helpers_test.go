package fragments_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/fragments"
)

// field parses {"v": input} so root and nested behavior are exercised alike.
func field(f fragments.Fragment, input any) (any, error) {
	out, err := fragments.Object(fragments.Shape{"v": f}).Parse(map[string]any{"v": input})
	return out["v"], err
}

// only asserts err holds exactly one failure and returns it.
func only(t *testing.T, err error) fragments.ValidationError {
	t.Helper()
	require.Error(t, err)
	errs := fragments.ExtractValidationErrors(err)
	require.Len(t, errs, 1, "errors: %v", errs)
	return errs[0]
}
